package canvas

import (
	"context"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

type loadResult struct {
	img image.Image
	err error
}

// Load and decode a background image from a file path or an http(s) URL.
//
// The load runs in its own goroutine and reports exactly once on a buffered
// channel. LoadBackground waits for that report or for ctx to finish,
// whichever comes first, so callers bound a slow or stuck load with a
// deadline on ctx. There is no retry.
func LoadBackground(ctx context.Context, src string) (image.Image, error) {
	done := make(chan loadResult, 1)
	go func() {
		img, err := openImage(ctx, src)
		done <- loadResult{img, err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, errors.Wrapf(res.err, "loading background %q", src)
		}
		return res.img, nil
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "loading background %q", src)
	}
}

func openImage(ctx context.Context, src string) (image.Image, error) {
	if !isURL(src) {
		return imaging.Open(src, imaging.AutoOrientation(true))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %s", resp.Status)
	}
	return imaging.Decode(resp.Body, imaging.AutoOrientation(true))
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Scale and crop img to exactly fill a width x height canvas.
func Fit(img image.Image, width, height int) image.Image {
	return imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
}
