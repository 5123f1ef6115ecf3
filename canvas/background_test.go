package canvas

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "background.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadBackground(t *testing.T) {
	path := writePNG(t, uniform(color.RGBA{0, 0, 255, 255}, 7, 5))

	img, err := LoadBackground(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 7, 5), img.Bounds())
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, nrgbaAt(img, 3, 3))
}

func TestLoadBackground_Missing(t *testing.T) {
	_, err := LoadBackground(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestLoadBackground_HTTP(t *testing.T) {
	path := writePNG(t, uniform(color.RGBA{0, 255, 0, 255}, 4, 4))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/idle.png" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}))
	defer srv.Close()

	img, err := LoadBackground(context.Background(), srv.URL+"/idle.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	_, err = LoadBackground(context.Background(), srv.URL+"/missing.png")
	assert.Error(t, err)
}

func TestLoadBackground_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := LoadBackground(ctx, srv.URL+"/slow.png")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.True(t, time.Since(start) < 5*time.Second)
}

func TestFit(t *testing.T) {
	img := Fit(uniform(color.RGBA{255, 0, 0, 255}, 10, 20), 30, 30)
	assert.Equal(t, image.Rect(0, 0, 30, 30), img.Bounds())
}
