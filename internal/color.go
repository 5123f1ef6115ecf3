package internal

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Format the color the way a 2D canvas fill style expects it.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff
	return
}

// Parse a fill style. Accepts "rgb(R,G,B)" with decimal channels, and hex
// notation ("#0f0" or "#00ff00").
func ParseColor(spec string) (Color, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case strings.HasPrefix(spec, "#"):
		// colorful.Hex stops scanning at the first bad digit, so check the
		// whole string first.
		if !isHexColor(spec) {
			return Color{}, errors.Errorf("invalid hex color %q", spec)
		}
		c, err := colorful.Hex(spec)
		if err != nil {
			return Color{}, errors.Wrapf(err, "invalid hex color %q", spec)
		}
		r, g, b := c.RGB255()
		return Color{r, g, b}, nil
	case strings.HasPrefix(spec, "rgb(") && strings.HasSuffix(spec, ")"):
		inner := spec[len("rgb(") : len(spec)-1]
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return Color{}, errors.Errorf("invalid color %q: expected 3 channels, got %d", spec, len(parts))
		}
		var channels [3]uint8
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return Color{}, errors.Wrapf(err, "invalid channel in color %q", spec)
			}
			if v < 0 || v > 255 {
				return Color{}, errors.Errorf("channel %d out of range in color %q", v, spec)
			}
			channels[i] = uint8(v)
		}
		return Color{channels[0], channels[1], channels[2]}, nil
	}
	return Color{}, errors.Errorf("unrecognized color %q", spec)
}

func isHexColor(spec string) bool {
	if len(spec) != 4 && len(spec) != 7 {
		return false
	}
	for _, r := range spec[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// A ColorSource picks the color for the next level of the recursion. It is
// called once per subdivided triangle, and the three children share the
// result.
type ColorSource interface {
	Next() Color
}

type ColorSourceFunc func() Color

func (f ColorSourceFunc) Next() Color {
	return f()
}

// A source that never changes color.
type FixedColor Color

func (c FixedColor) Next() Color {
	return Color(c)
}

// Uniformly random channels in [0, 255]. Not safe for concurrent use, which
// the renderer never needs.
type RandomColors struct {
	rng *rand.Rand
}

// The same seed always produces the same sequence of colors.
func NewRandomColors(seed uint64) *RandomColors {
	return &RandomColors{rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef))}
}

func (r *RandomColors) Next() Color {
	return Color{
		R: uint8(r.rng.IntN(256)),
		G: uint8(r.rng.IntN(256)),
		B: uint8(r.rng.IntN(256)),
	}
}
