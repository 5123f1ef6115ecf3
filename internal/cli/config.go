package cli

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	formatPNG = "png"
	formatSVG = "svg"
)

// Config holds everything a render needs. It can be loaded from a TOML file;
// flags given on the command line win over file values.
type Config struct {
	Width             int           `toml:"width"`
	Height            int           `toml:"height"`
	Depth             uint          `toml:"depth"`
	Color             string        `toml:"color"`
	Random            bool          `toml:"random"`
	Seed              uint64        `toml:"seed"`
	LineWidth         float64       `toml:"line_width"`
	Background        string        `toml:"background"`
	BackgroundTimeout time.Duration `toml:"background_timeout"`
	BackgroundFit     bool          `toml:"background_fit"`
	Format            string        `toml:"format"`
	Out               string        `toml:"out"`
}

func defaultConfig() Config {
	return Config{
		Width:             600,
		Height:            600,
		Depth:             5,
		Color:             "rgb(0,255,0)",
		Random:            true,
		LineWidth:         1,
		BackgroundTimeout: 5 * time.Second,
	}
}

// loadConfig decodes the TOML file at path over cfg. Keys missing from the
// file keep their current values.
func loadConfig(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return errors.Wrapf(err, "reading config %s", path)
	}
	return nil
}

// bindFlags registers the render flags on fs, storing values in flagged.
func bindFlags(fs *pflag.FlagSet, flagged *Config) {
	def := defaultConfig()
	fs.IntVar(&flagged.Width, "width", def.Width, "canvas width in pixels")
	fs.IntVar(&flagged.Height, "height", def.Height, "canvas height in pixels")
	fs.UintVarP(&flagged.Depth, "depth", "d", def.Depth, "recursion depth")
	fs.StringVar(&flagged.Color, "color", def.Color, `root fill color, "rgb(R,G,B)" or "#rrggbb"`)
	fs.BoolVar(&flagged.Random, "random", def.Random, "pick a random color for every level")
	fs.Uint64Var(&flagged.Seed, "seed", def.Seed, "random seed (0 picks one from the clock)")
	fs.Float64Var(&flagged.LineWidth, "line-width", def.LineWidth, "stroke width")
	fs.StringVar(&flagged.Background, "background", def.Background, "background image path or http(s) URL")
	fs.DurationVar(&flagged.BackgroundTimeout, "background-timeout", def.BackgroundTimeout, "give up loading the background after this long")
	fs.BoolVar(&flagged.BackgroundFit, "background-fit", def.BackgroundFit, "scale and crop the background to the canvas")
	fs.StringVar(&flagged.Format, "format", def.Format, "output format: png or svg (default: from --out, else png)")
	fs.StringVarP(&flagged.Out, "out", "o", def.Out, "output file (default: a generated name)")
}

// applyFlags copies every flag the user actually set from flagged into c.
func (c *Config) applyFlags(fs *pflag.FlagSet, flagged Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("width", func() { c.Width = flagged.Width })
	set("height", func() { c.Height = flagged.Height })
	set("depth", func() { c.Depth = flagged.Depth })
	set("color", func() { c.Color = flagged.Color })
	set("random", func() { c.Random = flagged.Random })
	set("seed", func() { c.Seed = flagged.Seed })
	set("line-width", func() { c.LineWidth = flagged.LineWidth })
	set("background", func() { c.Background = flagged.Background })
	set("background-timeout", func() { c.BackgroundTimeout = flagged.BackgroundTimeout })
	set("background-fit", func() { c.BackgroundFit = flagged.BackgroundFit })
	set("format", func() { c.Format = flagged.Format })
	set("out", func() { c.Out = flagged.Out })
}

// resolve fills in derived values and rejects unusable configs.
func (c *Config) resolve() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.BackgroundTimeout <= 0 {
		return errors.Errorf("background timeout must be positive, got %s", c.BackgroundTimeout)
	}

	if c.Format == "" {
		c.Format = formatPNG
		if strings.EqualFold(filepath.Ext(c.Out), ".svg") {
			c.Format = formatSVG
		}
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != formatPNG && c.Format != formatSVG {
		return errors.Errorf("unsupported format %q", c.Format)
	}

	if c.Out == "" {
		c.Out = outputName(c.Format)
	}
	return nil
}
