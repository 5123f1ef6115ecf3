package cli

import (
	"context"
	"image"
	"io"
	"os"
	"time"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/osuushi/sierpinski"
	"github.com/osuushi/sierpinski/canvas"
)

func newRenderCmd(root *rootOptions) *cobra.Command {
	var flagged Config
	var preview bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the fractal to a PNG or SVG file",
		Long: `Render subdivides the triangle (width/2, 0), (0, height), (width, height)
--depth times and writes every triangle to the output file.

Examples:
  sierpinski render -o fractal.png
  sierpinski render --depth 7 --random=false --color "#ff8800" -o fractal.svg
  sierpinski render --background "Idle (1).png" --imgcat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd, root, flagged)
			if err != nil {
				return err
			}
			if err := cfg.resolve(); err != nil {
				return err
			}
			if preview && cfg.Format != formatPNG {
				return errors.Errorf("--imgcat needs png output, got %s", cfg.Format)
			}
			if err := runRender(cmd.Context(), cfg); err != nil {
				return err
			}
			if preview {
				return previewImage(cfg.Out, cmd.OutOrStdout())
			}
			return nil
		},
	}

	bindFlags(cmd.Flags(), &flagged)
	cmd.Flags().BoolVar(&preview, "imgcat", false, "print the PNG to the terminal (iTerm2 image protocol)")
	return cmd
}

// rootTriangle spans the full canvas with its apex centered at the top.
func rootTriangle(width, height int) sierpinski.Triangle {
	w, h := float64(width), float64(height)
	return sierpinski.Triangle{
		Top:   sierpinski.Point{X: w / 2, Y: 0},
		Left:  sierpinski.Point{X: 0, Y: h},
		Right: sierpinski.Point{X: w, Y: h},
	}
}

// renderOptions turns the color settings into renderer options.
func renderOptions(cfg Config) ([]sierpinski.Option, uint64, error) {
	color, err := sierpinski.ParseColor(cfg.Color)
	if err != nil {
		return nil, 0, err
	}
	opts := []sierpinski.Option{sierpinski.WithColor(color)}
	seed := cfg.Seed
	if cfg.Random {
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		opts = append(opts, sierpinski.WithColorSource(sierpinski.NewRandomColors(seed)))
	}
	return opts, seed, nil
}

// strokeSurface is what both output surfaces offer beyond the renderer's needs.
type strokeSurface interface {
	sierpinski.Surface
	SetLineWidth(float64)
}

func runRender(ctx context.Context, cfg Config) error {
	logger := loggerFromContext(ctx)

	opts, seed, err := renderOptions(cfg)
	if err != nil {
		return err
	}
	if cfg.Random {
		logger.Debug("Random colors", "seed", seed)
	}

	var background image.Image
	if cfg.Background != "" {
		p := newProgress(logger)
		loadCtx, cancel := context.WithTimeout(ctx, cfg.BackgroundTimeout)
		background, err = canvas.LoadBackground(loadCtx, cfg.Background)
		cancel()
		if err != nil {
			return err
		}
		if cfg.BackgroundFit {
			background = canvas.Fit(background, cfg.Width, cfg.Height)
		}
		p.done("Loaded background " + cfg.Background)
	}

	root := rootTriangle(cfg.Width, cfg.Height)
	draw := func(s strokeSurface) error {
		s.SetLineWidth(cfg.LineWidth)
		if background != nil {
			s.DrawImage(background, 0, 0)
		}
		p := newProgress(logger)
		if err := sierpinski.Render(s, root, cfg.Depth, opts...); err != nil {
			return err
		}
		p.done("Rendered " + formatCount(sierpinski.TriangleCount(cfg.Depth)) + " triangles")
		return nil
	}

	switch cfg.Format {
	case formatSVG:
		err = writeSVG(cfg, draw)
	default:
		err = writePNG(cfg, draw)
	}
	if err != nil {
		return err
	}
	logger.Info("Wrote " + cfg.Out)
	return nil
}

func writePNG(cfg Config, draw func(strokeSurface) error) error {
	surface := canvas.NewRaster(cfg.Width, cfg.Height)
	if err := draw(surface); err != nil {
		return err
	}
	return surface.SavePNG(cfg.Out)
}

func writeSVG(cfg Config, draw func(strokeSurface) error) (err error) {
	f, err := os.Create(cfg.Out)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "closing output")
		}
	}()

	surface := canvas.NewVector(f, cfg.Width, cfg.Height)
	if err := draw(surface); err != nil {
		return err
	}
	surface.End()
	return nil
}

func previewImage(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "previewing output")
}
