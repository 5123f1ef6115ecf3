package cli

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/osuushi/sierpinski"
)

func newCountCmd(root *rootOptions) *cobra.Command {
	var flagged Config

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Render into a recorder and report the draw calls",
		Long: `Count runs a full render against a recording surface instead of an image and
logs how many triangles, strokes and fills it issued. Useful for picking a
depth before paying for rasterization.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd, root, flagged)
			if err != nil {
				return err
			}
			_, err = countDraws(cmd, cfg)
			return err
		},
	}

	bindFlags(cmd.Flags(), &flagged)
	return cmd
}

type drawCounts struct {
	Triangles int
	Strokes   int
	Fills     int
}

func countDraws(cmd *cobra.Command, cfg Config) (drawCounts, error) {
	logger := loggerFromContext(cmd.Context())

	opts, _, err := renderOptions(cfg)
	if err != nil {
		return drawCounts{}, err
	}

	root := rootTriangle(cfg.Width, cfg.Height)
	if root.IsDegenerate() {
		logger.Warn("Root triangle has zero area", "width", cfg.Width, "height", cfg.Height)
	}

	rec := sierpinski.NewRecorder()
	p := newProgress(logger)
	if err := sierpinski.Render(rec, root, cfg.Depth, opts...); err != nil {
		return drawCounts{}, err
	}
	counts := drawCounts{
		Triangles: len(rec.Triangles()),
		Strokes:   rec.Count(sierpinski.OpStroke),
		Fills:     rec.Count(sierpinski.OpFill),
	}
	p.done("Recorded " + formatCount(uint64(counts.Triangles)) + " triangles")
	logger.Info("Draw calls", "depth", cfg.Depth, "strokes", counts.Strokes, "fills", counts.Fills, "ops", len(rec.Ops))

	if want := sierpinski.TriangleCount(cfg.Depth); uint64(counts.Triangles) != want {
		return counts, errors.Errorf("recorded %d triangles, expected %d", counts.Triangles, want)
	}
	return counts, nil
}

func formatCount(n uint64) string {
	return strconv.FormatUint(n, 10)
}
