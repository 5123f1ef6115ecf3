// Package cli implements the sierpinski command-line interface.
//
// The CLI is built with cobra. Every command supports --verbose (-v) for
// debug logging via charmbracelet/log, and --config to read defaults from a
// TOML file. Loggers travel through the command context.
//
// # Commands
//
//   - render: draw the fractal to a PNG or SVG file
//   - count: render into a recording surface and report the draw counts
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. The main
// package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

type rootOptions struct {
	verbose    bool
	configPath string
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "sierpinski",
		Short:         "Draw Sierpinski triangles",
		Long:          `sierpinski recursively subdivides a triangle and draws every level to a PNG or SVG, optionally over a background image and with a random color per level.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("sierpinski %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with render settings")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newCountCmd(opts))
	return root
}

// loadCommandConfig layers defaults, the config file and explicitly set flags.
func loadCommandConfig(cmd *cobra.Command, opts *rootOptions, flagged Config) (Config, error) {
	cfg := defaultConfig()
	if opts.configPath != "" {
		if err := loadConfig(opts.configPath, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg.applyFlags(cmd.Flags(), flagged)
	return cfg, nil
}
