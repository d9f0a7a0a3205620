// Command ls-starchart renders star charts to SVG and explores them in the
// terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/chart"
	"github.com/litescript/ls-starchart/internal/config"
	"github.com/litescript/ls-starchart/internal/logging"
)

func main() {
	// Cancel on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:           "ls-starchart",
		Short:         "Star charts: gnomonic, stereographic, spherical and alt-az",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML chart file (flags override its values)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(renderCmd(g), exploreCmd(g), versionCmd())
	return cmd
}

// session is everything a subcommand needs to draw a chart.
type session struct {
	cfg   *config.Config
	chart chart.Config
	data  catalog.Datasets
	log   *logging.Logger
}

// setup loads the config file, applies the flags that were set on cmd,
// and loads the catalogs.
func setup(cmd *cobra.Command, g *globals, f *chartFlags) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	o := f.overrides(cmd)
	if cmd.Flags().Changed("log-level") {
		o.LogLevel = &g.logLevel
	}
	cfg.Apply(o)

	log := logging.New(cfg.Level())
	if g.configPath != "" {
		log.Debug("config loaded", "path", g.configPath)
	}

	cc, err := cfg.ToChart()
	if err != nil {
		return nil, err
	}

	data, err := catalog.Load(cfg.CatalogPaths(), log)
	if err != nil {
		return nil, err
	}
	log.Debug("catalogs loaded",
		"stars", len(data.Stars),
		"objects", len(data.Objects),
		"constellations", len(data.Constellations))

	return &session{cfg: cfg, chart: cc, data: data, log: log}, nil
}
