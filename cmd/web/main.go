package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/oliveiraclick/criadorLP/internal/platform/config"
	"github.com/oliveiraclick/criadorLP/internal/projects"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:          "criadorlp",
		Short:        "Landing page builder",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file (env vars override it)")

	load := func(ctx context.Context) (config.Config, error) {
		var opts []config.Option
		if cfgPath != "" {
			opts = append(opts, config.WithConfigFile(cfgPath))
		}
		return config.Load(ctx, opts...)
	}

	root.AddCommand(serveCMD(load), projectsCMD(load), exportCMD(load))
	return root
}

type loadFunc func(ctx context.Context) (config.Config, error)

// openStore opens the project database, creating its directory when needed.
func openStore(cfg config.Config, logger *zap.Logger, opts ...projects.Option) (*projects.BuntStore, error) {
	path := cfg.Store.Path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	return projects.OpenBunt(path, append([]projects.Option{projects.WithLogger(logger)}, opts...)...)
}
