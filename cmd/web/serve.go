package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/oliveiraclick/criadorLP/internal/editor"
	"github.com/oliveiraclick/criadorLP/internal/export"
	"github.com/oliveiraclick/criadorLP/internal/httpserver"
	"github.com/oliveiraclick/criadorLP/internal/platform/config"
	"github.com/oliveiraclick/criadorLP/internal/platform/observability"
	"github.com/oliveiraclick/criadorLP/internal/projects"
)

func serveCMD(load loadFunc) *cobra.Command {
	var port string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the editor web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load(cmd.Context())
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
	serve.Flags().StringVar(&port, "port", "", "listen port (overrides server.port)")
	return serve
}

func runServer(ctx context.Context, cfg config.Config) error {
	logger, _, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewMetrics()

	store, err := openStore(cfg, logger, projects.WithWriteObserver(metrics.ObserveProjectWrite))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Compact(); err != nil {
			logger.Warn("compact store", zap.Error(err))
		}
		if err := store.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	sink, closeSink, err := buildSink(ctx, cfg.Export)
	if err != nil {
		return err
	}
	defer closeSink()

	packager := export.New(
		export.WithSink(sink),
		export.WithOutline(cfg.Export.Outline),
		export.WithLogger(logger),
		export.WithObserver(metrics.ObserveExport),
	)
	registry := editor.NewRegistry(editor.WithSizeObserver(metrics.SetEditorSessions))

	if cfg.Session.HashKey == "" {
		logger.Warn("session keys not configured; generating ephemeral keys, sessions reset on restart")
	}

	srv, err := httpserver.New(httpserver.Config{
		Address:         ":" + cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		IdleTimeout:     cfg.Server.IdleTimeout,
		Logger:          logger,
		Metrics:         metrics,
		Store:           store,
		Registry:        registry,
		Packager:        packager,
		SessionHashKey:  []byte(cfg.Session.HashKey),
		SessionBlockKey: []byte(cfg.Session.BlockKey),
		SecureCookies:   !cfg.IsLocal(),
		Dev:             cfg.App.Dev,
		TemplatesDir:    cfg.App.TemplatesDir,
		PublicDir:       cfg.App.PublicDir,
	})
	if err != nil {
		return err
	}

	go httpserver.RunSweeper(ctx, registry, cfg.Editor.SessionTTL, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("server listening",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.App.Env),
		zap.String("store", cfg.Store.Path),
		zap.String("export_sink", cfg.Export.Sink),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// buildSink returns the configured archive sink and a func releasing its resources.
func buildSink(ctx context.Context, cfg config.ExportConfig) (export.Sink, func(), error) {
	noop := func() {}
	switch cfg.Sink {
	case config.SinkDir:
		return export.DirSink{Root: cfg.Dir}, noop, nil
	case config.SinkGCS:
		client, err := gcs.NewClient(ctx, gcsOptions(cfg)...)
		if err != nil {
			return nil, noop, fmt.Errorf("init storage client: %w", err)
		}
		sink, err := export.NewGCSSink(client, cfg.Bucket)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return sink, func() { _ = client.Close() }, nil
	default:
		return export.NopSink{}, noop, nil
	}
}

func gcsOptions(cfg config.ExportConfig) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint), option.WithoutAuthentication())
	} else if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	return opts
}
