package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/processor"
	"github.com/nguyentantai21042004/transcript-flow/internal/watcher"
	"github.com/spf13/cobra"
)

func watchCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input folder and format new transcripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return runWatch(cmd.Context(), cfg)
		},
	}
}

func runWatch(ctx context.Context, cfg *config.Config) error {
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Formatting Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	if err := ensureDirectories(cfg); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	proc := processor.New(cfg, newDependencies(cfg, log), log)
	handler := func(ctx context.Context, path string) error {
		if err := proc.Process(ctx, path); err != nil {
			return err
		}
		return proc.Archive(ctx, path)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- w.Start(ctx)
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcript Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Archive: %s", cfg.Paths.Archived)
	log.Info(ctx, "")
	log.Info(ctx, "Steps:")
	log.Info(ctx, "  - Glossary: %t", cfg.Glossary.Enabled)
	log.Info(ctx, "  - Grammar: %t (%s)", cfg.Grammar.Enabled, cfg.Grammar.Backend)
	log.Info(ctx, "  - Summary: %t (%s)", cfg.Summary.Enabled, cfg.Summary.Backend)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	var runErr error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		log.Info(ctx, "Shutting down gracefully...")
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watcher error: %v", err)
			runErr = err
		}
	}

	log.Info(ctx, "Transcript Pipeline stopped")
	return runErr
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
