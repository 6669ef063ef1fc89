package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-parser/config"
	"voice-task-parser/internal/cli"
	"voice-task-parser/internal/voice/usecase"
	"voice-task-parser/pkg/datemath"
	"voice-task-parser/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debugf(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, keeping the reference time zone: %v", cfg.Parser.Timezone, err)
		dateMathParser, _ = datemath.NewParser("")
	}

	// 4. Voice UseCase
	voiceUC, err := usecase.New(logger, dateMathParser, usecase.Config{
		CacheSize:      cfg.Parser.CacheSize,
		CacheTTL:       cfg.Parser.CacheTTL,
		TitleMaxLength: cfg.Review.TitleMaxLength,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize voice use case: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := cli.New(voiceUC, logger).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
