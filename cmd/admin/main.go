package main

import (
	"context"
	"fmt"
	"os"

	"minerva-site/internal/cli"
	"minerva-site/internal/config"
	"minerva-site/internal/database"
	"minerva-site/internal/logger"
	"minerva-site/internal/services"
)

func main() {
	rootCmd := cli.NewRootCommand(openService)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openService(ctx context.Context, opts cli.Options) (*services.ContentService, func(), error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	if opts.DataPath != "" {
		cfg.DataPath = opts.DataPath
	}

	// La consola solo muestra advertencias
	level := cfg.LogLevel
	if level == "info" || level == "debug" {
		level = "warn"
	}
	log, err := logger.New(level, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	repo, closeRepo, err := database.OpenRepository(ctx, cfg)
	if err != nil {
		log.Close()
		return nil, nil, err
	}

	closeFn := func() {
		closeRepo()
		log.Close()
	}
	return services.NewContentService(repo, log), closeFn, nil
}
