package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hszk-dev/openveo-repository/internal/cli"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if err := cli.NewRootCommand(cli.NewEnvServiceFactory(logger)).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
