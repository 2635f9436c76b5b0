package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ananyev/jobpilot/internal/buildinfo"
	"github.com/ananyev/jobpilot/internal/client/cli"
	"github.com/ananyev/jobpilot/internal/client/config"
	"github.com/ananyev/jobpilot/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)
}
