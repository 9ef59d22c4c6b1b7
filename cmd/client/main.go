package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/scan-history/internal/client"
	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// registered before the config parses the command line
	listOnly := flag.Bool("list", false, "Print the device's scan history and exit")

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("scan-history-client", cfg.App.LogFile)

	app, err := client.NewApp(cfg, buildInfo(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if *listOnly {
		if err = app.PrintHistory(ctx, os.Stdout); err != nil {
			log.Err(err).Msg("listing history failed")
			fmt.Fprintf(os.Stderr, "listing history failed: %v\n", err)
			stop()
			os.Exit(1)
		}
		return
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
