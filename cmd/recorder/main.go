// Command recorder stores one classified scan for the current device, the
// way the camera flow does after classification.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/scan-history/internal/client"
	"github.com/MKhiriev/scan-history/internal/config"
	"github.com/MKhiriev/scan-history/internal/logger"
	"github.com/MKhiriev/scan-history/models"
)

func main() {
	// registered before the config parses the command line
	variety := flag.String("variety", "", "Classified mango variety")
	ripeness := flag.String("ripeness", "", "Classified ripeness stage")
	confidence := flag.String("confidence", "", "Classifier confidence, e.g. 87.5")
	image := flag.String("image", "", "URI of the captured image")

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("scan-history-recorder", cfg.App.LogFile)

	app, err := client.NewApp(cfg, models.AppBuildInfo{}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	capturedAt := time.Now().UnixMilli()
	req := models.CreateScanRequest{
		Variety:          optional(*variety),
		Ripeness:         optional(*ripeness),
		ImageRef:         optional(*image),
		CapturedAtMillis: &capturedAt,
	}
	if *confidence != "" {
		req.Confidence = models.NewConfidence(*confidence)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout*2)
	defer cancel()

	created, total, err := app.Record(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		cancel()
		os.Exit(1)
	}

	fmt.Printf("Recorded scan %s for device %s (%d in history)\n", created.ID, app.DeviceID(), total)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
