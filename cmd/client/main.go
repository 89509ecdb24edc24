package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-envelope/internal/client"
	"github.com/MKhiriev/go-pass-envelope/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := app.Run(ctx, os.Args[1:])
	stop()

	if err != nil {
		os.Exit(1)
	}
}
