package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/onboarding-platform/onboarding/common/util"
	"github.com/onboarding-platform/onboarding/common/version"
	"github.com/onboarding-platform/onboarding/server/app"
)

func main() {
	fmt.Printf("Onboarding Server v%s\n", version.VersionToString())
	fmt.Printf("Starting with args: %v\n", util.FilterOSArgs(os.Args, app.LogSafeFlags))

	config, err := app.ConfigFromFlags()
	if err != nil {
		log.Fatalf("Error parsing flags: %s", err)
	}

	app, cleanup, err := app.New(config)
	if err != nil {
		log.Fatalf("Error creating app: %s", err)
	}
	defer cleanup()
	app.AppAPIServer.Start()

	// Wait for SIGINT or SIGTERM before shutting down server
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute*5)
	defer cancel()
	err = app.AppAPIServer.Stop(ctx)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Print("Server shutdown complete")
}
