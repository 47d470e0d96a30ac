package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"

	"toyota-tracker/internal/app/tracker"
	"toyota-tracker/internal/config"
)

func main() {
	username := flag.String("username", "", "account username (required)")
	password := flag.String("password", "", "account password (required)")
	orderID := flag.String("order", "", "report a single order ID instead of every order")
	storeDates := flag.Bool("store-dates", false, "record first-seen dates of state changes in <orderID>.json")
	datesDir := flag.String("dates-dir", ".", "directory for the date files written by --store-dates")
	timeout := flag.Int("timeout", 10, "HTTP timeout in seconds")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	noColor := flag.Bool("no-color", false, "disable ANSI styling")
	flag.Parse()

	cfg := config.Config{
		Username:   *username,
		Password:   *password,
		OrderID:    *orderID,
		StoreDates: *storeDates,
		DatesDir:   *datesDir,
		Timeout:    time.Duration(*timeout) * time.Second,
		Verbose:    *verbose,
		NoColor:    *noColor,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := tracker.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
