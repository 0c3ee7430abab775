// Command nametag retags filenames by year, label and date.
//
// It parses flags, validates configuration, and either prints how each
// input tokenizes (--tokens) or runs the rename pipeline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pkt.systems/version"

	"github.com/backmassage/nametag/internal/config"
	"github.com/backmassage/nametag/internal/display"
	"github.com/backmassage/nametag/internal/logging"
	"github.com/backmassage/nametag/internal/pipeline"
)

func init() {
	version.SetDefaultModule("github.com/backmassage/nametag")
}

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: no logger yet, so errors go straight to stderr.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], os.Stderr); err != nil {
		switch {
		case errors.Is(err, config.ErrHelp):
			return 0
		case errors.Is(err, config.ErrVersion):
			fmt.Println(version.Module(), version.Current())
			return 0
		}
		fmt.Fprintf(os.Stderr, "nametag: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "nametag: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nametag: %v\n", err)
		return 1
	}
	defer log.Close()

	if cfg.ShowTokens {
		if err := pipeline.Inspect(&cfg, os.Stdout); err != nil {
			log.Error("%v", err)
			return 1
		}
		return 0
	}

	display.PrintBanner(os.Stdout)
	log.Info("=== nametag %s ===", version.Current())
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be renamed")
	}

	// Cancel between files on SIGINT/SIGTERM so no rename is cut short.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping after current file")
		cancel()
	}()

	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
