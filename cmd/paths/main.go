package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/spherepath/internal/config"
	"github.com/woozymasta/spherepath/internal/logger"
	"github.com/woozymasta/spherepath/internal/processor"
	"github.com/woozymasta/spherepath/internal/tutorial"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Output     string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	Format     string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" choice:"geojson" default:"json"`
	Step       int    `short:"s" long:"step"   description:"Last step to export (geojson exports this step only)" default:"4"`
	NoDrift    bool   `long:"no-drift"         description:"Omit the spacing drift report"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if opts.Step < 0 || opts.Step > tutorial.MaxStep {
		log.Fatal().Int("step", opts.Step).Int("max", tutorial.MaxStep).Msg("--step out of range")
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := &http.Client{Timeout: 15 * time.Second}
	if err := processor.ResolveShortestPath(context.Background(), client, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to load shortest path")
	}

	t, err := tutorial.FromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build tutorial")
	}

	var payload any
	if opts.Format == "geojson" {
		payload, err = processor.BuildGeoJSON(t, opts.Step)
	} else {
		payload, err = processor.BuildExport(t, opts.Step, !opts.NoDrift)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compute paths")
	}

	data, err := processor.Marshal(payload, opts.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal output")
	}

	if opts.Output == "" {
		fmt.Println(string(data))
		return
	}

	if err := processor.SaveFile(opts.Output, data); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output")
	}
	log.Info().
		Str("path", opts.Output).
		Str("format", opts.Format).
		Int("step", opts.Step).
		Msg("Paths exported")
}
