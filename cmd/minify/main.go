package main

import (
	"os"

	"github.com/woozymasta/spherepath/assets"
	"github.com/woozymasta/spherepath/internal/config"
	"github.com/woozymasta/spherepath/internal/logger"
	"github.com/woozymasta/spherepath/internal/server"
	"github.com/woozymasta/spherepath/internal/tutorial"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Output     string `short:"o" long:"out"    description:"Output HTML file" default:"assets/index.html"`
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

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	focus := server.DefaultFocus(cfg)
	page, err := assets.Build(assets.PageData{
		Title:       server.PageTitle,
		Attribution: cfg.Attribution,
		Format:      cfg.Render.Format,
		MaxStep:     tutorial.MaxStep,
		Size:        cfg.Render.Size,
		FocusLon:    focus.Longitude,
		FocusLat:    focus.Latitude,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build page")
	}

	if err := os.WriteFile(opts.Output, page, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write page")
	}

	log.Info().Str("path", opts.Output).Int("bytes", len(page)).Msg("Minify done")
}
