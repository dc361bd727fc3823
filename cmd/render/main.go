package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/woozymasta/spherepath/internal/config"
	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/logger"
	"github.com/woozymasta/spherepath/internal/processor"
	"github.com/woozymasta/spherepath/internal/server"
	"github.com/woozymasta/spherepath/internal/tutorial"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string   `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	OutDir      string   `short:"o" long:"out"         env:"OUT_DIR"     description:"Output directory" default:"steps"`
	Views       []string `short:"v" long:"view"        env:"VIEWS" env-delim:"," description:"Views to render (repeatable)" choice:"globe" choice:"plane"`
	Format      string   `short:"f" long:"format"      env:"FORMAT"      description:"Image format, config value if empty" choice:"png" choice:"webp"`
	Size        int      `short:"s" long:"size"        env:"SIZE"        description:"Image size in pixels, config value if 0"`
	Thumbnail   int      `short:"T" long:"thumbnail"   env:"THUMBNAIL"   description:"Also write thumbnails of this width"`
	Longitude   *float64 `long:"lon"                   description:"Globe focus longitude"`
	Latitude    *float64 `long:"lat"                   description:"Globe focus latitude"`
	Concurrency int      `short:"p" long:"concurrency" env:"CONCURRENCY" description:"Concurrency" default:"4"`
	Force       bool     `short:"F" long:"force"       description:"Force overwrite of existing files"`
	FastCheck   bool     `long:"fast-check"            description:"Skip a view if its directory exists"`
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

	client := &http.Client{Timeout: 15 * time.Second}
	if err := processor.ResolveShortestPath(context.Background(), client, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to load shortest path")
	}

	t, err := tutorial.FromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build tutorial")
	}

	ro := processor.RenderOptions{
		OutDir:      opts.OutDir,
		Views:       opts.Views,
		Format:      strings.ToLower(opts.Format),
		Focus:       server.DefaultFocus(cfg),
		Size:        opts.Size,
		Thumbnail:   opts.Thumbnail,
		Concurrency: opts.Concurrency,
		Quality:     cfg.Render.Quality,
		Force:       opts.Force,
		FastCheck:   opts.FastCheck,
	}
	if len(ro.Views) == 0 {
		ro.Views = []string{cfg.Render.View}
	}
	if ro.Format == "" {
		ro.Format = cfg.Render.Format
	}
	if ro.Size <= 0 {
		ro.Size = cfg.Render.Size
	}
	if opts.Longitude != nil || opts.Latitude != nil {
		lon, lat := ro.Focus.Longitude, ro.Focus.Latitude
		if opts.Longitude != nil {
			lon = *opts.Longitude
		}
		if opts.Latitude != nil {
			lat = *opts.Latitude
		}
		ro.Focus = geo.Focus(lon, lat)
	}

	log.Info().
		Strs("views", ro.Views).
		Str("format", ro.Format).
		Int("size", ro.Size).
		Str("out", ro.OutDir).
		Msg("Starting render")

	summary, err := processor.RenderSteps(t, ro)

	log.Info().
		Int("written", summary.Written).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Render finished")

	if err != nil {
		log.Fatal().Err(err).Msg("Some steps could not be rendered")
	}
}
