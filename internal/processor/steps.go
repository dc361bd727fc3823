package processor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/render"
	"github.com/woozymasta/spherepath/internal/tutorial"
)

// RenderOptions controls a batch render of tutorial steps.
type RenderOptions struct {
	OutDir      string
	Views       []string
	Format      string
	Focus       geo.Orientation
	Size        int
	Thumbnail   int // thumbnail width in pixels, 0 disables thumbnails
	Concurrency int
	Quality     float32
	Force       bool // overwrite existing files
	FastCheck   bool // skip a view whose directory already exists
}

// RenderSummary counts what a batch render did.
type RenderSummary struct {
	Written int
	Skipped int
	Failed  int
}

type renderJob struct {
	View string
	Step int
}

type renderResult struct {
	Err     error
	Job     renderJob
	Skipped bool
}

// StepPath is the output file of one rendered step.
func StepPath(dir, view string, step int, format string) string {
	return filepath.Join(dir, view, fmt.Sprintf("step-%d.%s", step, format))
}

// ThumbnailPath is the output file of one step thumbnail.
func ThumbnailPath(dir, view string, step int, format string) string {
	return filepath.Join(dir, view, "thumb", fmt.Sprintf("step-%d.%s", step, format))
}

// RenderSteps renders every step of every view to files using a bounded pool
// of workers, one surface per job. Failed jobs are logged and reported
// together in the returned error.
func RenderSteps(t tutorial.Tutorial, opts RenderOptions) (RenderSummary, error) {
	if _, err := render.ContentType(opts.Format); err != nil {
		return RenderSummary{}, err
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}

	var jobs []renderJob
	var summary RenderSummary
	for _, view := range opts.Views {
		if opts.FastCheck {
			if _, err := os.Stat(filepath.Join(opts.OutDir, view)); err == nil {
				log.Info().
					Str("view", view).
					Msg("View directory exists, skipping (fast-check)")
				summary.Skipped += tutorial.MaxStep + 1
				continue
			}
		}
		for step := 0; step <= tutorial.MaxStep; step++ {
			jobs = append(jobs, renderJob{View: view, Step: step})
		}
	}

	log.Debug().
		Int("jobs", len(jobs)).
		Int("concurrency", opts.Concurrency).
		Msg("Rendering steps")

	results := processBatch(t, opts, jobs)

	var errs []error
	for _, res := range results {
		switch {
		case res.Err != nil:
			summary.Failed++
			errs = append(errs, fmt.Errorf("%s step %d: %w", res.Job.View, res.Job.Step, res.Err))
			log.Error().
				Err(res.Err).
				Str("view", res.Job.View).
				Int("step", res.Job.Step).
				Msg("Failed to render step")
		case res.Skipped:
			summary.Skipped++
		default:
			summary.Written++
		}
	}

	return summary, errors.Join(errs...)
}

func processBatch(t tutorial.Tutorial, opts RenderOptions, batch []renderJob) []renderResult {
	jobs := make(chan renderJob, len(batch))
	results := make(chan renderResult, len(batch))

	go func() {
		for _, j := range batch {
			jobs <- j
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	for i := 0; i < opts.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				skipped, err := renderStep(t, opts, j)
				results <- renderResult{Job: j, Skipped: skipped, Err: err}
			}
		}()
	}
	wg.Wait()
	close(results)

	out := make([]renderResult, 0, len(batch))
	for res := range results {
		out = append(out, res)
	}
	return out
}

func renderStep(t tutorial.Tutorial, opts RenderOptions, j renderJob) (bool, error) {
	outPath := StepPath(opts.OutDir, j.View, j.Step, opts.Format)

	// check existence if not forcing overwrite
	if !opts.Force {
		if info, err := os.Stat(outPath); err == nil && info.Size() > 0 {
			return true, nil
		}
	}

	surface, err := render.New(j.View, opts.Size, t.Start.Radius(), opts.Focus)
	if err != nil {
		return false, err
	}
	seq, err := tutorial.NewSequencer(surface, t)
	if err != nil {
		return false, err
	}
	if err := seq.Display(j.Step); err != nil {
		return false, err
	}

	if err := writeImage(outPath, surface.Image(), opts); err != nil {
		return false, err
	}

	if opts.Thumbnail > 0 {
		thumb := render.Scale(surface.Image(), opts.Thumbnail)
		if err := writeImage(ThumbnailPath(opts.OutDir, j.View, j.Step, opts.Format), thumb, opts); err != nil {
			return false, err
		}
	}

	log.Trace().Str("path", outPath).Msg("Step rendered")
	return false, nil
}

func writeImage(path string, img image.Image, opts RenderOptions) error {
	var buf bytes.Buffer
	if err := render.Encode(&buf, img, opts.Format, opts.Quality); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
