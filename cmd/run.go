package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KaramelBytes/salesreport-cli/internal/fetch"
	"github.com/KaramelBytes/salesreport-cli/internal/logging"
	"github.com/KaramelBytes/salesreport-cli/internal/render"
	"github.com/KaramelBytes/salesreport-cli/internal/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Swappable in tests.
var (
	s3ClientFactory = func(ctx context.Context, opt fetch.ClientOptions) (fetch.GetObjectAPI, error) {
		return fetch.NewS3Client(ctx, opt)
	}
	chartOpener render.Opener = render.BrowserOpener{}
)

// runInfo identifies one invocation.
type runInfo struct {
	ID     string
	Source string
}

// runReport fetches the configured source and runs the reporter built by newReporter.
func runReport(cmd *cobra.Command, newReporter func(runInfo) report.Reporter) error {
	if cfg == nil {
		if cfgErr != nil {
			return fmt.Errorf("load config: %w", cfgErr)
		}
		return errors.New("no config loaded")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	info := runInfo{ID: uuid.NewString()}
	log := logging.New(level, cfg.LogFormat, cmd.ErrOrStderr()).With("run_id", info.ID)

	ctx := cmd.Context()
	src, err := buildSource(ctx)
	var res fetch.Result
	if err != nil {
		res = fetch.Unavailable{Source: fmt.Sprintf("s3://%s/%s", cfg.Bucket, cfg.Key), Reason: err}
	} else {
		fetcher := &fetch.Fetcher{Timeout: time.Duration(cfg.FetchTimeoutSec) * time.Second, Log: log}
		res = fetcher.Fetch(ctx, src)
	}
	switch v := res.(type) {
	case fetch.Content:
		info.Source = v.Source
	case fetch.Unavailable:
		info.Source = v.Source
	}

	runner := &report.Runner{
		Out:        cmd.OutOrStdout(),
		Log:        log,
		SampleRows: cfg.SampleRows,
	}
	rep := newReporter(info)
	outcome, err := runner.Run(ctx, rep, res)
	log.Debug("report finished", "report", rep.Name(), "outcome", outcome.String())
	return err
}

func buildSource(ctx context.Context) (fetch.Source, error) {
	if cfg.File != "" {
		return fetch.FileSource{Path: cfg.File}, nil
	}
	client, err := s3ClientFactory(ctx, fetch.ClientOptions{
		Region:       cfg.Region,
		Endpoint:     cfg.Endpoint,
		UsePathStyle: cfg.UsePathStyle,
		MaxAttempts:  1,
	})
	if err != nil {
		return nil, err
	}
	return fetch.S3Source{Client: client, Bucket: cfg.Bucket, Key: cfg.Key}, nil
}

func opener() render.Opener {
	if cfg != nil && cfg.OpenCharts {
		return chartOpener
	}
	return nil
}
