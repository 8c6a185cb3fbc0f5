// Package report runs one of the sales reports against a fetch result.
//
// Every report shares the same straight-line flow: check that data is present,
// check the required columns, preview the first rows, then render. Reports
// differ only in their required columns and Render step.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/salesreport-cli/internal/dataset"
	"github.com/KaramelBytes/salesreport-cli/internal/fetch"
	"github.com/KaramelBytes/salesreport-cli/internal/logging"
)

// NoDataMessage is printed when there is nothing to analyze.
const NoDataMessage = "No data available for analysis."

// Outcome is the terminal state of a run.
type Outcome int

const (
	// NoData means the fetch failed or the record set was empty.
	NoData Outcome = iota
	// Warned means required columns were missing or nothing could be aggregated.
	Warned
	// Reported means the report was produced.
	Reported
)

func (o Outcome) String() string {
	switch o {
	case NoData:
		return "no data"
	case Warned:
		return "warned"
	case Reported:
		return "reported"
	default:
		return "unknown"
	}
}

// Reporter is one report variant.
type Reporter interface {
	Name() string
	// Requires lists the columns that must be present.
	Requires() []string
	Render(ctx context.Context, env *Env, rs *dataset.RecordSet) error
}

// Warning is returned by Render to stop a report with a user-facing message
// instead of failing the run.
type Warning string

func (w Warning) Error() string { return string(w) }

// Env carries what reports need to present their results.
type Env struct {
	Out io.Writer
	Log logging.Logger
}

// Runner validates preconditions and dispatches to a Reporter.
type Runner struct {
	Out io.Writer
	Log logging.Logger
	// SampleRows is how many leading rows to preview; 0 disables the preview.
	SampleRows   int
	ParseOptions dataset.Options
}

// Run turns res into a record set and runs rep on it. Missing data and missing
// columns are reported on Out and are not errors; only failures to produce an
// artifact are returned.
func (r *Runner) Run(ctx context.Context, rep Reporter, res fetch.Result) (Outcome, error) {
	rs := r.load(res, r.logger().With("report", rep.Name()))
	return r.RunRecords(ctx, rep, rs)
}

// RunRecords runs rep on an already parsed record set; nil counts as no data.
func (r *Runner) RunRecords(ctx context.Context, rep Reporter, rs *dataset.RecordSet) (Outcome, error) {
	log := r.logger().With("report", rep.Name())
	out := r.Out
	if out == nil {
		out = io.Discard
	}
	if rs.Empty() {
		fmt.Fprintln(out, NoDataMessage)
		return NoData, nil
	}
	required := rep.Requires()
	if missing := rs.MissingColumns(required...); len(missing) > 0 {
		log.Debug("missing columns", "missing", missing)
		fmt.Fprintln(out, MissingColumnsMessage(required))
		return Warned, nil
	}
	if r.SampleRows > 0 {
		fmt.Fprintf(out, "\n🔹 First %d rows of data:\n", r.SampleRows)
		fmt.Fprintln(out, renderTable(rs.Columns(), rs.Head(r.SampleRows)))
	}
	err := rep.Render(ctx, &Env{Out: out, Log: log}, rs)
	var w Warning
	switch {
	case err == nil:
		return Reported, nil
	case errors.As(err, &w):
		fmt.Fprintln(out, w.Error())
		return Warned, nil
	default:
		return Reported, fmt.Errorf("%s report: %w", rep.Name(), err)
	}
}

func (r *Runner) logger() logging.Logger {
	if r.Log == nil {
		return logging.NoOpLogger{}
	}
	return r.Log
}

func (r *Runner) load(res fetch.Result, log logging.Logger) *dataset.RecordSet {
	switch v := res.(type) {
	case fetch.Content:
		rs, err := dataset.Parse(v.Text, r.ParseOptions)
		if err != nil {
			log.Warn("could not parse CSV", "source", v.Source, "error", err)
			return nil
		}
		log.Debug("parsed record set", "source", v.Source, "rows", rs.Len(), "columns", len(rs.Columns()))
		return rs
	case fetch.Unavailable:
		log.Warn(downloadErrorMessage(v), "source", v.Source)
		return nil
	default:
		return nil
	}
}

func downloadErrorMessage(u fetch.Unavailable) string {
	if strings.HasPrefix(u.Source, "s3://") {
		return fmt.Sprintf("Error downloading file from S3: %v", u.Error())
	}
	return fmt.Sprintf("Error reading file %s: %v", u.Source, u.Error())
}

// MissingColumnsMessage is the warning printed when required columns are absent.
func MissingColumnsMessage(required []string) string {
	if len(required) == 1 {
		return fmt.Sprintf("⚠️ '%s' column not found in dataset.", required[0])
	}
	quoted := make([]string, len(required))
	for i, c := range required {
		quoted[i] = "'" + c + "'"
	}
	return fmt.Sprintf("⚠️ Required columns (%s) not found in dataset.", strings.Join(quoted, ", "))
}
