package report

import (
	"context"
	"fmt"

	"github.com/KaramelBytes/salesreport-cli/internal/dataset"
	"github.com/KaramelBytes/salesreport-cli/internal/render"
	"github.com/KaramelBytes/salesreport-cli/internal/sales"
)

// Chart prints the summary statistics and renders a bar chart of sales per product.
type Chart struct {
	// File is the HTML output path.
	File string
	// Opener displays the chart; nil skips display.
	Opener render.Opener
}

func (Chart) Name() string { return "chart" }
func (Chart) Requires() []string {
	return []string{dataset.ColTotalSales, dataset.ColProduct}
}

// Render writes the statistics, the chart file and opens it.
func (c Chart) Render(_ context.Context, env *Env, rs *dataset.RecordSet) error {
	s, err := sales.Summarize(rs)
	if err != nil {
		return err
	}
	writeStats(env.Out, s, true)

	totals, err := sales.TotalsByProduct(rs)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		return Warning("⚠️ No product totals to chart.")
	}
	if err := render.WriteBarChart(c.File, totals); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "📈 Bar chart saved to: %s\n", c.File)
	show(env, c.Opener, c.File)
	return nil
}

// show opens path when an Opener is set. Display failures are logged only.
func show(env *Env, o render.Opener, path string) {
	if o == nil {
		return
	}
	if err := o.Open(path); err != nil {
		env.Log.Warn("could not open viewer", "path", path, "error", err)
	}
}
