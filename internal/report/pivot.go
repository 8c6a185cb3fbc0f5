package report

import (
	"context"
	"fmt"

	"github.com/KaramelBytes/salesreport-cli/internal/dataset"
	"github.com/KaramelBytes/salesreport-cli/internal/render"
	"github.com/KaramelBytes/salesreport-cli/internal/sales"
)

// Pivot builds the Product × Month pivot, exports it to a workbook and renders a heatmap.
type Pivot struct {
	// File is the workbook path; an existing file is overwritten.
	File string
	// HeatmapFile is the HTML heatmap path.
	HeatmapFile string
	Opener      render.Opener
	Meta        render.WorkbookMeta
}

func (Pivot) Name() string { return "pivot" }
func (Pivot) Requires() []string {
	return []string{dataset.ColDate, dataset.ColProduct, dataset.ColTotalSales}
}

// Render prints the pivot, writes the workbook and heatmap, then opens the heatmap.
func (p Pivot) Render(_ context.Context, env *Env, rs *dataset.RecordSet) error {
	pv, err := sales.BuildPivot(rs)
	if err != nil {
		return err
	}
	if pv.SkippedRows > 0 {
		fmt.Fprintf(env.Out, "⚠ Skipped %d row(s) with an unparseable Date, empty Product or missing Total_Sales\n", pv.SkippedRows)
	}
	if pv.Empty() {
		return Warning("⚠️ No rows left to pivot after parsing dates.")
	}

	fmt.Fprintln(env.Out, "\n📊 Sales Pivot Table:")
	fmt.Fprintln(env.Out, renderPivot(pv))

	if err := render.WritePivotXLSX(p.File, pv, p.Meta); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "📂 Pivot table saved to: %s\n", p.File)

	if err := render.WriteHeatmap(p.HeatmapFile, pv); err != nil {
		return err
	}
	fmt.Fprintf(env.Out, "🗺️ Heatmap saved to: %s\n", p.HeatmapFile)
	show(env, p.Opener, p.HeatmapFile)
	return nil
}
