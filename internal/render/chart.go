package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KaramelBytes/salesreport-cli/internal/sales"
	"github.com/KaramelBytes/salesreport-cli/internal/utils"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	barTitle     = "Total Sales per Product"
	heatmapTitle = "Sales Heatmap (Total Sales per Product & Month)"
)

// BarChart renders one bar per product in the given order.
func BarChart(w io.Writer, totals []sales.ProductTotal) error {
	names := make([]string, len(totals))
	items := make([]opts.BarData, len(totals))
	for i, t := range totals {
		names[i] = t.Product
		items[i] = opts.BarData{Name: t.Product, Value: sales.Round2(t.Total)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: barTitle, Width: "1000px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: barTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Product", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Sales ($)", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
	)
	bar.SetXAxis(names).AddSeries("Total Sales", items)
	return bar.Render(w)
}

// Heatmap renders the pivot with each cell annotated to two decimals.
func Heatmap(w io.Writer, p *sales.Pivot) error {
	data := make([]opts.HeatMapData, 0, len(p.Products)*len(p.Months))
	for i := range p.Products {
		for j := range p.Months {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, sales.Round2(p.Values[i][j])}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: heatmapTitle, Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: heatmapTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "Month", AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "Product", Data: p.Products}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(p.Min()),
			Max:        float32(p.Max()),
			InRange:    &opts.VisualMapInRange{Color: heatColors},
		}),
	)
	hm.SetXAxis(p.MonthLabels()).AddSeries("Total Sales", data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: string(opts.FuncOpts("function (p) { return Number(p.value[2]).toFixed(2); }")),
		}),
	)
	return hm.Render(w)
}

// WriteBarChart renders the bar chart to path, replacing any existing file.
func WriteBarChart(path string, totals []sales.ProductTotal) error {
	var buf bytes.Buffer
	if err := BarChart(&buf, totals); err != nil {
		return fmt.Errorf("render bar chart: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

// WriteHeatmap renders the heatmap to path, replacing any existing file.
func WriteHeatmap(path string, p *sales.Pivot) error {
	var buf bytes.Buffer
	if err := Heatmap(&buf, p); err != nil {
		return fmt.Errorf("render heatmap: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
