package report

import (
	"context"
	"fmt"
	"io"

	"github.com/KaramelBytes/salesreport-cli/internal/dataset"
	"github.com/KaramelBytes/salesreport-cli/internal/sales"
)

// Summary prints total, average and top-selling product.
type Summary struct{}

func (Summary) Name() string       { return "summary" }
func (Summary) Requires() []string { return []string{dataset.ColTotalSales} }

// Render writes the statistics block.
func (Summary) Render(_ context.Context, env *Env, rs *dataset.RecordSet) error {
	s, err := sales.Summarize(rs)
	if err != nil {
		return err
	}
	writeStats(env.Out, s, rs.HasColumn(dataset.ColProduct))
	return nil
}

func writeStats(w io.Writer, s sales.Summary, hasProduct bool) {
	fmt.Fprintf(w, "\n📊 Total Sales: %s\n", Money(s.Total))
	if s.Count > 0 {
		fmt.Fprintf(w, "📉 Average Sales per Transaction: %s\n", Money(s.Average))
	} else {
		fmt.Fprintln(w, "📉 Average Sales per Transaction: n/a (no Total_Sales values)")
	}
	switch {
	case s.HasTopProduct():
		fmt.Fprintf(w, "🏆 Top-Selling Product: %s\n", s.TopProduct)
	case hasProduct:
		fmt.Fprintln(w, "🏆 Top-Selling Product: n/a (no products with sales)")
	default:
		fmt.Fprintf(w, "🏆 Top-Selling Product: n/a ('%s' column not found)\n", dataset.ColProduct)
	}
}
