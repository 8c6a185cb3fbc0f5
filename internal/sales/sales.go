// Package sales computes the aggregates behind every report: overall summary
// statistics, per-product totals and the Product × Month pivot. All functions
// read from a dataset.RecordSet and never modify it.
package sales

import (
	"errors"
	"math"
	"sort"

	"github.com/KaramelBytes/salesreport-cli/internal/dataset"
	"github.com/shopspring/decimal"
)

// ErrMissingColumn is returned when an aggregate needs a column the set lacks.
var ErrMissingColumn = errors.New("required column not found")

// Summary holds the headline statistics for the Total_Sales column.
type Summary struct {
	Total   float64
	Average float64
	// Count is the number of non-missing Total_Sales values.
	Count int
	// TopProduct is empty when the Product column is absent or has no values.
	TopProduct string
	TopTotal   float64
}

// HasTopProduct reports whether a top product could be determined.
func (s Summary) HasTopProduct() bool { return s.TopProduct != "" }

// ProductTotal is one entry of the per-product aggregate.
type ProductTotal struct {
	Product string
	Total   float64
}

// Summarize computes total, mean and top product. Missing Total_Sales cells are skipped.
func Summarize(rs *dataset.RecordSet) (Summary, error) {
	if !rs.HasColumn(dataset.ColTotalSales) {
		return Summary{}, ErrMissingColumn
	}
	var s Summary
	for _, v := range rs.Floats(dataset.ColTotalSales) {
		if math.IsNaN(v) {
			continue
		}
		s.Total += v
		s.Count++
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	if rs.HasColumn(dataset.ColProduct) {
		totals, err := TotalsByProduct(rs)
		if err != nil {
			return Summary{}, err
		}
		if top, ok := TopProduct(totals); ok {
			s.TopProduct = top.Product
			s.TopTotal = top.Total
		}
	}
	return s, nil
}

// TotalsByProduct groups Total_Sales by Product and returns the sums sorted by
// product name. Rows with an empty Product or missing Total_Sales are skipped.
func TotalsByProduct(rs *dataset.RecordSet) ([]ProductTotal, error) {
	if len(rs.MissingColumns(dataset.ColProduct, dataset.ColTotalSales)) > 0 {
		return nil, ErrMissingColumn
	}
	products := rs.Strings(dataset.ColProduct)
	values := rs.Floats(dataset.ColTotalSales)
	sums := make(map[string]float64)
	for i, p := range products {
		if p == "" || math.IsNaN(values[i]) {
			continue
		}
		sums[p] += values[i]
	}
	out := make([]ProductTotal, 0, len(sums))
	for p, v := range sums {
		out = append(out, ProductTotal{Product: p, Total: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product < out[j].Product })
	return out, nil
}

// TopProduct returns the entry with the largest total. When several products
// share the maximum the first in the given order wins; callers should treat the
// choice among ties as unspecified.
func TopProduct(totals []ProductTotal) (ProductTotal, bool) {
	if len(totals) == 0 {
		return ProductTotal{}, false
	}
	best := totals[0]
	for _, t := range totals[1:] {
		if t.Total > best.Total {
			best = t
		}
	}
	return best, true
}

// Round2 rounds half away from zero to cents.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
