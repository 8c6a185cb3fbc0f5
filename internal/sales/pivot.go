package sales

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/KaramelBytes/salesreport-cli/internal/dataset"
)

// Month is a calendar month bucket.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf truncates t to its calendar month.
func MonthOf(t time.Time) Month { return Month{Year: t.Year(), Month: t.Month()} }

// String renders the month as YYYY-MM.
func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)) }

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Pivot is summed Total_Sales keyed by (Product, Month). Values[i][j] belongs to
// Products[i] and Months[j]; combinations absent from the source are 0.
type Pivot struct {
	Products []string
	Months   []Month
	Values   [][]float64
	// SkippedRows counts rows excluded for an unparseable Date, empty Product
	// or missing Total_Sales.
	SkippedRows int
}

// BuildPivot buckets rows by calendar month and sums Total_Sales per product.
// Products are sorted by name, months chronologically.
func BuildPivot(rs *dataset.RecordSet) (*Pivot, error) {
	if len(rs.MissingColumns(dataset.ColDate, dataset.ColProduct, dataset.ColTotalSales)) > 0 {
		return nil, ErrMissingColumn
	}
	dates, okDates := rs.Times(dataset.ColDate)
	products := rs.Strings(dataset.ColProduct)
	values := rs.Floats(dataset.ColTotalSales)

	type cell struct {
		product string
		month   Month
	}
	sums := make(map[cell]float64)
	seenProducts := make(map[string]struct{})
	seenMonths := make(map[Month]struct{})
	p := &Pivot{}
	for i := range products {
		if !okDates[i] || products[i] == "" || math.IsNaN(values[i]) {
			p.SkippedRows++
			continue
		}
		m := MonthOf(dates[i])
		sums[cell{products[i], m}] += values[i]
		seenProducts[products[i]] = struct{}{}
		seenMonths[m] = struct{}{}
	}

	for name := range seenProducts {
		p.Products = append(p.Products, name)
	}
	sort.Strings(p.Products)
	for m := range seenMonths {
		p.Months = append(p.Months, m)
	}
	sort.Slice(p.Months, func(i, j int) bool { return p.Months[i].Before(p.Months[j]) })

	p.Values = make([][]float64, len(p.Products))
	for i, name := range p.Products {
		row := make([]float64, len(p.Months))
		for j, m := range p.Months {
			row[j] = sums[cell{name, m}]
		}
		p.Values[i] = row
	}
	return p, nil
}

// Value returns the cell for product and month, or 0 when either is unknown.
func (p *Pivot) Value(product string, m Month) float64 {
	i := sort.SearchStrings(p.Products, product)
	if i >= len(p.Products) || p.Products[i] != product {
		return 0
	}
	for j, pm := range p.Months {
		if pm == m {
			return p.Values[i][j]
		}
	}
	return 0
}

// RowTotal sums all months for the product at row i.
func (p *Pivot) RowTotal(i int) float64 {
	var sum float64
	for _, v := range p.Values[i] {
		sum += v
	}
	return sum
}

// MonthLabels returns the month headers as YYYY-MM strings.
func (p *Pivot) MonthLabels() []string {
	out := make([]string, len(p.Months))
	for i, m := range p.Months {
		out[i] = m.String()
	}
	return out
}

// Max returns the largest cell value, or 0 for an empty pivot.
func (p *Pivot) Max() float64 {
	_, hi := p.bounds()
	return hi
}

// Min returns the smallest cell value, or 0 for an empty pivot. Refunds make it negative.
func (p *Pivot) Min() float64 {
	lo, _ := p.bounds()
	return lo
}

func (p *Pivot) bounds() (lo, hi float64) {
	first := true
	for _, row := range p.Values {
		for _, v := range row {
			if first {
				lo, hi, first = v, v, false
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// Empty reports whether the pivot has no cells.
func (p *Pivot) Empty() bool { return len(p.Products) == 0 || len(p.Months) == 0 }
