// Package dataset holds the in-memory record set parsed from a sales CSV.
//
// A RecordSet wraps a gota DataFrame. It is immutable once parsed: every
// accessor returns a copy, so reports can aggregate without touching the
// source rows.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Well-known sales columns.
const (
	ColDate       = "Date"
	ColProduct    = "Product"
	ColQuantity   = "Quantity"
	ColPrice      = "Price"
	ColTotalSales = "Total_Sales"
)

// ErrNoHeader indicates the text contained no header row at all.
var ErrNoHeader = errors.New("csv has no header row")

// Options controls CSV parsing.
type Options struct {
	// Delimiter for CSV. If 0, sniffs the header line among ',', ';', '\t'.
	Delimiter rune
	// Numeric parsing locale. If DecimalSeparator is 0, auto-detect per value.
	DecimalSeparator   rune
	ThousandsSeparator rune
}

// DefaultOptions returns comma-or-sniffed parsing with auto-detected number locale.
func DefaultOptions() Options { return Options{} }

// RecordSet is an ordered set of rows keyed by column name.
type RecordSet struct {
	df      dataframe.DataFrame
	columns []string
	rows    int
	opt     Options
}

// Parse reads CSV text into a RecordSet. A header without data rows yields an
// empty RecordSet, not an error.
func Parse(text string, opt Options) (*RecordSet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoHeader
	}
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(text)
	}
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	var records [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	header := uniqueHeader(records[0])
	records[0] = header
	ncol := len(header)
	// Normalize ragged rows
	for i := 1; i < len(records); i++ {
		if len(records[i]) != ncol {
			tmp := make([]string, ncol)
			copy(tmp, records[i])
			records[i] = tmp
		}
	}

	rs := &RecordSet{columns: header, rows: len(records) - 1, opt: opt}
	if rs.rows == 0 {
		return rs, nil
	}
	rs.df = dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues([]string{"", "NA", "NaN", "N/A", "null"}),
		dataframe.WithTypes(map[string]series.Type{
			ColDate:    series.String,
			ColProduct: series.String,
		}),
	)
	if rs.df.Err != nil {
		return nil, fmt.Errorf("load records: %w", rs.df.Err)
	}
	return rs, nil
}

// Len returns the number of data rows.
func (rs *RecordSet) Len() int {
	if rs == nil {
		return 0
	}
	return rs.rows
}

// Empty reports whether the set is absent or has no rows.
func (rs *RecordSet) Empty() bool { return rs.Len() == 0 }

// Columns returns the header names in file order.
func (rs *RecordSet) Columns() []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.columns))
	copy(out, rs.columns)
	return out
}

// HasColumn reports whether name is a header column (exact match).
func (rs *RecordSet) HasColumn(name string) bool {
	if rs == nil {
		return false
	}
	for _, c := range rs.columns {
		if c == name {
			return true
		}
	}
	return false
}

// MissingColumns returns the subset of names not present, in argument order.
func (rs *RecordSet) MissingColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !rs.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	return missing
}

// Strings returns a copy of a column's raw values. Missing cells are "".
func (rs *RecordSet) Strings(name string) []string {
	if rs.Empty() || !rs.HasColumn(name) {
		return nil
	}
	col := rs.df.Col(name)
	if col.Err != nil {
		return nil
	}
	vals := col.Records()
	nan := col.IsNaN()
	for i := range vals {
		if nan[i] {
			vals[i] = ""
		} else {
			vals[i] = strings.TrimSpace(vals[i])
		}
	}
	return vals
}

// Floats returns a column as numbers. Missing or unparseable cells are NaN.
func (rs *RecordSet) Floats(name string) []float64 {
	if rs.Empty() || !rs.HasColumn(name) {
		return nil
	}
	col := rs.df.Col(name)
	if col.Err != nil {
		return nil
	}
	switch col.Type() {
	case series.Float, series.Int:
		vals := col.Float()
		for i, isNaN := range col.IsNaN() {
			if isNaN {
				vals[i] = math.NaN()
			}
		}
		return vals
	}
	raw := rs.Strings(name)
	out := make([]float64, len(raw))
	for i, v := range raw {
		if x, ok := parseNumeric(v, rs.opt); ok {
			out[i] = x
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// Times parses a column as dates. ok[i] is false where the cell is missing or unparseable.
func (rs *RecordSet) Times(name string) (vals []time.Time, ok []bool) {
	raw := rs.Strings(name)
	if raw == nil {
		return nil, nil
	}
	vals = make([]time.Time, len(raw))
	ok = make([]bool, len(raw))
	for i, v := range raw {
		vals[i], ok[i] = ParseTime(v)
	}
	return vals, ok
}

// Head returns up to n rows as strings, without the header.
func (rs *RecordSet) Head(n int) [][]string {
	if rs.Empty() || n <= 0 {
		return nil
	}
	if n > rs.rows {
		n = rs.rows
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sub := rs.df.Subset(idx)
	if sub.Err != nil {
		return nil
	}
	recs := sub.Records()
	if len(recs) <= 1 {
		return nil
	}
	return recs[1:]
}

// Frame returns a copy of the underlying DataFrame.
func (rs *RecordSet) Frame() dataframe.DataFrame {
	if rs.Empty() {
		return dataframe.DataFrame{}
	}
	return rs.df.Copy()
}

// uniqueHeader trims header names and makes them unique: a blank name becomes
// "Unnamed: <i>" and a repeat of "X" becomes "X.1", "X.2", ... The first
// occurrence keeps its name, so lookups by the expected column hit it.
func uniqueHeader(raw []string) []string {
	out := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s.%d", h, n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}

func sniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}
	best, bestN := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}
