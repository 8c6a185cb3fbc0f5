package dataset

import (
	"errors"
	"math"
	"testing"
	"time"
)

const salesCSV = "Date,Product,Quantity,Price,Total_Sales\n" +
	"2024-01-05,A,2,5,10\n" +
	"2024-02-01,A,1,5,5\n" +
	"2024-01-10,B,4,5,20\n"

func TestParseSalesCSV(t *testing.T) {
	rs, err := Parse(salesCSV, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rs.Len() != 3 || rs.Empty() {
		t.Fatalf("Len = %d", rs.Len())
	}
	if got := rs.MissingColumns(ColDate, ColProduct, ColTotalSales); len(got) != 0 {
		t.Fatalf("unexpected missing columns: %v", got)
	}
	totals := rs.Floats(ColTotalSales)
	want := []float64{10, 5, 20}
	for i := range want {
		if totals[i] != want[i] {
			t.Fatalf("Total_Sales[%d] = %v, want %v", i, totals[i], want[i])
		}
	}
	products := rs.Strings(ColProduct)
	if products[0] != "A" || products[2] != "B" {
		t.Fatalf("products = %v", products)
	}
	dates, ok := rs.Times(ColDate)
	if !ok[1] || dates[1].Month() != time.February {
		t.Fatalf("dates = %v ok=%v", dates, ok)
	}
}

func TestParseHeaderOnlyIsEmpty(t *testing.T) {
	rs, err := Parse("Date,Product,Total_Sales\n", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !rs.Empty() {
		t.Fatalf("expected empty record set")
	}
	if !rs.HasColumn(ColTotalSales) {
		t.Fatalf("header columns should survive: %v", rs.Columns())
	}
	if rs.Floats(ColTotalSales) != nil || rs.Head(5) != nil {
		t.Fatalf("empty set should expose no values")
	}
}

func TestParseBlankText(t *testing.T) {
	if _, err := Parse("  \n", DefaultOptions()); !errors.Is(err, ErrNoHeader) {
		t.Fatalf("err = %v, want ErrNoHeader", err)
	}
}

func TestNilRecordSetIsEmpty(t *testing.T) {
	var rs *RecordSet
	if !rs.Empty() || rs.HasColumn(ColProduct) || rs.Columns() != nil {
		t.Fatalf("nil record set should behave as empty")
	}
}

func TestFloatsMissingAndFormatted(t *testing.T) {
	text := "Product;Total_Sales\nA;\"1.200,50\"\nB;\nC;$30\nD;n/a\n"
	rs, err := Parse(text, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := rs.Floats(ColTotalSales)
	if got[0] != 1200.5 {
		t.Fatalf("got[0] = %v", got[0])
	}
	if !math.IsNaN(got[1]) {
		t.Fatalf("blank cell should be NaN, got %v", got[1])
	}
	if got[2] != 30 {
		t.Fatalf("currency cell = %v", got[2])
	}
	if !math.IsNaN(got[3]) {
		t.Fatalf("text cell should be NaN, got %v", got[3])
	}
	if rs.Strings(ColProduct)[1] != "B" {
		t.Fatalf("products = %v", rs.Strings(ColProduct))
	}
}

func TestRecordSetIsImmutable(t *testing.T) {
	rs, err := Parse(salesCSV, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	vals := rs.Floats(ColTotalSales)
	vals[0] = 999
	names := rs.Strings(ColProduct)
	names[0] = "Z"
	cols := rs.Columns()
	cols[0] = "X"
	if rs.Floats(ColTotalSales)[0] != 10 || rs.Strings(ColProduct)[0] != "A" || rs.Columns()[0] != ColDate {
		t.Fatalf("accessors must return copies")
	}
}

func TestHead(t *testing.T) {
	rs, err := Parse(salesCSV, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	head := rs.Head(2)
	if len(head) != 2 || head[1][1] != "A" {
		t.Fatalf("head = %v", head)
	}
	if len(rs.Head(50)) != 3 {
		t.Fatalf("head should clamp to row count")
	}
}

func TestRaggedRowsArePadded(t *testing.T) {
	rs, err := Parse("Product,Total_Sales\nA\nB,4\n", DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := rs.Floats(ColTotalSales)
	if !math.IsNaN(got[0]) || got[1] != 4 {
		t.Fatalf("got %v", got)
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		in    string
		month time.Month
		ok    bool
	}{
		{"2024-03-15", time.March, true},
		{"2024-03-15T10:00:00Z", time.March, true},
		{"03/15/2024", time.March, true},
		{"3/5/2024", time.March, true},
		{"2024/11/02", time.November, true},
		{"yesterday", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTime(c.in)
		if ok != c.ok {
			t.Errorf("%q: ok=%v want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got.Month() != c.month {
			t.Errorf("%q: month=%v want %v", c.in, got.Month(), c.month)
		}
	}
}

func TestParseNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"10", 10, true},
		{"1,234.56", 1234.56, true},
		{"1.234,56", 1234.56, true},
		{"1,200", 1200, true},
		{"0,5", 0.5, true},
		{"$99.90", 99.9, true},
		{"(15)", -15, true},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := parseNumeric(c.in, Options{})
		if ok != c.ok || (ok && math.Abs(got-c.want) > 1e-9) {
			t.Errorf("%q: got %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestSniffDelimiter(t *testing.T) {
	if d := sniffDelimiter("a;b;c\n1;2;3"); d != ';' {
		t.Fatalf("got %q", d)
	}
	if d := sniffDelimiter("a\tb\n"); d != '\t' {
		t.Fatalf("got %q", d)
	}
	if d := sniffDelimiter("single\n"); d != ',' {
		t.Fatalf("got %q", d)
	}
}

func TestParseRepeatedAndBlankHeaders(t *testing.T) {
	text := "Date,Product,Total_Sales,Total_Sales,,Date\n" +
		"2024-01-05,A,10,99,x,2023-12-01\n" +
		"2024-02-01,B,5,98,y,2023-12-02\n"
	rs, err := Parse(text, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"Date", "Product", "Total_Sales", "Total_Sales.1", "Unnamed: 4", "Date.1"}
	got := rs.Columns()
	if len(got) != len(want) {
		t.Fatalf("columns = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns = %v, want %v", got, want)
		}
	}
	totals := rs.Floats(ColTotalSales)
	if len(totals) != 2 || totals[0] != 10 || totals[1] != 5 {
		t.Fatalf("first Total_Sales column should win, got %v", totals)
	}
	if dup := rs.Floats("Total_Sales.1"); len(dup) != 2 || dup[0] != 99 {
		t.Fatalf("Total_Sales.1 = %v", dup)
	}
	dates, ok := rs.Times(ColDate)
	if !ok[0] || dates[0].Year() != 2024 {
		t.Fatalf("dates = %v ok=%v", dates, ok)
	}
	if head := rs.Head(1); len(head) != 1 || len(head[0]) != len(want) {
		t.Fatalf("head = %v", head)
	}
}

func TestUniqueHeader(t *testing.T) {
	got := uniqueHeader([]string{" A ", "A", "A.1", "", "A"})
	want := []string{"A", "A.1", "A.1.1", "Unnamed: 3", "A.2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("uniqueHeader = %v, want %v", got, want)
		}
	}
}

func TestAccessorsOnUnknownColumn(t *testing.T) {
	rs, err := Parse(salesCSV, DefaultOptions())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if rs.Strings("Nope") != nil || rs.Floats("Nope") != nil {
		t.Fatalf("unknown column should yield nil")
	}
	if vals, ok := rs.Times("Nope"); vals != nil || ok != nil {
		t.Fatalf("unknown column should yield nil times")
	}
}
