package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/KaramelBytes/salesreport-cli/internal/sales"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func renderPivot(p *sales.Pivot) string {
	headers := append([]string{"Product"}, p.MonthLabels()...)
	rows := make([][]string, len(p.Products))
	for i, name := range p.Products {
		row := make([]string, 0, len(p.Months)+1)
		row = append(row, name)
		for _, v := range p.Values[i] {
			row = append(row, fmt.Sprintf("%.2f", v))
		}
		rows[i] = row
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Money formats v as dollars with thousands separators and two decimals.
func Money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", sales.Round2(v))
}
