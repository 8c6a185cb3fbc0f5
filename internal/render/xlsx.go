// Package render turns aggregates into artifacts: the pivot workbook and the
// HTML bar chart and heatmap.
package render

import (
	"fmt"

	"github.com/KaramelBytes/salesreport-cli/internal/sales"
	"github.com/KaramelBytes/salesreport-cli/internal/utils"
	"github.com/xuri/excelize/v2"
)

// PivotSheet is the only sheet written to the pivot workbook.
const PivotSheet = "Sheet1"

// Heatmap colour stops shared by the workbook colour scale and the HTML heatmap.
var heatColors = []string{"#3B4CC0", "#F7F7F7", "#B40426"}

// WorkbookMeta is stamped into the workbook document properties.
type WorkbookMeta struct {
	RunID  string
	Source string
}

// WritePivotXLSX writes p to path as a single-sheet workbook: products down
// column A, months across row 1. An existing file at path is replaced.
func WritePivotXLSX(path string, p *sales.Pivot, meta WorkbookMeta) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetCellValue(PivotSheet, "A1", "Product"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for j, label := range p.MonthLabels() {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(PivotSheet, cell, label); err != nil {
			return fmt.Errorf("write month %s: %w", label, err)
		}
	}
	for i, product := range p.Products {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(PivotSheet, cell, product); err != nil {
			return fmt.Errorf("write product %s: %w", product, err)
		}
		for j, v := range p.Values[i] {
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return err
			}
			// full precision; the 0.00 number format handles display
			if err := f.SetCellValue(PivotSheet, cell, v); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	if err := stylePivot(f, p); err != nil {
		return err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Sales Pivot (Total Sales per Product & Month)",
		Creator:     "salesreport",
		Identifier:  meta.RunID,
		Description: meta.Source,
	}); err != nil {
		return fmt.Errorf("set doc props: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("encode xlsx: %w", err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func stylePivot(f *excelize.File, p *sales.Pivot) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("new header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(p.Months) + 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(PivotSheet, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if p.Empty() {
		return nil
	}
	if err := f.SetCellStyle(PivotSheet, "A2", fmt.Sprintf("A%d", len(p.Products)+1), bold); err != nil {
		return fmt.Errorf("style products: %w", err)
	}
	num, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return fmt.Errorf("new number style: %w", err)
	}
	valueRange := fmt.Sprintf("B2:%s%d", lastCol, len(p.Products)+1)
	if err := f.SetCellStyle(PivotSheet, "B2", fmt.Sprintf("%s%d", lastCol, len(p.Products)+1), num); err != nil {
		return fmt.Errorf("style values: %w", err)
	}
	if err := f.SetConditionalFormat(PivotSheet, valueRange, []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "min",
		MidType:  "percentile",
		MidValue: "50",
		MaxType:  "max",
		MinColor: heatColors[0],
		MidColor: heatColors[1],
		MaxColor: heatColors[2],
	}}); err != nil {
		return fmt.Errorf("heatmap colour scale: %w", err)
	}
	return nil
}
