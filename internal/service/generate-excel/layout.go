package generate_excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"attendance-dashboard/internal/constants"
)

const (
	titleRow  = 1
	groupRow  = 3
	headerRow = 4
)

type headerGroup struct {
	Title string
	From  string
	To    string
}

var headerGroups = []headerGroup{
	{Title: "SDC", From: "B", To: constants.SDCTotalColumn},
	{Title: "ICQA", From: "G", To: "H"},
	{Title: "IXD", From: "I", To: constants.IXDTotalColumn},
	{Title: "Total", From: constants.GrandTotalColumn, To: constants.GrandTotalColumn},
}

// DashboardLayout builds an empty DD-Metrics workbook that the dashboard generator can use as its template.
// The caller owns the returned file.
func (g *GenerateExcelService) DashboardLayout() (*excelize.File, error) {
	const op = "service.generate_excel.DashboardLayout"

	f := excelize.NewFile()
	sheet := constants.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := writeLayout(f, sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func writeLayout(f *excelize.File, sheet string) error {
	// --- styles ---
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFF2CC"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("total style: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}

	// 1. title
	title := cellName("A", titleRow)
	if err := f.SetCellValue(sheet, title, "Daily Attendance DD Metrics"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, title, title, titleStyle); err != nil {
		return fmt.Errorf("title style: %w", err)
	}

	// 2. department groups
	for _, grp := range headerGroups {
		from, to := cellName(grp.From, groupRow), cellName(grp.To, groupRow)
		if err := f.SetCellValue(sheet, from, grp.Title); err != nil {
			return err
		}
		if from != to {
			if err := f.MergeCell(sheet, from, to); err != nil {
				return fmt.Errorf("merge %s:%s: %w", from, to, err)
			}
		}
	}

	// 3. column headers
	headers := map[string]string{
		"A":                        "Metric",
		constants.SDCTotalColumn:   "SDC Total",
		constants.IXDTotalColumn:   "IXD Total",
		constants.GrandTotalColumn: "Grand Total",
	}
	for _, d := range constants.DepartmentColumns() {
		headers[d.Column] = d.Name
	}
	for col, text := range headers {
		if err := f.SetCellValue(sheet, cellName(col, headerRow), text); err != nil {
			return err
		}
	}

	lastCol := constants.GrandTotalColumn
	if err := f.SetCellStyle(sheet, cellName("A", groupRow), cellName(lastCol, headerRow), headerStyle); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	// 4. metric labels
	firstRow, lastRow := 0, 0
	for _, m := range constants.MetricRows() {
		if err := f.SetCellValue(sheet, cellName("A", m.Row), m.Name); err != nil {
			return err
		}
		if firstRow == 0 || m.Row < firstRow {
			firstRow = m.Row
		}
		if m.Row > lastRow {
			lastRow = m.Row
		}
	}

	for _, col := range []string{constants.SDCTotalColumn, constants.IXDTotalColumn, constants.GrandTotalColumn} {
		if err := f.SetCellStyle(sheet, cellName(col, firstRow), cellName(col, lastRow), totalStyle); err != nil {
			return fmt.Errorf("total style %s: %w", col, err)
		}
	}

	// --- final touches ---
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      1,
		YSplit:      headerRow,
		TopLeftCell: cellName("B", headerRow+1),
		ActivePane:  "bottomRight",
	}); err != nil {
		return fmt.Errorf("freeze panes: %w", err)
	}

	if err := f.SetColWidth(sheet, "A", "A", 20); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", lastCol, 14); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	return nil
}

func cellName(col string, row int) string {
	name, _ := excelize.JoinCellName(col, row)
	return name
}
