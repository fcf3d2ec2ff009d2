package dashboard

import (
	"fmt"
	"math/big"

	"attendance-dashboard/internal/constants"
)

// CellWriter is the part of *excelize.File the filler needs.
// SetCellDefault stores numeric text as a number cell without going through float64.
type CellWriter interface {
	SetCellDefault(sheet, cell, value string) error
}

// RowValues holds everything written to one metric row.
type RowValues struct {
	Departments map[string]*big.Int
	SDC         *big.Int
	IXD         *big.Int
	Grand       *big.Int
}

// ComputeRow resolves the department values of a metric and its totals.
// MET metrics are always zero.
func ComputeRow(metric string, values map[string]*big.Int) RowValues {
	row := RowValues{Departments: make(map[string]*big.Int, len(constants.DepartmentColumns()))}

	forceZero := constants.IsMETMetric(metric)
	for _, d := range constants.DepartmentColumns() {
		v := new(big.Int)
		if n := values[d.Name]; !forceZero && n != nil {
			v.Set(n)
		}
		row.Departments[d.Name] = v
	}

	dep := row.Departments
	row.SDC = sum(dep[constants.InboundAmzn], dep[constants.InboundTemp], dep[constants.DAAmzn], dep[constants.DATemp])
	row.IXD = sum(dep[constants.CretsAmzn], dep[constants.CretsTemp])
	row.Grand = sum(row.SDC, dep[constants.ICQAAmzn], dep[constants.ICQATemp], row.IXD)

	return row
}

func sum(values ...*big.Int) *big.Int {
	total := new(big.Int)
	for _, v := range values {
		total.Add(total, v)
	}
	return total
}

// FillDashboard writes every metric row of the payload, plus its totals, into sheet.
func FillDashboard(w CellWriter, sheet string, payload Payload) error {
	const op = "service.dashboard.FillDashboard"

	for _, m := range constants.MetricRows() {
		row := ComputeRow(m.Name, payload[m.Name])

		for _, d := range constants.DepartmentColumns() {
			if err := setCell(w, sheet, d.Column, m.Row, row.Departments[d.Name]); err != nil {
				return fmt.Errorf("%s: %s: %w", op, m.Name, err)
			}
		}

		totals := []struct {
			col   string
			value *big.Int
		}{
			{constants.SDCTotalColumn, row.SDC},
			{constants.IXDTotalColumn, row.IXD},
			{constants.GrandTotalColumn, row.Grand},
		}
		for _, t := range totals {
			if err := setCell(w, sheet, t.col, m.Row, t.value); err != nil {
				return fmt.Errorf("%s: %s: %w", op, m.Name, err)
			}
		}
	}

	return nil
}

func setCell(w CellWriter, sheet, col string, row int, value *big.Int) error {
	cell := fmt.Sprintf("%s%d", col, row)
	if err := w.SetCellDefault(sheet, cell, value.String()); err != nil {
		return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
	}
	return nil
}
