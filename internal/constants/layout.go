package constants

import "strings"

// Layout of the DD-Metrics sheet.
const (
	SheetName = "DD-Metrics"

	SDCTotalColumn   = "F"
	IXDTotalColumn   = "K"
	GrandTotalColumn = "L"

	// METPrefix marks metrics that are always written as zeros.
	METPrefix = "MET"
)

// Department names.
const (
	InboundAmzn = "inbound_amzn"
	InboundTemp = "inbound_temp"
	DAAmzn      = "da_amzn"
	DATemp      = "da_temp"
	ICQAAmzn    = "icqa_amzn"
	ICQATemp    = "icqa_temp"
	CretsAmzn   = "crets_amzn"
	CretsTemp   = "crets_temp"
)

type MetricRow struct {
	Name string
	Row  int
}

type DepartmentColumn struct {
	Name   string
	Column string
}

var metricRows = [...]MetricRow{
	{Name: "RegularHC", Row: 5},
	{Name: "RegularExpected", Row: 6},
	{Name: "RegularPresent", Row: 7},
	{Name: "ShiftedHC", Row: 8},
	{Name: "ShiftedExpected", Row: 9},
	{Name: "ShiftedPresent", Row: 10},
	{Name: "VET", Row: 11},
	{Name: "VTO", Row: 12},
	{Name: "METExpected", Row: 13},
	{Name: "METPresent", Row: 14},
}

var departmentColumns = [...]DepartmentColumn{
	{Name: InboundAmzn, Column: "B"},
	{Name: InboundTemp, Column: "C"},
	{Name: DAAmzn, Column: "D"},
	{Name: DATemp, Column: "E"},
	{Name: ICQAAmzn, Column: "G"},
	{Name: ICQATemp, Column: "H"},
	{Name: CretsAmzn, Column: "I"},
	{Name: CretsTemp, Column: "J"},
}

// MetricRows returns a copy of the metric → row table in sheet order.
func MetricRows() []MetricRow {
	rows := metricRows
	return rows[:]
}

// DepartmentColumns returns a copy of the department → column table in sheet order.
func DepartmentColumns() []DepartmentColumn {
	cols := departmentColumns
	return cols[:]
}

func IsMetric(name string) bool {
	for _, m := range metricRows {
		if m.Name == name {
			return true
		}
	}
	return false
}

func IsDepartment(name string) bool {
	for _, d := range departmentColumns {
		if d.Name == name {
			return true
		}
	}
	return false
}

// IsMETMetric reports whether the metric is forced to zero on the dashboard.
func IsMETMetric(name string) bool {
	return strings.HasPrefix(name, METPrefix)
}
