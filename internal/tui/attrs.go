package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrsTable rebuilds the attribute table from the selected tract.
func (m *Model) refreshAttrsTable() {
	cols := []table.Column{
		{Title: "field", Width: 22},
		{Title: "value", Width: 24},
	}
	a := m.selected
	source := "curated"
	if a.Synthesized {
		source = "synthesized"
	}
	desert := "no"
	if a.Desert {
		desert = "yes"
	}
	pairs := [][2]string{
		{"tract_id", a.TractID},
		{"name", a.Name},
		{"food_risk_score", fmt.Sprintf("%.2f", a.Risk)},
		{"equity_score", fmt.Sprintf("%.2f", a.Equity)},
		{"transit_coverage", fmt.Sprintf("%.2f", a.Coverage)},
		{"food_insecurity_rate", fmt.Sprintf("%.2f", a.Insecurity)},
		{"poverty_rate", fmt.Sprintf("%.2f", a.Poverty)},
		{"snap_rate", fmt.Sprintf("%.2f", a.SnapRate)},
		{"vulnerability_index", fmt.Sprintf("%.2f", a.Vulnerability)},
		{"need_score", fmt.Sprintf("%.2f", a.Need)},
		{"supply_score", fmt.Sprintf("%.2f", a.Supply)},
		{"low_access", desert},
		{"source", source},
	}
	if a.Population > 0 {
		pairs = append(pairs, [2]string{"population", fmt.Sprintf("%d", a.Population)})
	}
	if a.Income > 0 {
		pairs = append(pairs, [2]string{"mhhinc", fmt.Sprintf("%.0f", a.Income)})
	}
	rows := make([]table.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, table.Row{p[0], p[1]})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
