// Package console renders a study for a terminal.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kilianp07/genrel/core/model"
)

var (
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")

	tierColors = map[model.TierLevel]lipgloss.Color{
		model.TierNA: lipgloss.Color("#ef4444"),
		model.Tier1:  lipgloss.Color("#f97316"),
		model.Tier2:  lipgloss.Color("#eab308"),
		model.Tier3:  lipgloss.Color("#3b82f6"),
		model.Tier4:  lipgloss.Color("#22c55e"),
	}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var headers = []string{"Case", "Unit kW", "k", "n", "Spare", "System kW", "Availability %", "Tier"}

// Render writes the run summary and result table to w.
func Render(w io.Writer, run model.Run) error {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Generation availability study"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 36)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    Peak demand:        %s kW\n", formatFloat(run.Inputs.DemandKW))
	fmt.Fprintf(&b, "    Unit reliability:   %s %%\n", formatFloat(run.Inputs.UnitReliabilityPct))
	fmt.Fprintf(&b, "    Scheduled outage:   %s h/yr per unit\n", formatFloat(run.Inputs.ScheduledOutageHrs))
	if run.ID != "" {
		b.WriteString(dimStyle.Render("    Run " + run.ID))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Table(run.Cases))
	b.WriteString("\n")
	b.WriteString(tierCounts(run.Cases))
	_, err := io.WriteString(w, b.String())
	return err
}

// Table renders the cases as a bordered table, tier cells coloured.
func Table(cases model.Table) string {
	rows := make([][]string, len(cases))
	for i, c := range cases {
		rows[i] = []string{
			c.SizingCase,
			formatFloat(c.UnitCapacityKW),
			strconv.Itoa(c.UnitsRequired),
			strconv.Itoa(c.UnitsInstalled),
			strconv.Itoa(c.RedundantUnits),
			formatFloat(c.SystemCapacityKW),
			strconv.FormatFloat(c.SystemAvailability, 'f', 6, 64),
			c.TierLevel.String(),
		}
	}
	tierCol := len(headers) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == tierCol && row >= 0 && row < len(cases) {
				return cellStyle.Foreground(tierColors[cases[row].TierLevel])
			}
			return cellStyle
		})
	return t.String()
}

func tierCounts(cases model.Table) string {
	parts := make([]string, 0, len(model.TierLevels))
	for _, lvl := range model.TierLevels {
		n := len(cases.ByTier(lvl))
		parts = append(parts, lipgloss.NewStyle().Foreground(tierColors[lvl]).Render(fmt.Sprintf("%s: %d", lvl, n)))
	}
	return "  " + strings.Join(parts, dimStyle.Render("  │  ")) + "\n"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
