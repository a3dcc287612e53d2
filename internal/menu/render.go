package menu

import (
	"io"

	"github.com/SscSPs/lending_catalog/internal/utils"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

type styles struct {
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	prompt   lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	muted    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
}

// newStyles binds the styles to out so colors are only emitted when out
// supports them.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		renderer: r,
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		prompt:   r.NewStyle().Foreground(lipgloss.Color("14")),
		success:  r.NewStyle().Foreground(lipgloss.Color("10")),
		failure:  r.NewStyle().Foreground(lipgloss.Color("9")),
		muted:    r.NewStyle().Faint(true),
		header:   r.NewStyle().Bold(true).Padding(0, 1),
		label:    r.NewStyle().Bold(true).Width(22),
	}
}

// table renders rows under headers with a rounded border.
func (s styles) table(headers []string, rows [][]string) string {
	cell := s.renderer.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.muted).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			return cell
		}).
		String()
}

// field renders a "label value" line of a detail screen.
func (s styles) field(label, value string) string {
	return s.label.Render(label) + value
}

func money(d decimal.Decimal) string {
	return utils.FormatMoney(d)
}

// moneyOrDash shows zero amounts as "-".
func moneyOrDash(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	return money(d)
}
