package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/lending_catalog/internal/core/services"
	"github.com/SscSPs/lending_catalog/internal/utils"
)

func statsActions(m *Menu) []action {
	return []action{
		{label: "Overview", run: m.showOverview},
		{label: fmt.Sprintf("Top %d members", services.DefaultTopLimit), run: m.showTopMembers},
		{label: fmt.Sprintf("Top %d items", services.DefaultTopLimit), run: m.showTopItems},
		{label: "Overdue loans with fines", run: m.showOverdueReport},
	}
}

func (m *Menu) showOverview(ctx context.Context) {
	o, err := m.services.Reporting.Overview(ctx)
	if err != nil {
		m.fail(err)
		return
	}

	m.println("")
	m.println(m.styles.field("Members", strconv.FormatInt(o.Totals.Members, 10)))
	m.println(m.styles.field("Items", strconv.FormatInt(o.Totals.Items, 10)))
	m.println(m.styles.field("Loans", strconv.FormatInt(o.Totals.Loans, 10)))
	m.println(m.styles.field("  open", strconv.FormatInt(o.Loans.Open, 10)))
	m.println(m.styles.field("  returned", strconv.FormatInt(o.Loans.Closed, 10)))
	m.println(m.styles.field("Available copies", strconv.FormatInt(o.AvailableCopies, 10)))
	m.println(m.styles.field("Utilization", utils.FormatWithPrecision(o.UtilizationRate, 1)+" %"))
	m.wait()
}

func (m *Menu) showTopMembers(ctx context.Context) {
	top, err := m.services.Reporting.TopMembers(ctx, services.DefaultTopLimit)
	if err != nil {
		m.fail(err)
		return
	}
	if len(top) == 0 {
		m.warn("No loans yet")
		return
	}

	rows := make([][]string, 0, len(top))
	for i, t := range top {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.LastName + " " + t.FirstName,
			strconv.FormatInt(t.LoanCount, 10),
		})
	}
	m.println(m.styles.table([]string{"#", "Member", "Loans"}, rows))
	m.wait()
}

func (m *Menu) showTopItems(ctx context.Context) {
	top, err := m.services.Reporting.TopItems(ctx, services.DefaultTopLimit)
	if err != nil {
		m.fail(err)
		return
	}
	if len(top) == 0 {
		m.warn("No loans yet")
		return
	}

	rows := make([][]string, 0, len(top))
	for i, t := range top {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			t.Title,
			t.Publisher,
			strconv.FormatInt(t.LoanCount, 10),
		})
	}
	m.println(m.styles.table([]string{"#", "Title", "Publisher", "Loans"}, rows))
	m.wait()
}

func (m *Menu) showOverdueReport(ctx context.Context) {
	loans, err := m.services.Reporting.OverdueReport(ctx)
	m.showLoans(loans, err, "No overdue loans")
}
