package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/dto"
)

func loanActions(m *Menu) []action {
	return []action{
		{label: "List all loans", run: m.listLoans},
		{label: "List open loans", run: m.listOpenLoans},
		{label: "List overdue loans", run: m.listOverdueLoans},
		{label: "Loans of a member", run: m.listMemberLoans},
		{label: "Lend an item", run: m.lendItem},
		{label: "Return an item", run: m.returnItem},
		{label: "Delete a loan", run: m.deleteLoan},
	}
}

func (m *Menu) loanTable(loans []domain.AnnotatedLoan) string {
	rows := make([][]string, 0, len(loans))
	for _, l := range loans {
		returned := "-"
		if l.ReturnDate != nil {
			returned = l.ReturnDate.Format(dto.DateLayout)
		}
		late := "-"
		if l.OverdueDays > 0 {
			late = strconv.Itoa(l.OverdueDays)
		}
		rows = append(rows, []string{
			strconv.FormatInt(l.LoanID, 10),
			l.MemberLastName + " " + l.MemberFirstName,
			l.ItemTitle,
			l.LoanDate.Format(dto.DateLayout),
			returned,
			late,
			moneyOrDash(l.AccruedFine),
		})
	}
	return m.styles.table([]string{"ID", "Member", "Item", "Loan date", "Returned", "Days late", "Fine"}, rows)
}

// showLoans prints loans or the empty message.
func (m *Menu) showLoans(loans []domain.AnnotatedLoan, err error, empty string) {
	if err != nil {
		m.fail(err)
		return
	}
	if len(loans) == 0 {
		m.warn(empty)
		return
	}
	m.println(m.loanTable(loans))
	m.wait()
}

func (m *Menu) listLoans(ctx context.Context) {
	loans, err := m.services.Loan.ListLoans(ctx)
	m.showLoans(loans, err, "No loans found")
}

func (m *Menu) listOpenLoans(ctx context.Context) {
	loans, err := m.services.Loan.ListOpenLoans(ctx)
	m.showLoans(loans, err, "No open loans")
}

func (m *Menu) listOverdueLoans(ctx context.Context) {
	loans, err := m.services.Loan.ListOverdueLoans(ctx)
	m.showLoans(loans, err, "No overdue loans")
}

func (m *Menu) listMemberLoans(ctx context.Context) {
	memberID, ok := m.askID("Member ID")
	if !ok {
		return
	}
	loans, err := m.services.Loan.ListMemberLoans(ctx, memberID)
	m.showLoans(loans, err, "This member has no loans")
}

func (m *Menu) lendItem(ctx context.Context) {
	memberID, ok := m.askID("Member ID")
	if !ok {
		return
	}
	itemID, ok := m.ask("Item ID")
	if !ok {
		return
	}

	loan, err := m.services.Loan.CreateLoan(ctx, dto.CreateLoanRequest{MemberID: memberID, ItemID: itemID})
	if err != nil {
		m.fail(err)
		return
	}
	due := loan.LoanDate.AddDate(0, 0, m.services.Loan.Policy().LoanPeriodDays)
	m.success(fmt.Sprintf("Loan %d created, due back on %s", loan.LoanID, due.Format(dto.DateLayout)))
}

func (m *Menu) returnItem(ctx context.Context) {
	loanID, ok := m.askID("Loan ID")
	if !ok {
		return
	}

	receipt, err := m.services.Loan.ReturnLoan(ctx, loanID)
	if err != nil {
		m.fail(err)
		return
	}
	if receipt.OverdueDays > 0 {
		m.warn(fmt.Sprintf("Returned %d day(s) late, fine of %s added to the member's balance",
			receipt.OverdueDays, money(receipt.Fine)))
	}
	m.success("Item returned")
}

func (m *Menu) deleteLoan(ctx context.Context) {
	loanID, ok := m.askID("Loan ID")
	if !ok {
		return
	}
	if !m.confirm(fmt.Sprintf("Delete loan %d?", loanID)) {
		m.warn("Cancelled")
		return
	}

	if err := m.services.Loan.DeleteLoan(ctx, loanID); err != nil {
		m.fail(err)
		return
	}
	m.success("Loan deleted")
}
