package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/dto"
)

func memberActions(m *Menu) []action {
	return []action{
		{label: "List all members", run: m.listMembers},
		{label: "Search members", run: m.searchMembers},
		{label: "Member details", run: m.showMember},
		{label: "Add a member", run: m.addMember},
		{label: "Edit a member", run: m.editMember},
		{label: "Delete a member", run: m.deleteMember},
	}
}

func (m *Menu) memberTable(members []domain.Member) string {
	rows := make([][]string, 0, len(members))
	for _, mb := range members {
		rows = append(rows, []string{
			strconv.FormatInt(mb.MemberID, 10),
			mb.LastName,
			mb.FirstName,
			mb.Email,
			moneyOrDash(mb.FineBalance),
		})
	}
	return m.styles.table([]string{"ID", "Last name", "First name", "Email", "Fines"}, rows)
}

func (m *Menu) listMembers(ctx context.Context) {
	members, err := m.services.Member.ListMembers(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(members) == 0 {
		m.warn("No members found")
		return
	}
	m.println(m.memberTable(members))
	m.wait()
}

func (m *Menu) searchMembers(ctx context.Context) {
	term, ok := m.ask("Search (name or email)")
	if !ok {
		return
	}
	if term == "" {
		m.warn("Empty search term")
		return
	}

	members, err := m.services.Member.SearchMembers(ctx, term)
	if err != nil {
		m.fail(err)
		return
	}
	if len(members) == 0 {
		m.warn(fmt.Sprintf("No member matches '%s'", term))
		return
	}
	m.println(m.memberTable(members))
	m.wait()
}

func (m *Menu) showMember(ctx context.Context) {
	memberID, ok := m.askID("Member ID")
	if !ok {
		return
	}

	member, err := m.services.Member.GetMemberByID(ctx, memberID)
	if err != nil {
		m.fail(err)
		return
	}
	active, err := m.services.Member.CountActiveLoans(ctx, memberID)
	if err != nil {
		m.fail(err)
		return
	}

	m.println("")
	m.println(m.styles.field("ID", strconv.FormatInt(member.MemberID, 10)))
	m.println(m.styles.field("Name", member.FullName()))
	m.println(m.styles.field("Email", member.Email))
	m.println(m.styles.field("Registered on", member.RegisteredOn.Format(dto.DateLayout)))
	m.println(m.styles.field("Fine balance", money(member.FineBalance)))
	m.println(m.styles.field("Active loans", fmt.Sprintf("%d / %d", active, m.services.Loan.Policy().MaxActiveLoans)))
	m.wait()
}

func (m *Menu) addMember(ctx context.Context) {
	var req dto.CreateMemberRequest
	var ok bool
	if req.FirstName, ok = m.ask("First name"); !ok {
		return
	}
	if req.LastName, ok = m.ask("Last name"); !ok {
		return
	}
	if req.Email, ok = m.ask("Email"); !ok {
		return
	}

	member, err := m.services.Member.CreateMember(ctx, req)
	if err != nil {
		m.fail(err)
		return
	}
	m.success(fmt.Sprintf("Member %d added", member.MemberID))
}

func (m *Menu) editMember(ctx context.Context) {
	memberID, ok := m.askID("Member ID")
	if !ok {
		return
	}
	current, err := m.services.Member.GetMemberByID(ctx, memberID)
	if err != nil {
		m.fail(err)
		return
	}

	m.println(m.styles.muted.Render("Leave empty to keep the current value"))
	req := dto.UpdateMemberRequest{}
	if req.FirstName, ok = m.askDefault("First name", current.FirstName); !ok {
		return
	}
	if req.LastName, ok = m.askDefault("Last name", current.LastName); !ok {
		return
	}
	if req.Email, ok = m.askDefault("Email", current.Email); !ok {
		return
	}

	if _, err := m.services.Member.UpdateMember(ctx, memberID, req); err != nil {
		m.fail(err)
		return
	}
	m.success("Member updated")
}

func (m *Menu) deleteMember(ctx context.Context) {
	memberID, ok := m.askID("Member ID")
	if !ok {
		return
	}
	member, err := m.services.Member.GetMemberByID(ctx, memberID)
	if err != nil {
		m.fail(err)
		return
	}
	if !m.confirm(fmt.Sprintf("Delete %s?", member.FullName())) {
		m.warn("Cancelled")
		return
	}

	if err := m.services.Member.DeleteMember(ctx, memberID); err != nil {
		m.fail(err)
		return
	}
	m.success("Member deleted")
}
