package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// memoryStore is an in-memory record store with the same conditional-update
// semantics as the PostgreSQL repositories.
type memoryStore struct {
	mu         sync.Mutex
	members    map[int64]domain.Member
	items      map[string]domain.Item
	loans      map[int64]domain.Loan
	nextMember int64
	nextLoan   int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		members: map[int64]domain.Member{},
		items:   map[string]domain.Item{},
		loans:   map[int64]domain.Loan{},
	}
}

var (
	_ portsrepo.MemberRepositoryFacade = (*memoryStore)(nil)
	_ portsrepo.ItemRepositoryFacade   = (*memoryStore)(nil)
	_ portsrepo.LoanRepositoryFacade   = (*memoryStore)(nil)
	_ portsrepo.ReportingRepository    = (*memoryStore)(nil)
)

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// --- members ---

func (s *memoryStore) FindMemberByID(_ context.Context, id int64) (*domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.members[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrMemberNotFound, fmt.Sprintf("member %d not found", id))
	}
	return &m, nil
}

func (s *memoryStore) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.SearchMembers(ctx, "")
}

func (s *memoryStore) SearchMembers(_ context.Context, term string) ([]domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Member{}
	for _, m := range s.members {
		if containsFold(m.FirstName, term) || containsFold(m.LastName, term) || containsFold(m.Email, term) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].MemberID < out[j].MemberID
	})
	return out, nil
}

func (s *memoryStore) MemberExists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.members[id]
	return ok, nil
}

func (s *memoryStore) SaveMember(_ context.Context, m domain.Member) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextMember++
	m.MemberID = s.nextMember
	s.members[m.MemberID] = m
	return m.MemberID, nil
}

func (s *memoryStore) UpdateMember(_ context.Context, m domain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.members[m.MemberID]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	existing.FirstName, existing.LastName, existing.Email = m.FirstName, m.LastName, m.Email
	s.members[m.MemberID] = existing
	return nil
}

func (s *memoryStore) DeleteMember(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[id]; !ok {
		return apperrors.ErrMemberNotFound
	}
	if n := s.countLoans(func(l domain.Loan) bool { return l.MemberID == id }); n > 0 {
		return apperrors.NewReferentialConflict("member", n)
	}
	delete(s.members, id)
	return nil
}

func (s *memoryStore) CountActiveLoans(_ context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLoans(func(l domain.Loan) bool { return l.MemberID == id && l.IsOpen() }), nil
}

func (s *memoryStore) CountLoansByMember(_ context.Context, id int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLoans(func(l domain.Loan) bool { return l.MemberID == id }), nil
}

func (s *memoryStore) countLoans(pred func(domain.Loan) bool) int {
	n := 0
	for _, l := range s.loans {
		if pred(l) {
			n++
		}
	}
	return n
}

// --- items ---

func (s *memoryStore) FindItemByID(_ context.Context, id string) (*domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.items[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrItemNotFound, fmt.Sprintf("item %s not found", id))
	}
	return &i, nil
}

func (s *memoryStore) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.SearchItems(ctx, "")
}

func (s *memoryStore) SearchItems(_ context.Context, term string) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Item{}
	for _, i := range s.items {
		if containsFold(i.Title, term) || containsFold(i.Publisher, term) {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Title != out[b].Title {
			return out[a].Title < out[b].Title
		}
		return out[a].ItemID < out[b].ItemID
	})
	return out, nil
}

func (s *memoryStore) ItemExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[id]
	return ok, nil
}

func (s *memoryStore) SaveItem(_ context.Context, i domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[i.ItemID]; ok {
		return apperrors.Wrap(apperrors.ErrDuplicate, "item already exists")
	}
	s.items[i.ItemID] = i
	return nil
}

func (s *memoryStore) UpdateItem(_ context.Context, i domain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.items[i.ItemID]
	if !ok {
		return apperrors.ErrItemNotFound
	}
	existing.Title, existing.Publisher, existing.PublicationYear = i.Title, i.Publisher, i.PublicationYear
	s.items[i.ItemID] = existing
	return nil
}

func (s *memoryStore) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return apperrors.ErrItemNotFound
	}
	if n := s.countLoans(func(l domain.Loan) bool { return l.ItemID == id }); n > 0 {
		return apperrors.NewReferentialConflict("item", n)
	}
	delete(s.items, id)
	return nil
}

func (s *memoryStore) CountLoansByItem(_ context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLoans(func(l domain.Loan) bool { return l.ItemID == id }), nil
}

// --- loans ---

func (s *memoryStore) detail(l domain.Loan) domain.LoanDetail {
	m := s.members[l.MemberID]
	i := s.items[l.ItemID]
	return domain.LoanDetail{
		Loan:            l,
		MemberFirstName: m.FirstName,
		MemberLastName:  m.LastName,
		ItemTitle:       i.Title,
		ItemPublisher:   i.Publisher,
	}
}

func (s *memoryStore) FindLoanByID(_ context.Context, id int64) (*domain.LoanDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.loans[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrLoanNotFound, fmt.Sprintf("loan %d not found", id))
	}
	d := s.detail(l)
	return &d, nil
}

func (s *memoryStore) selectLoans(pred func(domain.Loan) bool, newestFirst bool) []domain.LoanDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.LoanDetail{}
	for _, l := range s.loans {
		if pred(l) {
			out = append(out, s.detail(l))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.LoanDate.Equal(b.LoanDate) {
			return a.LoanDate.Before(b.LoanDate) != newestFirst
		}
		return (a.LoanID < b.LoanID) != newestFirst
	})
	return out
}

func (s *memoryStore) ListLoans(context.Context) ([]domain.LoanDetail, error) {
	return s.selectLoans(func(domain.Loan) bool { return true }, true), nil
}

func (s *memoryStore) ListOpenLoans(context.Context) ([]domain.LoanDetail, error) {
	return s.selectLoans(domain.Loan.IsOpen, false), nil
}

func (s *memoryStore) ListOverdueLoans(_ context.Context, cutoff time.Time) ([]domain.LoanDetail, error) {
	return s.selectLoans(func(l domain.Loan) bool { return l.IsOpen() && l.LoanDate.Before(cutoff) }, false), nil
}

func (s *memoryStore) ListLoansByMember(_ context.Context, memberID int64) ([]domain.LoanDetail, error) {
	return s.selectLoans(func(l domain.Loan) bool { return l.MemberID == memberID }, true), nil
}

func (s *memoryStore) OpenLoan(_ context.Context, loan domain.Loan, activeLimit int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[loan.MemberID]; !ok {
		return 0, apperrors.ErrMemberNotFound
	}
	item, ok := s.items[loan.ItemID]
	if !ok {
		return 0, apperrors.ErrItemNotFound
	}
	if item.AvailableCopies <= 0 {
		return 0, apperrors.ErrItemUnavailable
	}
	if s.countLoans(func(l domain.Loan) bool { return l.MemberID == loan.MemberID && l.IsOpen() }) >= activeLimit {
		return 0, apperrors.ErrLoanLimitExceeded
	}
	item.AvailableCopies--
	s.items[loan.ItemID] = item
	s.nextLoan++
	loan.LoanID = s.nextLoan
	s.loans[loan.LoanID] = loan
	return loan.LoanID, nil
}

func (s *memoryStore) SettleReturn(_ context.Context, loanID int64, returnDate time.Time, fine decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.loans[loanID]
	if !ok {
		return apperrors.ErrLoanNotFound
	}
	if !l.IsOpen() {
		return apperrors.ErrAlreadyReturned
	}
	rd := domain.DateOf(returnDate)
	l.ReturnDate = &rd
	l.Fine = fine
	s.loans[loanID] = l

	item := s.items[l.ItemID]
	item.AvailableCopies++
	s.items[l.ItemID] = item

	if fine.IsPositive() {
		m := s.members[l.MemberID]
		m.FineBalance = m.FineBalance.Add(fine)
		s.members[l.MemberID] = m
	}
	return nil
}

func (s *memoryStore) DeleteLoan(_ context.Context, loanID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.loans[loanID]
	if !ok {
		return apperrors.ErrLoanNotFound
	}
	delete(s.loans, loanID)
	if l.IsOpen() {
		item := s.items[l.ItemID]
		item.AvailableCopies++
		s.items[l.ItemID] = item
	}
	return nil
}

// --- reporting ---

func (s *memoryStore) GetTotals(context.Context) (domain.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Totals{Members: int64(len(s.members)), Items: int64(len(s.items)), Loans: int64(len(s.loans))}, nil
}

func (s *memoryStore) GetLoanCounts(context.Context) (domain.LoanCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	open := s.countLoans(domain.Loan.IsOpen)
	return domain.LoanCounts{Open: int64(open), Closed: int64(len(s.loans) - open)}, nil
}

func (s *memoryStore) SumAvailableCopies(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, i := range s.items {
		total += int64(i.AvailableCopies)
	}
	return total, nil
}

func (s *memoryStore) TopMembers(_ context.Context, limit int) ([]domain.MemberLoanCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[int64]int64{}
	for _, l := range s.loans {
		counts[l.MemberID]++
	}
	out := []domain.MemberLoanCount{}
	for id, n := range counts {
		m := s.members[id]
		out = append(out, domain.MemberLoanCount{MemberID: id, FirstName: m.FirstName, LastName: m.LastName, LoanCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LoanCount != out[j].LoanCount {
			return out[i].LoanCount > out[j].LoanCount
		}
		return out[i].MemberID < out[j].MemberID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) TopItems(_ context.Context, limit int) ([]domain.ItemLoanCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int64{}
	for _, l := range s.loans {
		counts[l.ItemID]++
	}
	out := []domain.ItemLoanCount{}
	for id, n := range counts {
		i := s.items[id]
		out = append(out, domain.ItemLoanCount{ItemID: id, Title: i.Title, Publisher: i.Publisher, LoanCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LoanCount != out[j].LoanCount {
			return out[i].LoanCount > out[j].LoanCount
		}
		return out[i].ItemID < out[j].ItemID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
