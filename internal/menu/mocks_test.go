package menu

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockMemberService struct {
	mock.Mock
}

var _ portssvc.MemberSvcFacade = (*MockMemberService)(nil)

func (m *MockMemberService) GetMemberByID(ctx context.Context, memberID int64) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberService) SearchMembers(ctx context.Context, term string) ([]domain.Member, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) UpdateMember(ctx context.Context, memberID int64, req dto.UpdateMemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, memberID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) DeleteMember(ctx context.Context, memberID int64) error {
	return m.Called(ctx, memberID).Error(0)
}

func (m *MockMemberService) MemberExists(ctx context.Context, memberID int64) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberService) CountActiveLoans(ctx context.Context, memberID int64) (int, error) {
	args := m.Called(ctx, memberID)
	return args.Int(0), args.Error(1)
}

type MockItemService struct {
	mock.Mock
}

var _ portssvc.ItemSvcFacade = (*MockItemService)(nil)

func (m *MockItemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemService) SearchItems(ctx context.Context, term string) ([]domain.Item, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.Item, error) {
	args := m.Called(ctx, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *MockItemService) ItemExists(ctx context.Context, itemID string) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemService) IsItemAvailable(ctx context.Context, itemID string) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

type MockLoanService struct {
	mock.Mock
}

var _ portssvc.LoanSvcFacade = (*MockLoanService)(nil)

func (m *MockLoanService) GetLoanByID(ctx context.Context, loanID int64) (*domain.AnnotatedLoan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnotatedLoan), args.Error(1)
}

func (m *MockLoanService) ListLoans(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AnnotatedLoan), args.Error(1)
}

func (m *MockLoanService) ListOpenLoans(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AnnotatedLoan), args.Error(1)
}

func (m *MockLoanService) ListOverdueLoans(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AnnotatedLoan), args.Error(1)
}

func (m *MockLoanService) ListMemberLoans(ctx context.Context, memberID int64) ([]domain.AnnotatedLoan, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnnotatedLoan), args.Error(1)
}

func (m *MockLoanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanService) ReturnLoan(ctx context.Context, loanID int64) (*domain.ReturnReceipt, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReturnReceipt), args.Error(1)
}

func (m *MockLoanService) DeleteLoan(ctx context.Context, loanID int64) error {
	return m.Called(ctx, loanID).Error(0)
}

func (m *MockLoanService) Policy() domain.LoanPolicy {
	return domain.DefaultLoanPolicy()
}

func (m *MockLoanService) OverdueDays(loan domain.Loan) int {
	return m.Called(loan).Int(0)
}

func (m *MockLoanService) Fine(loan domain.Loan) decimal.Decimal {
	return m.Called(loan).Get(0).(decimal.Decimal)
}

type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

func (m *MockReportingService) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsOverview), args.Error(1)
}

func (m *MockReportingService) TopMembers(ctx context.Context, limit int) ([]domain.MemberLoanCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MemberLoanCount), args.Error(1)
}

func (m *MockReportingService) TopItems(ctx context.Context, limit int) ([]domain.ItemLoanCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ItemLoanCount), args.Error(1)
}

func (m *MockReportingService) OverdueReport(ctx context.Context) ([]domain.AnnotatedLoan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AnnotatedLoan), args.Error(1)
}
