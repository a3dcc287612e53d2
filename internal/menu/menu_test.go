package menu

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MenuTestSuite struct {
	suite.Suite
	memberSvc    *MockMemberService
	itemSvc      *MockItemService
	loanSvc      *MockLoanService
	reportingSvc *MockReportingService
	out          *bytes.Buffer
}

func (s *MenuTestSuite) SetupTest() {
	s.memberSvc = new(MockMemberService)
	s.itemSvc = new(MockItemService)
	s.loanSvc = new(MockLoanService)
	s.reportingSvc = new(MockReportingService)
	s.out = new(bytes.Buffer)
}

func (s *MenuTestSuite) TearDownTest() {
	s.memberSvc.AssertExpectations(s.T())
	s.itemSvc.AssertExpectations(s.T())
	s.loanSvc.AssertExpectations(s.T())
	s.reportingSvc.AssertExpectations(s.T())
}

func TestMenuTestSuite(t *testing.T) {
	suite.Run(t, new(MenuTestSuite))
}

// run feeds one answer per line and returns everything printed.
func (s *MenuTestSuite) run(answers ...string) string {
	services := &portssvc.ServiceContainer{
		Member:    s.memberSvc,
		Item:      s.itemSvc,
		Loan:      s.loanSvc,
		Reporting: s.reportingSvc,
	}
	m := New(services, strings.NewReader(strings.Join(answers, "\n")+"\n"), s.out)
	s.Require().NoError(m.Run(context.Background()))
	return s.out.String()
}

var day = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

func (s *MenuTestSuite) TestQuit() {
	out := s.run("5")

	s.Contains(out, "Lending catalog")
	s.Contains(out, "Goodbye!")
}

func (s *MenuTestSuite) TestEndOfInputStops() {
	out := s.run("1")

	s.Contains(out, "Members")
	s.NotContains(out, "Goodbye!")
}

func (s *MenuTestSuite) TestInvalidChoiceReprompts() {
	out := s.run("9", "abc", "5")

	s.Equal(2, strings.Count(out, "Choose a number between 1 and 5"))
	s.Contains(out, "Goodbye!")
}

func (s *MenuTestSuite) TestListMembers() {
	s.memberSvc.On("ListMembers", mock.Anything).Return([]domain.Member{
		{MemberID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org", FineBalance: decimal.NewFromInt(3)},
	}, nil)

	out := s.run("1", "1", "7", "5")

	s.Contains(out, "Lovelace")
	s.Contains(out, "ada@example.org")
	s.Contains(out, "3.00")
}

func (s *MenuTestSuite) TestAddMember() {
	req := dto.CreateMemberRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"}
	s.memberSvc.On("CreateMember", mock.Anything, req).Return(&domain.Member{MemberID: 12}, nil)

	out := s.run("1", "4", "Ada", "Lovelace", "ada@example.org", "7", "5")

	s.Contains(out, "Member 12 added")
}

func (s *MenuTestSuite) TestAddMember_ValidationMessage() {
	req := dto.CreateMemberRequest{FirstName: "Ada", LastName: "Lovelace", Email: "nope"}
	s.memberSvc.On("CreateMember", mock.Anything, req).Return(nil, apperrors.NewValidationError("email", "must be a valid email address"))

	out := s.run("1", "4", "Ada", "Lovelace", "nope", "7", "5")

	s.Contains(out, "invalid email: must be a valid email address")
}

func (s *MenuTestSuite) TestEditMember_KeepsCurrentValues() {
	s.memberSvc.On("GetMemberByID", mock.Anything, int64(3)).Return(&domain.Member{
		MemberID: 3, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org",
	}, nil)
	s.memberSvc.On("UpdateMember", mock.Anything, int64(3), dto.UpdateMemberRequest{
		FirstName: "Ada", LastName: "Byron", Email: "ada@example.org",
	}).Return(&domain.Member{MemberID: 3}, nil)

	out := s.run("1", "5", "3", "", "Byron", "", "7", "5")

	s.Contains(out, "Member updated")
}

func (s *MenuTestSuite) TestDeleteMember_RequiresConfirmation() {
	s.memberSvc.On("GetMemberByID", mock.Anything, int64(3)).Return(&domain.Member{MemberID: 3, FirstName: "Ada", LastName: "Lovelace"}, nil)

	out := s.run("1", "6", "3", "n", "7", "5")

	s.Contains(out, "Cancelled")
	s.memberSvc.AssertNotCalled(s.T(), "DeleteMember", mock.Anything, mock.Anything)
}

func (s *MenuTestSuite) TestDeleteMember_AcceptsOui() {
	s.memberSvc.On("GetMemberByID", mock.Anything, int64(3)).Return(&domain.Member{MemberID: 3, FirstName: "Ada", LastName: "Lovelace"}, nil)
	s.memberSvc.On("DeleteMember", mock.Anything, int64(3)).Return(apperrors.NewReferentialConflict("member", 2))

	out := s.run("1", "6", "3", "oui", "7", "5")

	s.Contains(out, "2 loan(s) reference it")
}

func (s *MenuTestSuite) TestAddItem_OptionalFields() {
	req := dto.CreateItemRequest{ItemID: "B-1", Title: "Dune", Publisher: "Chilton"}
	s.itemSvc.On("CreateItem", mock.Anything, req).Return(&domain.Item{ItemID: "B-1", AvailableCopies: 1}, nil)

	out := s.run("2", "4", "B-1", "Dune", "Chilton", "", "", "7", "5")

	s.Contains(out, "Item B-1 added with 1 copies")
}

func (s *MenuTestSuite) TestAddItem_YearNotANumber() {
	out := s.run("2", "4", "B-1", "Dune", "Chilton", "soon", "7", "5")

	s.Contains(out, "invalid publicationYear: must be a number")
	s.itemSvc.AssertNotCalled(s.T(), "CreateItem", mock.Anything, mock.Anything)
}

func (s *MenuTestSuite) TestLendItem() {
	s.loanSvc.On("CreateLoan", mock.Anything, dto.CreateLoanRequest{MemberID: 1, ItemID: "B-1"}).
		Return(&domain.Loan{LoanID: 4, LoanDate: day}, nil)

	out := s.run("3", "5", "1", "B-1", "8", "5")

	s.Contains(out, "Loan 4 created, due back on 2026-10-30")
}

func (s *MenuTestSuite) TestLendItem_Unavailable() {
	s.loanSvc.On("CreateLoan", mock.Anything, dto.CreateLoanRequest{MemberID: 1, ItemID: "B-1"}).
		Return(nil, apperrors.ErrItemUnavailable)

	out := s.run("3", "5", "1", "B-1", "8", "5")

	s.Contains(out, "item not available")
}

func (s *MenuTestSuite) TestReturnItem_Late() {
	s.loanSvc.On("ReturnLoan", mock.Anything, int64(4)).Return(&domain.ReturnReceipt{
		LoanID: 4, ReturnDate: day, OverdueDays: 6, Fine: decimal.NewFromInt(3),
	}, nil)

	out := s.run("3", "6", "4", "8", "5")

	s.Contains(out, "Returned 6 day(s) late, fine of 3.00")
	s.Contains(out, "Item returned")
}

func (s *MenuTestSuite) TestOverdueLoans() {
	s.loanSvc.On("ListOverdueLoans", mock.Anything).Return([]domain.AnnotatedLoan{{
		LoanDetail: domain.LoanDetail{
			Loan:            domain.Loan{LoanID: 4, LoanDate: day.AddDate(0, 0, -20)},
			MemberFirstName: "Ada",
			MemberLastName:  "Lovelace",
			ItemTitle:       "Dune",
		},
		OverdueDays: 6,
		AccruedFine: decimal.NewFromInt(3),
	}}, nil)

	out := s.run("3", "3", "8", "5")

	s.Contains(out, "Dune")
	s.Contains(out, "2026-09-26")
	s.Contains(out, "3.00")
}

func (s *MenuTestSuite) TestOverview() {
	s.reportingSvc.On("Overview", mock.Anything).Return(&domain.StatsOverview{
		Totals:          domain.Totals{Members: 2, Items: 3, Loans: 4},
		Loans:           domain.LoanCounts{Open: 1, Closed: 3},
		AvailableCopies: 3,
		UtilizationRate: domain.UtilizationRate(1, 3),
	}, nil)

	out := s.run("4", "1", "5", "5")

	s.Contains(out, "33.3 %")
}

func (s *MenuTestSuite) TestTopItems_UsesDefaultLimit() {
	s.reportingSvc.On("TopItems", mock.Anything, 5).Return([]domain.ItemLoanCount{
		{ItemID: "B-1", Title: "Dune", Publisher: "Chilton", LoanCount: 7},
	}, nil)

	out := s.run("4", "3", "5", "5")

	s.Contains(out, "Dune")
	s.Contains(out, "7")
}

func (s *MenuTestSuite) TestStorageFailureIsHidden() {
	s.loanSvc.On("ListLoans", mock.Anything).Return([]domain.AnnotatedLoan(nil), apperrors.NewStorageError("query failed", errors.New("secret detail")))

	out := s.run("3", "1", "8", "5")

	s.Contains(out, "Unexpected error, see the logs")
	s.NotContains(out, "secret detail")
}
