package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Loan mirrors a row of the loans table.
type Loan struct {
	LoanID     int64           `db:"loan_id"`
	MemberID   int64           `db:"member_id"`
	ItemID     string          `db:"item_id"`
	LoanDate   time.Time       `db:"loan_date"`
	ReturnDate sql.NullTime    `db:"return_date"`
	Fine       decimal.Decimal `db:"fine"`
}

// LoanDetail is a loans row joined with members and items.
type LoanDetail struct {
	Loan
	MemberFirstName string `db:"first_name"`
	MemberLastName  string `db:"last_name"`
	ItemTitle       string `db:"title"`
	ItemPublisher   string `db:"publisher"`
}
