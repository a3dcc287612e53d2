package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member mirrors a row of the members table.
type Member struct {
	MemberID     int64           `db:"member_id"`
	FirstName    string          `db:"first_name"`
	LastName     string          `db:"last_name"`
	Email        string          `db:"email"`
	RegisteredOn time.Time       `db:"registered_on"`
	FineBalance  decimal.Decimal `db:"fine_balance"`
}
