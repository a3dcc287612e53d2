package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Member represents a registered borrower.
type Member struct {
	MemberID     int64           `json:"memberID"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        string          `json:"email"`
	RegisteredOn time.Time       `json:"registeredOn"` // Set at creation, never updated
	FineBalance  decimal.Decimal `json:"fineBalance"`  // Only incremented by return settlement
}

// FullName returns "First Last".
func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}
