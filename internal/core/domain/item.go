package domain

// Item is a lendable catalog entry. ItemID is the caller-chosen catalog number.
type Item struct {
	ItemID          string `json:"itemID"`
	Title           string `json:"title"`
	Publisher       string `json:"publisher"`
	PublicationYear *int   `json:"publicationYear,omitempty"`
	AvailableCopies int    `json:"availableCopies"`
}

// IsAvailable reports whether at least one copy can be lent.
func (i Item) IsAvailable() bool {
	return i.AvailableCopies > 0
}
