package models

import "database/sql"

// Item mirrors a row of the items table.
type Item struct {
	ItemID          string        `db:"item_id"`
	Title           string        `db:"title"`
	Publisher       string        `db:"publisher"`
	PublicationYear sql.NullInt32 `db:"publication_year"`
	AvailableCopies int           `db:"available_copies"`
}
