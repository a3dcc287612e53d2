package mapping

import (
	"database/sql"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/models"
)

// ToModelItem converts a domain Item to a model Item
func ToModelItem(d domain.Item) models.Item {
	m := models.Item{
		ItemID:          d.ItemID,
		Title:           d.Title,
		Publisher:       d.Publisher,
		AvailableCopies: d.AvailableCopies,
	}
	if d.PublicationYear != nil {
		m.PublicationYear = sql.NullInt32{Int32: int32(*d.PublicationYear), Valid: true}
	}
	return m
}

// ToDomainItem converts a model Item to a domain Item
func ToDomainItem(m models.Item) domain.Item {
	d := domain.Item{
		ItemID:          m.ItemID,
		Title:           m.Title,
		Publisher:       m.Publisher,
		AvailableCopies: m.AvailableCopies,
	}
	if m.PublicationYear.Valid {
		year := int(m.PublicationYear.Int32)
		d.PublicationYear = &year
	}
	return d
}

// ToDomainItemSlice converts a slice of model Items
func ToDomainItemSlice(ms []models.Item) []domain.Item {
	ds := make([]domain.Item, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainItem(m)
	}
	return ds
}
