package repositories

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
)

// ItemReader defines read operations for catalog items
type ItemReader interface {
	// FindItemByID retrieves an item; apperrors.ErrItemNotFound if absent.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItems returns every item ordered by title, id.
	ListItems(ctx context.Context) ([]domain.Item, error)

	// SearchItems matches term case-insensitively against title and publisher.
	SearchItems(ctx context.Context, term string) ([]domain.Item, error)

	// ItemExists reports whether an item row exists.
	ItemExists(ctx context.Context, itemID string) (bool, error)
}

// ItemWriter defines write operations for catalog items
type ItemWriter interface {
	// SaveItem inserts a new item. A duplicate id yields apperrors.ErrDuplicate.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem changes title, publisher and year. Available copies are untouched.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes an item only if no loan references it.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemLoanCounter counts loans referencing an item
type ItemLoanCounter interface {
	CountLoansByItem(ctx context.Context, itemID string) (int, error)
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
	ItemLoanCounter
}
