package services

import (
	"context"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/dto"
)

// ItemReaderSvc defines read operations for catalog items
type ItemReaderSvc interface {
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	SearchItems(ctx context.Context, term string) ([]domain.Item, error)
}

// ItemWriterSvc defines write operations for catalog items
type ItemWriterSvc interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// AvailabilityCheckerSvc exposes the catalog queries the loan engine relies on
type AvailabilityCheckerSvc interface {
	ItemExists(ctx context.Context, itemID string) (bool, error)
	// IsItemAvailable is false for absent items.
	IsItemAvailable(ctx context.Context, itemID string) (bool, error)
}

// ItemSvcFacade combines all item-related service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
	AvailabilityCheckerSvc
}
