package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/SscSPs/lending_catalog/internal/validation"
)

// DefaultInitialCopies is used when an item is created without a copy count.
const DefaultInitialCopies = 1

// itemService implements the ItemSvcFacade interface
type itemService struct {
	BaseService
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new catalog service
func NewItemService(repo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: repo}
}

var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	if err := validation.Struct(req); err != nil {
		s.LogFailure(ctx, err, "Invalid item creation request")
		return nil, err
	}

	copies := DefaultInitialCopies
	if req.Copies != nil {
		copies = *req.Copies
	}

	item := domain.Item{
		ItemID:          strings.TrimSpace(req.ItemID),
		Title:           strings.TrimSpace(req.Title),
		Publisher:       strings.TrimSpace(req.Publisher),
		PublicationYear: req.PublicationYear,
		AvailableCopies: copies,
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogFailure(ctx, err, "Failed to save item", slog.String("item_id", item.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Item added to catalog", slog.String("item_id", item.ItemID), slog.Int("copies", copies))
	return &item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get item", slog.String("item_id", itemID))
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemRepo.ListItems(ctx)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list items")
		return nil, err
	}
	return items, nil
}

func (s *itemService) SearchItems(ctx context.Context, term string) ([]domain.Item, error) {
	items, err := s.itemRepo.SearchItems(ctx, strings.TrimSpace(term))
	if err != nil {
		s.LogFailure(ctx, err, "Failed to search items", slog.String("term", term))
		return nil, err
	}
	return items, nil
}

// UpdateItem never changes the available copies.
func (s *itemService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest) (*domain.Item, error) {
	if err := validation.Struct(req); err != nil {
		s.LogFailure(ctx, err, "Invalid item update request", slog.String("item_id", itemID))
		return nil, err
	}

	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find item for update", slog.String("item_id", itemID))
		return nil, err
	}

	item.Title = strings.TrimSpace(req.Title)
	item.Publisher = strings.TrimSpace(req.Publisher)
	item.PublicationYear = req.PublicationYear

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogFailure(ctx, err, "Failed to update item", slog.String("item_id", itemID))
		return nil, err
	}

	s.LogInfo(ctx, "Item updated", slog.String("item_id", itemID))
	return item, nil
}

// DeleteItem refuses to delete an item referenced by any loan.
func (s *itemService) DeleteItem(ctx context.Context, itemID string) error {
	exists, err := s.itemRepo.ItemExists(ctx, itemID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to check item", slog.String("item_id", itemID))
		return err
	}
	if !exists {
		return apperrors.Wrap(apperrors.ErrItemNotFound, fmt.Sprintf("item %s not found", itemID))
	}

	loans, err := s.itemRepo.CountLoansByItem(ctx, itemID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to count item loans", slog.String("item_id", itemID))
		return err
	}
	if loans > 0 {
		err := apperrors.NewReferentialConflict("item", loans)
		s.LogFailure(ctx, err, "Item still has loans", slog.String("item_id", itemID))
		return err
	}

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete item", slog.String("item_id", itemID))
		return err
	}

	s.LogInfo(ctx, "Item deleted", slog.String("item_id", itemID))
	return nil
}

func (s *itemService) ItemExists(ctx context.Context, itemID string) (bool, error) {
	return s.itemRepo.ItemExists(ctx, itemID)
}

// IsItemAvailable is true iff the item exists with at least one copy on the shelf.
func (s *itemService) IsItemAvailable(ctx context.Context, itemID string) (bool, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrItemNotFound) {
			return false, nil
		}
		return false, err
	}
	return item.IsAvailable(), nil
}
