package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/lending_catalog/internal/apperrors"
	"github.com/SscSPs/lending_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/lending_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/lending_catalog/internal/models"
	"github.com/SscSPs/lending_catalog/internal/utils/mapping"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var itemColumns = []any{"item_id", "title", "publisher", "publication_year", "available_copies"}

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for catalog items.
func newPgxItemRepository(pool *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

func scanItem(row scanner) (models.Item, error) {
	var m models.Item
	err := row.Scan(&m.ItemID, &m.Title, &m.Publisher, &m.PublicationYear, &m.AvailableCopies)
	return m, err
}

// SaveItem inserts a new item under its caller-chosen id.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)

	query := `
		INSERT INTO items (item_id, title, publisher, publication_year, available_copies)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.ItemID, m.Title, m.Publisher, m.PublicationYear, m.AvailableCopies)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to save item %s", m.ItemID))
	}
	return nil
}

// FindItemByID retrieves an item by its catalog id.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `
		SELECT item_id, title, publisher, publication_year, available_copies
		FROM items
		WHERE item_id = $1;
	`
	m, err := scanItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrItemNotFound, fmt.Sprintf("item %s not found", itemID))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to find item %s", itemID), err)
	}
	item := mapping.ToDomainItem(m)
	return &item, nil
}

// ListItems returns all items ordered by title.
func (r *PgxItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	ds := dialect.From("items").
		Select(itemColumns...).
		Order(goqu.C("title").Asc(), goqu.C("item_id").Asc())
	return r.queryItems(ctx, ds, "failed to list items")
}

// SearchItems matches title or publisher.
func (r *PgxItemRepository) SearchItems(ctx context.Context, term string) ([]domain.Item, error) {
	ds := dialect.From("items").
		Select(itemColumns...).
		Where(matchAny(term, goqu.C("title"), goqu.C("publisher"))).
		Order(goqu.C("title").Asc(), goqu.C("item_id").Asc())
	return r.queryItems(ctx, ds, "failed to search items")
}

func (r *PgxItemRepository) queryItems(ctx context.Context, ds *goqu.SelectDataset, errMsg string) ([]domain.Item, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, apperrors.NewStorageError(errMsg, err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(errMsg, err)
	}
	return mapping.ToDomainItemSlice(items), nil
}

// ItemExists reports whether the item row exists.
func (r *PgxItemRepository) ItemExists(ctx context.Context, itemID string) (bool, error) {
	count, err := countWhere(ctx, r.Pool, "items", goqu.C("item_id").Eq(itemID))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateItem changes the descriptive fields. available_copies is owned by loans.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)

	query := `
		UPDATE items
		SET title = $2, publisher = $3, publication_year = $4
		WHERE item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.ItemID, m.Title, m.Publisher, m.PublicationYear)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to update item %s", m.ItemID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.Wrap(apperrors.ErrItemNotFound, fmt.Sprintf("item %s not found", m.ItemID))
	}
	return nil
}

// DeleteItem removes the item if no loan references it.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	query := `
		DELETE FROM items i
		WHERE i.item_id = $1
		  AND NOT EXISTS (SELECT 1 FROM loans l WHERE l.item_id = i.item_id);
	`
	cmdTag, err := r.Pool.Exec(ctx, query, itemID)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("failed to delete item %s", itemID))
	}
	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	loans, err := r.CountLoansByItem(ctx, itemID)
	if err != nil {
		return err
	}
	if loans > 0 {
		return apperrors.NewReferentialConflict("item", loans)
	}
	return apperrors.Wrap(apperrors.ErrItemNotFound, fmt.Sprintf("item %s not found", itemID))
}

// CountLoansByItem counts every loan of the item.
func (r *PgxItemRepository) CountLoansByItem(ctx context.Context, itemID string) (int, error) {
	return countWhere(ctx, r.Pool, "loans", goqu.C("item_id").Eq(itemID))
}
