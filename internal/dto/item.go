package dto

import "github.com/SscSPs/lending_catalog/internal/core/domain"

// CreateItemRequest defines the data needed to add an item to the catalog.
// ItemID is the catalog number chosen by the caller; it appears in item URLs.
type CreateItemRequest struct {
	ItemID          string `json:"itemID" validate:"notblank,max=32,catalogid"`
	Title           string `json:"title" validate:"notblank,max=255"`
	Publisher       string `json:"publisher" validate:"notblank,max=255"`
	PublicationYear *int   `json:"publicationYear" validate:"omitempty,pubyear"`
	Copies          *int   `json:"copies" validate:"omitempty,min=0,max=10000"` // Defaults to 1
}

// UpdateItemRequest replaces the descriptive fields of an item.
// Available copies are owned by the loan engine and cannot be set here.
type UpdateItemRequest struct {
	Title           string `json:"title" validate:"notblank,max=255"`
	Publisher       string `json:"publisher" validate:"notblank,max=255"`
	PublicationYear *int   `json:"publicationYear" validate:"omitempty,pubyear"`
}

// ItemResponse is the API representation of an item.
type ItemResponse struct {
	ItemID          string `json:"itemID"`
	Title           string `json:"title"`
	Publisher       string `json:"publisher"`
	PublicationYear *int   `json:"publicationYear"`
	AvailableCopies int    `json:"availableCopies"`
	Available       bool   `json:"available"`
}

// ToItemResponse converts a domain.Item to its response DTO
func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:          i.ItemID,
		Title:           i.Title,
		Publisher:       i.Publisher,
		PublicationYear: i.PublicationYear,
		AvailableCopies: i.AvailableCopies,
		Available:       i.IsAvailable(),
	}
}

// ToItemResponses converts a slice of domain.Item
func ToItemResponses(items []domain.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i := range items {
		resp[i] = ToItemResponse(&items[i])
	}
	return resp
}

// CreatedItemResponse acknowledges an item creation.
type CreatedItemResponse struct {
	ItemID  string `json:"itemID"`
	Message string `json:"message"`
}
