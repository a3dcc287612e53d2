package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/lending_catalog/internal/core/ports/services"
	"github.com/SscSPs/lending_catalog/internal/dto"
	"github.com/SscSPs/lending_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// itemHandler handles HTTP requests related to catalog items.
type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// newItemHandler creates a new itemHandler.
func newItemHandler(is portssvc.ItemSvcFacade) *itemHandler {
	return &itemHandler{itemService: is}
}

// registerItemRoutes registers routes related to items.
func registerItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := newItemHandler(itemService)

	items := rg.Group("/items")
	{
		items.GET("", h.listItems)
		items.GET("/search", h.searchItems)
		items.POST("", h.createItem)
		items.GET("/:id", h.getItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
	}
}

// listItems godoc
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.itemService.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list items")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(items))
}

// searchItems godoc
// @Summary Search items
// @Description Case-insensitive substring search on title and publisher
// @Tags items
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} dto.ItemResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/search [get]
func (h *itemHandler) searchItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.itemService.SearchItems(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, logger, err, "Failed to search items")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(items))
}

// getItem godoc
// @Summary Get an item
// @Tags items
// @Produce json
// @Param id path string true "Item catalog number"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/{id} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	item, err := h.itemService.GetItemByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve item")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// createItem godoc
// @Summary Add an item to the catalog
// @Description Adds an item under a caller-chosen catalog number. Copies default to 1.
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error or duplicate catalog number"
// @Failure 500 {object} dto.ErrorResponse
// @Router /items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "body")
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create item")
		return
	}

	logger.Info("Item created", slog.String("item_id", item.ItemID))
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// updateItem godoc
// @Summary Update an item
// @Description Replaces title, publisher and year. Available copies cannot be changed.
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item catalog number"
// @Param item body dto.UpdateItemRequest true "Item details"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/{id} [put]
func (h *itemHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "body")
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update item")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an item
// @Description Deletes an item that has never been lent
// @Tags items
// @Produce json
// @Param id path string true "Item catalog number"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Item still referenced by loans"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/{id} [delete]
func (h *itemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.itemService.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete item")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "item deleted"})
}
