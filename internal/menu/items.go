package menu

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/lending_catalog/internal/core/domain"
	"github.com/SscSPs/lending_catalog/internal/dto"
)

func itemActions(m *Menu) []action {
	return []action{
		{label: "List all items", run: m.listItems},
		{label: "Search items", run: m.searchItems},
		{label: "Item details", run: m.showItem},
		{label: "Add an item", run: m.addItem},
		{label: "Edit an item", run: m.editItem},
		{label: "Delete an item", run: m.deleteItem},
	}
}

func publicationYear(year *int) string {
	if year == nil {
		return "-"
	}
	return strconv.Itoa(*year)
}

func (m *Menu) itemTable(items []domain.Item) string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.ItemID,
			it.Title,
			it.Publisher,
			publicationYear(it.PublicationYear),
			strconv.Itoa(it.AvailableCopies),
		})
	}
	return m.styles.table([]string{"ID", "Title", "Publisher", "Year", "Available"}, rows)
}

func (m *Menu) listItems(ctx context.Context) {
	items, err := m.services.Item.ListItems(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	if len(items) == 0 {
		m.warn("No items found")
		return
	}
	m.println(m.itemTable(items))
	m.wait()
}

func (m *Menu) searchItems(ctx context.Context) {
	term, ok := m.ask("Search (title or publisher)")
	if !ok {
		return
	}
	if term == "" {
		m.warn("Empty search term")
		return
	}

	items, err := m.services.Item.SearchItems(ctx, term)
	if err != nil {
		m.fail(err)
		return
	}
	if len(items) == 0 {
		m.warn(fmt.Sprintf("No item matches '%s'", term))
		return
	}
	m.println(m.itemTable(items))
	m.wait()
}

func (m *Menu) showItem(ctx context.Context) {
	itemID, ok := m.ask("Item ID")
	if !ok {
		return
	}

	item, err := m.services.Item.GetItemByID(ctx, itemID)
	if err != nil {
		m.fail(err)
		return
	}

	status := "available"
	if !item.IsAvailable() {
		status = "all copies lent"
	}
	m.println("")
	m.println(m.styles.field("ID", item.ItemID))
	m.println(m.styles.field("Title", item.Title))
	m.println(m.styles.field("Publisher", item.Publisher))
	m.println(m.styles.field("Publication year", publicationYear(item.PublicationYear)))
	m.println(m.styles.field("Available copies", fmt.Sprintf("%d (%s)", item.AvailableCopies, status)))
	m.wait()
}

func (m *Menu) addItem(ctx context.Context) {
	var req dto.CreateItemRequest
	var ok bool
	if req.ItemID, ok = m.ask("Item ID"); !ok {
		return
	}
	if req.Title, ok = m.ask("Title"); !ok {
		return
	}
	if req.Publisher, ok = m.ask("Publisher"); !ok {
		return
	}
	if req.PublicationYear, ok = m.askOptionalInt("Publication year (optional)", "publicationYear"); !ok {
		return
	}
	if req.Copies, ok = m.askOptionalInt("Copies (default 1)", "copies"); !ok {
		return
	}

	item, err := m.services.Item.CreateItem(ctx, req)
	if err != nil {
		m.fail(err)
		return
	}
	m.success(fmt.Sprintf("Item %s added with %d copies", item.ItemID, item.AvailableCopies))
}

func (m *Menu) editItem(ctx context.Context) {
	itemID, ok := m.ask("Item ID")
	if !ok {
		return
	}
	current, err := m.services.Item.GetItemByID(ctx, itemID)
	if err != nil {
		m.fail(err)
		return
	}

	m.println(m.styles.muted.Render("Leave empty to keep the current value"))
	req := dto.UpdateItemRequest{PublicationYear: current.PublicationYear}
	if req.Title, ok = m.askDefault("Title", current.Title); !ok {
		return
	}
	if req.Publisher, ok = m.askDefault("Publisher", current.Publisher); !ok {
		return
	}
	year, ok := m.askOptionalInt(fmt.Sprintf("Publication year [%s]", publicationYear(current.PublicationYear)), "publicationYear")
	if !ok {
		return
	}
	if year != nil {
		req.PublicationYear = year
	}

	if _, err := m.services.Item.UpdateItem(ctx, itemID, req); err != nil {
		m.fail(err)
		return
	}
	m.success("Item updated")
}

func (m *Menu) deleteItem(ctx context.Context) {
	itemID, ok := m.ask("Item ID")
	if !ok {
		return
	}
	item, err := m.services.Item.GetItemByID(ctx, itemID)
	if err != nil {
		m.fail(err)
		return
	}
	if !m.confirm(fmt.Sprintf("Delete '%s'?", item.Title)) {
		m.warn("Cancelled")
		return
	}

	if err := m.services.Item.DeleteItem(ctx, itemID); err != nil {
		m.fail(err)
		return
	}
	m.success("Item deleted")
}
