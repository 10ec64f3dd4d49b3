package entity

import "time"

// Listing asocia un Inventory (SKU) con un Menu, haciéndolo ordenable
// desde ese menú. Un mismo SKU puede estar publicado en varios menús;
// el par (inventory_id, menu_id) es único.
type Listing struct {
	ID          string
	InventoryID string
	MenuID      string
	CreatedAt   time.Time
}
