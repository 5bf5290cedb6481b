package entity

// SelectedCustomization is a resolved choice recorded on a cart line item.
// It is a snapshot of the option's fields at selection time, not a live
// reference, so later catalog edits cannot change a placed line's price.
type SelectedCustomization struct {
	CustomizationID string `json:"customizationId"`
	OptionID        string `json:"optionId"`
	Name            string `json:"name"`
	PriceModifier   int64  `json:"priceModifier"`
}

// CartLineItem is one row in the cart. ID is derived from the menu item id
// plus the sorted selection pairs, so the same item with the same choices
// always collapses onto one line. TotalPrice is quantity x unit price in
// cents.
type CartLineItem struct {
	ID             string                  `json:"id"`
	MenuItem       MenuItem                `json:"menuItem"`
	Quantity       int                     `json:"quantity"`
	Customizations []SelectedCustomization `json:"customizations"`
	TotalPrice     int64                   `json:"totalPrice"`
}

// UnitPrice recomputes the per-unit price from the line's own stored menu
// item and selections, never from a cached value.
func (li CartLineItem) UnitPrice() int64 {
	unit := li.MenuItem.Price
	for _, c := range li.Customizations {
		unit += c.PriceModifier
	}
	return unit
}

// CartState is the live cart aggregate. TotalItems and TotalAmount are
// always recomputed from Items, never patched incrementally.
type CartState struct {
	Items       []CartLineItem `json:"items"`
	IsOpen      bool           `json:"isOpen"`
	TotalItems  int            `json:"totalItems"`
	TotalAmount int64          `json:"totalAmount"`
}

// CartSnapshot is the persisted shape of the cart, and what checkout reads.
// The panel flag is session-presentation state and is not part of it.
type CartSnapshot struct {
	Items       []CartLineItem `json:"items"`
	TotalItems  int            `json:"totalItems"`
	TotalAmount int64          `json:"totalAmount"`
}
