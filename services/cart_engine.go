package services

import (
	"sort"
	"strings"

	"github.com/daniellbaii/mp-fishnchips/entity"
)

// CartEngine owns one cart: its line items, the panel visibility flag and
// the derived totals. It is not safe for concurrent use; CartService
// serializes access to it.
type CartEngine struct {
	state entity.CartState
}

func NewCartEngine() *CartEngine {
	return &CartEngine{state: entity.CartState{Items: []entity.CartLineItem{}}}
}

// LineItemID derives a line's identity from the menu item id and the
// selection pairs sorted lexicographically, so the same choices in any
// order collapse onto one line.
func LineItemID(item entity.MenuItem, sels []entity.SelectedCustomization) string {
	pairs := make([]string, 0, len(sels))
	for _, s := range sels {
		pairs = append(pairs, s.CustomizationID+":"+s.OptionID)
	}
	sort.Strings(pairs)
	return item.ID + "-" + strings.Join(pairs, ",")
}

func unitPrice(item entity.MenuItem, sels []entity.SelectedCustomization) int64 {
	price := item.Price
	for _, s := range sels {
		price += s.PriceModifier
	}
	return price
}

// AddItem merges onto an existing line with the same identity, otherwise
// appends a new line with quantity 1. Either way it opens the panel.
// Selections are taken as given; required-group completeness is the
// customization workflow's job.
func (e *CartEngine) AddItem(item entity.MenuItem, sels []entity.SelectedCustomization) {
	id := LineItemID(item, sels)
	unit := unitPrice(item, sels)
	merged := false
	for i := range e.state.Items {
		if e.state.Items[i].ID == id {
			e.state.Items[i].Quantity++
			e.state.Items[i].TotalPrice = int64(e.state.Items[i].Quantity) * unit
			merged = true
			break
		}
	}
	if !merged {
		e.state.Items = append(e.state.Items, entity.CartLineItem{
			ID:             id,
			MenuItem:       item,
			Quantity:       1,
			Customizations: sels,
			TotalPrice:     unit,
		})
	}
	e.state.IsOpen = true
	e.recompute()
}

// RemoveItem deletes the line if present; absent ids are a no-op.
func (e *CartEngine) RemoveItem(lineItemID string) {
	items := e.state.Items[:0]
	for _, li := range e.state.Items {
		if li.ID != lineItemID {
			items = append(items, li)
		}
	}
	e.state.Items = items
	e.recompute()
}

// UpdateQuantity sets the line's quantity; zero or less removes the line.
// The unit price is rederived from the line's own menu item and selections
// so the total stays an exact multiple of it.
func (e *CartEngine) UpdateQuantity(lineItemID string, quantity int) {
	if quantity <= 0 {
		e.RemoveItem(lineItemID)
		return
	}
	for i := range e.state.Items {
		if e.state.Items[i].ID == lineItemID {
			e.state.Items[i].Quantity = quantity
			e.state.Items[i].TotalPrice = int64(quantity) * e.state.Items[i].UnitPrice()
			break
		}
	}
	e.recompute()
}

func (e *CartEngine) Clear() {
	e.state.Items = []entity.CartLineItem{}
	e.state.IsOpen = false
	e.recompute()
}

func (e *CartEngine) Open()   { e.state.IsOpen = true }
func (e *CartEngine) Close()  { e.state.IsOpen = false }
func (e *CartEngine) Toggle() { e.state.IsOpen = !e.state.IsOpen }

// recompute rederives both totals from the full line list after every
// mutation. Never patched incrementally.
func (e *CartEngine) recompute() {
	var items int
	var amount int64
	for _, li := range e.state.Items {
		items += li.Quantity
		amount += li.TotalPrice
	}
	e.state.TotalItems = items
	e.state.TotalAmount = amount
}

// State returns a copy of the current cart state.
func (e *CartEngine) State() entity.CartState {
	st := e.state
	st.Items = copyLineItems(e.state.Items)
	return st
}

// Snapshot is the persisted/checkout shape of the cart. The copy is deep
// enough that later cart mutations cannot reach into it.
func (e *CartEngine) Snapshot() entity.CartSnapshot {
	return entity.CartSnapshot{
		Items:       copyLineItems(e.state.Items),
		TotalItems:  e.state.TotalItems,
		TotalAmount: e.state.TotalAmount,
	}
}

// Restore replaces the line items from a stored snapshot and recomputes
// the totals from them rather than trusting the stored scalars.
func (e *CartEngine) Restore(snap *entity.CartSnapshot) {
	e.state.Items = copyLineItems(snap.Items)
	e.recompute()
}

func copyLineItems(items []entity.CartLineItem) []entity.CartLineItem {
	out := make([]entity.CartLineItem, len(items))
	for i, li := range items {
		sels := make([]entity.SelectedCustomization, len(li.Customizations))
		copy(sels, li.Customizations)
		li.Customizations = sels
		out[i] = li
	}
	return out
}
