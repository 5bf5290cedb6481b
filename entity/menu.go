package entity

import "strings"

type MenuCategory string

const (
	CategoryFish     MenuCategory = "fish"
	CategoryChips    MenuCategory = "chips"
	CategoryCombos   MenuCategory = "combos"
	CategorySides    MenuCategory = "sides"
	CategoryDrinks   MenuCategory = "drinks"
	CategoryDesserts MenuCategory = "desserts"
)

// CustomizationOption is one selectable choice within a customization
// group. PriceModifier is a signed delta in cents applied to the unit price.
type CustomizationOption struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceModifier int64  `json:"priceModifier"`
}

// SelectionMode is the cardinality of a customization group: radio/select
// groups take exactly one choice, checkbox groups take zero or more.
type SelectionMode int

const (
	SingleChoice SelectionMode = iota
	MultiChoice
)

type MenuCustomization struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Type     string                `json:"type"` // "radio" | "select" | "checkbox"
	Required bool                  `json:"required"`
	Options  []CustomizationOption `json:"options"`
}

func (m MenuCustomization) Mode() SelectionMode {
	if m.Type == "checkbox" {
		return MultiChoice
	}
	return SingleChoice
}

func (m MenuCustomization) Option(id string) (CustomizationOption, bool) {
	for _, o := range m.Options {
		if o.ID == id {
			return o, true
		}
	}
	return CustomizationOption{}, false
}

// MenuItem is an immutable catalog entry. Price is the base unit price in
// cents, before customization modifiers.
type MenuItem struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Price          int64               `json:"price"`
	Category       MenuCategory        `json:"category"`
	Popular        bool                `json:"popular,omitempty"`
	Customizations []MenuCustomization `json:"customizations,omitempty"`
}

func (m MenuItem) Customization(id string) (MenuCustomization, bool) {
	for _, c := range m.Customizations {
		if c.ID == id {
			return c, true
		}
	}
	return MenuCustomization{}, false
}

// Matches reports whether q is a case-insensitive substring of the item's
// name or description.
func (m MenuItem) Matches(q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Description), q)
}
