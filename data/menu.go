// Package data holds the static menu catalog for the shop. Prices are in
// cents.
package data

import "github.com/daniellbaii/mp-fishnchips/entity"

var fishType = entity.MenuCustomization{
	ID:       "fish-type",
	Name:     "Choose your fish",
	Type:     "radio",
	Required: true,
	Options: []entity.CustomizationOption{
		{ID: "barramundi", Name: "Barramundi", PriceModifier: 0},
		{ID: "snapper", Name: "Snapper", PriceModifier: 200},
		{ID: "flathead", Name: "Flathead", PriceModifier: 100},
		{ID: "whiting", Name: "King George Whiting", PriceModifier: 300},
	},
}

var portionSize = entity.MenuCustomization{
	ID:       "portion-size",
	Name:     "Portion size",
	Type:     "radio",
	Required: true,
	Options: []entity.CustomizationOption{
		{ID: "regular", Name: "Regular", PriceModifier: 0},
		{ID: "large", Name: "Large", PriceModifier: 300},
	},
}

var chipsType = entity.MenuCustomization{
	ID:       "chips-type",
	Name:     "Chips type",
	Type:     "radio",
	Required: true,
	Options: []entity.CustomizationOption{
		{ID: "regular", Name: "Regular Cut", PriceModifier: 0},
		{ID: "chunky", Name: "Chunky Cut", PriceModifier: 100},
		{ID: "wedges", Name: "Potato Wedges", PriceModifier: 200},
	},
}

var extras = entity.MenuCustomization{
	ID:       "extras",
	Name:     "Add extras",
	Type:     "checkbox",
	Required: false,
	Options: []entity.CustomizationOption{
		{ID: "lemon", Name: "Lemon wedge", PriceModifier: 0},
		{ID: "tartare", Name: "Tartare sauce", PriceModifier: 100},
		{ID: "vinegar", Name: "Malt vinegar", PriceModifier: 0},
		{ID: "gravy", Name: "Gravy", PriceModifier: 200},
	},
}

var MenuItems = []entity.MenuItem{
	// Fish
	{
		ID:             "fish-single",
		Name:           "Fresh Fish",
		Description:    "Daily fresh catch, beer battered and fried to golden perfection",
		Price:          1200,
		Category:       entity.CategoryFish,
		Popular:        true,
		Customizations: []entity.MenuCustomization{fishType, extras},
	},
	{
		ID:             "fish-grilled",
		Name:           "Grilled Fish",
		Description:    "Healthy option - fresh fish grilled with herbs and lemon",
		Price:          1400,
		Category:       entity.CategoryFish,
		Customizations: []entity.MenuCustomization{fishType, extras},
	},

	// Chips
	{
		ID:             "chips-regular",
		Name:           "Chips",
		Description:    "Golden, crispy chips made fresh daily from premium potatoes",
		Price:          800,
		Category:       entity.CategoryChips,
		Customizations: []entity.MenuCustomization{chipsType, portionSize},
	},
	{
		ID:             "chips-loaded",
		Name:           "Loaded Chips",
		Description:    "Chips topped with cheese, bacon bits, and sour cream",
		Price:          1200,
		Category:       entity.CategoryChips,
		Customizations: []entity.MenuCustomization{chipsType},
	},

	// Combos
	{
		ID:             "classic-combo",
		Name:           "Classic Fish & Chips",
		Description:    "One piece of fresh fish with a serving of our famous chips",
		Price:          1800,
		Category:       entity.CategoryCombos,
		Popular:        true,
		Customizations: []entity.MenuCustomization{fishType, chipsType, extras},
	},
	{
		ID:             "family-pack",
		Name:           "Family Pack",
		Description:    "4 pieces of fish, large chips, coleslaw, and bread rolls",
		Price:          4500,
		Category:       entity.CategoryCombos,
		Customizations: []entity.MenuCustomization{fishType, extras},
	},
	{
		ID:             "fishermans-basket",
		Name:           "Fisherman's Basket",
		Description:    "2 pieces fish, prawns, calamari rings, chips, and salad",
		Price:          2800,
		Category:       entity.CategoryCombos,
		Customizations: []entity.MenuCustomization{fishType, chipsType, extras},
	},

	// Sides
	{
		ID:          "coleslaw",
		Name:        "Coleslaw",
		Description: "Fresh, creamy coleslaw made daily",
		Price:       400,
		Category:    entity.CategorySides,
	},
	{
		ID:          "potato-scallops",
		Name:        "Potato Scallops",
		Description: "Sliced potato in crispy batter (4 pieces)",
		Price:       600,
		Category:    entity.CategorySides,
	},
	{
		ID:          "dim-sims",
		Name:        "Dim Sims",
		Description: "Traditional steamed or fried dim sims (4 pieces)",
		Price:       800,
		Category:    entity.CategorySides,
	},
	{
		ID:          "prawns",
		Name:        "Crumbed Prawns",
		Description: "Fresh prawns in golden crumb (6 pieces)",
		Price:       1200,
		Category:    entity.CategorySides,
	},

	// Drinks
	{
		ID:          "soft-drink",
		Name:        "Soft Drinks",
		Description: "Coke, Sprite, Fanta - 375ml cans",
		Price:       300,
		Category:    entity.CategoryDrinks,
	},
	{
		ID:          "water",
		Name:        "Water",
		Description: "Premium spring water - 600ml",
		Price:       200,
		Category:    entity.CategoryDrinks,
	},
	{
		ID:          "juice",
		Name:        "Fresh Juice",
		Description: "Orange or apple juice - 350ml",
		Price:       400,
		Category:    entity.CategoryDrinks,
	},
}

type Category struct {
	ID          entity.MenuCategory `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
}

var MenuCategories = []Category{
	{ID: entity.CategoryFish, Name: "Fresh Fish", Description: "Daily catch, prepared to perfection"},
	{ID: entity.CategoryChips, Name: "Chips", Description: "Golden and crispy, made fresh daily"},
	{ID: entity.CategoryCombos, Name: "Combos", Description: "Complete meals for great value"},
	{ID: entity.CategorySides, Name: "Sides", Description: "Perfect accompaniments to your meal"},
	{ID: entity.CategoryDrinks, Name: "Drinks", Description: "Refresh yourself with our beverage selection"},
}
