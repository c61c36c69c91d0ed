// Package domain defines the core types and interfaces for the cocktail finder.
// All other packages depend on domain; domain depends on nothing.
package domain

import "fmt"

// SlotCount is the number of numbered ingredient/measure pairs a drink
// record carries.
const SlotCount = 15

// Drink is one decoded recipe record. Missing or null fields are "".
type Drink struct {
	ID           string
	Name         string
	Instructions string
	Thumb        string // absolute image URL on the API server
	Glass        string
	Category     string
	Alcoholic    string
	Slots        [SlotCount]Slot
}

// Slot is a single numbered ingredient/measure pair. Slots[0] holds
// ingredient 1. Either field may be empty, and populated slots are not
// guaranteed to be contiguous.
type Slot struct {
	Ingredient string
	Measure    string
}

// Ingredient is a normalized ingredient line.
type Ingredient struct {
	Name    string
	Measure string // "" when the record has no measure
}

// Line formats the ingredient the way cards show it.
func (i Ingredient) Line() string {
	return fmt.Sprintf("%s - %s", i.Name, i.Measure)
}

// Card is the render model of one drink.
type Card struct {
	Name         string
	Instructions string
	Ingredients  []Ingredient
	Glass        string
	Category     string
	Alcoholic    string
	Image        string
}
