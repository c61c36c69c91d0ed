// Package render turns drink records into cards and writes them into an
// output container.
package render

import (
	"sort"
	"strings"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
)

// Normalize extracts the populated ingredient slots of d in slot order.
// Empty slots are skipped without ending the scan, since populated slots
// are not guaranteed to be contiguous. Repeated ingredient names are kept.
func Normalize(d domain.Drink) []domain.Ingredient {
	var out []domain.Ingredient
	for _, slot := range d.Slots {
		name := strings.TrimSpace(slot.Ingredient)
		if name == "" {
			continue
		}
		out = append(out, domain.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(slot.Measure),
		})
	}
	return out
}

// SortByName orders drinks in place by name, byte-wise ascending.
func SortByName(drinks []domain.Drink) {
	sort.SliceStable(drinks, func(i, j int) bool {
		return drinks[i].Name < drinks[j].Name
	})
}

// CardFor builds the card for a single drink.
func CardFor(d domain.Drink) domain.Card {
	return domain.Card{
		Name:         d.Name,
		Instructions: d.Instructions,
		Ingredients:  Normalize(d),
		Glass:        strings.TrimSpace(d.Glass),
		Category:     d.Category,
		Alcoholic:    d.Alcoholic,
		Image:        d.Thumb,
	}
}

// Render sorts drinks by name, clears c and appends one card per drink.
// Zero drinks leave c empty.
func Render(c domain.Container, drinks []domain.Drink) {
	SortByName(drinks)
	c.Clear()
	for _, d := range drinks {
		c.Append(CardFor(d))
	}
}
