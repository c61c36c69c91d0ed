// Package keywords holds the static keyword list behind the keyword menu.
package keywords

import (
	"sort"
	"strings"
)

// Option is one entry of the keyword menu. Value is what gets searched,
// Label is what the user sees.
type Option struct {
	Value string
	Label string
}

// list is intentionally kept in the order it was collected; Options sorts it.
var list = []string{
	"Margarita", "Mojito", "Martini", "Daiquiri", "Negroni",
	"Manhattan", "Old Fashioned", "Cosmopolitan", "Gimlet", "Sidecar",
	"Vodka", "Gin", "Rum", "Tequila", "Whiskey", "Brandy", "Bourbon",
	"Lemon", "Lime", "Orange", "Pineapple", "Cranberry", "Mint",
	"Sour", "Punch", "Fizz", "Collins", "Mule", "Spritz", "Sling",
	"Bloody Mary", "Pina Colada", "Mai Tai", "Zombie", "Kir",
	"Amaretto", "Kahlua", "Champagne", "Coffee", "Chocolate",
	"Apple", "Banana", "Strawberry", "Cherry", "Coconut", "Ginger",
}

// Options returns the keyword menu entries sorted by label. Values are
// lowercased.
func Options() []Option {
	labels := make([]string, len(list))
	copy(labels, list)
	sort.Strings(labels)

	out := make([]Option, 0, len(labels))
	for _, l := range labels {
		out = append(out, Option{Value: strings.ToLower(l), Label: l})
	}
	return out
}
