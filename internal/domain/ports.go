package domain

import "context"

// DrinkSource resolves a query to drink records. The production
// implementation talks to TheCocktailDB; tests use fakes.
type DrinkSource interface {
	Search(ctx context.Context, q Query) ([]Drink, error)
}

// Container is an output surface for rendered cards. A render always calls
// Clear once and then Append once per card, in display order.
// Implementations can be a terminal view, an HTML fragment, or a spreadsheet.
type Container interface {
	Clear()
	Append(card Card)
}
