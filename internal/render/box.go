package render

import (
	"sync"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.Container = (*Box)(nil)
	_ domain.Container = (Multi)(nil)
)

// Box is an in-memory container. Safe for concurrent access.
type Box struct {
	mu    sync.RWMutex
	cards []domain.Card
}

// NewBox creates an empty box.
func NewBox() *Box {
	return &Box{}
}

// Clear drops every card.
func (b *Box) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cards = nil
}

// Append adds a card at the end.
func (b *Box) Append(card domain.Card) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cards = append(b.cards, card)
}

// Cards returns a copy of the current cards in display order.
func (b *Box) Cards() []domain.Card {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Len returns the number of cards.
func (b *Box) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.cards)
}

// Multi fans a render out to several containers.
type Multi []domain.Container

// Clear clears every container.
func (m Multi) Clear() {
	for _, c := range m {
		c.Clear()
	}
}

// Append appends card to every container.
func (m Multi) Append(card domain.Card) {
	for _, c := range m {
		c.Append(card)
	}
}
