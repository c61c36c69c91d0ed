package display

import (
	"strings"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/render"
)

// Compile-time interface check.
var _ domain.Container = (*TerminalBox)(nil)

// TerminalBox is the terminal output container. Cards are kept as data
// and styled on View, so a resize re-wraps them.
type TerminalBox struct {
	render.Box
}

// NewTerminalBox creates an empty terminal container.
func NewTerminalBox() *TerminalBox {
	return &TerminalBox{}
}

// View renders every card for the given terminal width.
func (t *TerminalBox) View(width int) string {
	cards := t.Cards()
	if len(cards) == 0 {
		return secondaryStyle.Render("  No cocktails to show.")
	}

	inner := width - 4 // border + padding
	if inner < 24 {
		inner = 76
	}

	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, renderCard(c, inner))
	}
	return strings.Join(parts, "\n")
}

func renderCard(c domain.Card, width int) string {
	lines := []string{nameStyle.Render(c.Name)}

	var meta []string
	for _, m := range []string{c.Category, c.Alcoholic} {
		if m != "" {
			meta = append(meta, m)
		}
	}
	if len(meta) > 0 {
		lines = append(lines, secondaryStyle.Render(strings.Join(meta, " · ")))
	}

	if c.Instructions != "" {
		lines = append(lines, "", primaryStyle.Width(width-2).Render(c.Instructions))
	}

	lines = append(lines, "", headingStyle.Render("Ingredients & Measures:"))
	for _, ing := range c.Ingredients {
		lines = append(lines, primaryStyle.Render("  • "+ing.Line()))
	}

	if c.Glass != "" {
		lines = append(lines, "", secondaryStyle.Render("Serve in ")+glassStyle.Render(c.Glass))
	}
	if c.Image != "" {
		lines = append(lines, linkStyle.Render(c.Image))
	}

	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}
