// Package query turns triggering controls into request targets against the
// cocktail search API.
package query

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
)

// Endpoint paths relative to the API base.
const (
	searchPath = "search.php"
	randomPath = "random.php"
)

// Target returns the full request URL for q. base is the API root; a
// missing trailing slash is added. Text is URL-encoded but otherwise passed
// through as-is, empty included.
func Target(base string, q domain.Query) string {
	base = strings.TrimRight(base, "/") + "/"

	switch q := q.(type) {
	case domain.TextQuery:
		return base + searchPath + "?" + url.Values{"s": {q.Text}}.Encode()
	case domain.LetterQuery:
		return base + searchPath + "?" + url.Values{"f": {string(q.Letter)}}.Encode()
	default:
		return base + randomPath
	}
}

// Control is what a generic UI control exposes when it fires: its current
// value and its identity.
type Control struct {
	Value string
	ID    string
}

// FromControl picks the query variant for a control that fired. A control
// with a value is a text search; one whose identity is a single letter-bar
// letter is a letter search; anything else is the random button.
func FromControl(c Control) domain.Query {
	if c.Value != "" {
		return domain.TextQuery{Text: c.Value}
	}
	if utf8.RuneCountInString(c.ID) == 1 {
		r, _ := utf8.DecodeRuneInString(c.ID)
		if domain.IsLetter(r) {
			return domain.LetterQuery{Letter: r}
		}
	}
	return domain.RandomQuery{}
}

// ParseLetter validates a user-typed letter. Lowercase input is accepted.
func ParseLetter(s string) (domain.LetterQuery, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return domain.LetterQuery{}, fmt.Errorf("%q: %w", s, domain.ErrInvalidLetter)
	}
	r := unicode.ToUpper([]rune(s)[0])
	if !domain.IsLetter(r) {
		return domain.LetterQuery{}, fmt.Errorf("%q: %w", s, domain.ErrInvalidLetter)
	}
	return domain.LetterQuery{Letter: r}, nil
}
