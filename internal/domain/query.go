package domain

import (
	"fmt"
	"strings"
)

// Letters is the set of first letters the letter bar offers. The remote
// catalogue has no drinks under U or X, so those two are left out.
const Letters = "ABCDEFGHIJKLMNOPQRSTVWYZ"

// IsLetter reports whether r is one of the letter-bar letters.
func IsLetter(r rune) bool {
	return strings.ContainsRune(Letters, r)
}

// Query is the tagged variant a triggering control hands to the pipeline.
// The concrete types are TextQuery, LetterQuery and RandomQuery.
type Query interface {
	fmt.Stringer
	query()
}

// TextQuery searches drinks by name. Both the search box and the keyword
// menu produce one.
type TextQuery struct {
	Text string
}

// LetterQuery lists drinks whose name starts with Letter.
type LetterQuery struct {
	Letter rune
}

// RandomQuery asks for a single random drink.
type RandomQuery struct{}

func (TextQuery) query()   {}
func (LetterQuery) query() {}
func (RandomQuery) query() {}

func (q TextQuery) String() string   { return fmt.Sprintf("search %q", q.Text) }
func (q LetterQuery) String() string { return fmt.Sprintf("letter %c", q.Letter) }
func (RandomQuery) String() string   { return "random" }
