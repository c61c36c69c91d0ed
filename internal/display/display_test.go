package display

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/engine"
	"github.com/hammamikhairi/cocktailbox/internal/keywords"
)

type recorder struct {
	queries []domain.Query
	err     error
}

func (r *recorder) dispatch(ctx context.Context, q domain.Query) (engine.Result, error) {
	r.queries = append(r.queries, q)
	if r.err != nil {
		return engine.Result{Query: q}, r.err
	}
	return engine.Result{Query: q, Count: 2}, nil
}

func setupModel(t *testing.T) (model, *recorder) {
	t.Helper()
	rec := &recorder{}
	box := NewTerminalBox()
	m := newModel(context.Background(), box, engine.NewSurface(box), rec.dispatch, keywords.Options())
	return m, rec
}

func press(t *testing.T, m model, key tea.KeyMsg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	return next.(model), cmd
}

// fireAndDeliver runs the dispatch command and feeds its result back.
func fireAndDeliver(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a dispatch command")
	}
	msg, ok := cmd().(resultMsg)
	if !ok {
		t.Fatal("command did not produce a resultMsg")
	}
	next, _ := m.Update(msg)
	return next.(model)
}

var (
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlR    = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSearchBoxFiresTextQuery(t *testing.T) {
	m, rec := setupModel(t)

	m, _ = press(t, m, runes("mojito"))
	m, cmd := press(t, m, keyEnter)
	m = fireAndDeliver(t, m, cmd)

	if len(rec.queries) != 1 || rec.queries[0] != (domain.TextQuery{Text: "mojito"}) {
		t.Fatalf("queries = %v", rec.queries)
	}
	if !strings.Contains(m.status, "2 cocktails") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestKeywordSelectorFiresLowercaseValue(t *testing.T) {
	m, rec := setupModel(t)
	opts := keywords.Options()

	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyRight)
	_, cmd := press(t, m, keyEnter)
	fireAndDeliver(t, m, cmd)

	want := domain.TextQuery{Text: opts[1].Value}
	if len(rec.queries) != 1 || rec.queries[0] != want {
		t.Fatalf("queries = %v, want %v", rec.queries, want)
	}

	// Moving left from the first entry wraps to the last.
	m, _ = press(t, m, keyLeft)
	m, _ = press(t, m, keyLeft)
	if m.optionIdx != len(opts)-1 {
		t.Fatalf("optionIdx = %d, want %d", m.optionIdx, len(opts)-1)
	}
}

func TestLetterBar(t *testing.T) {
	m, rec := setupModel(t)

	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyTab)
	if m.focus != focusLetters {
		t.Fatalf("focus = %d, want letters", m.focus)
	}

	m, cmd := press(t, m, runes("c"))
	m = fireAndDeliver(t, m, cmd)
	if rec.queries[0] != (domain.LetterQuery{Letter: 'C'}) {
		t.Fatalf("typed letter dispatched %v", rec.queries[0])
	}

	m, cmd = press(t, m, runes("u"))
	if cmd != nil {
		t.Fatal("excluded letter must not dispatch")
	}
	if !strings.Contains(m.status, "not on the letter bar") {
		t.Fatalf("status = %q", m.status)
	}

	// From C, one step left is B.
	m, _ = press(t, m, keyLeft)
	_, cmd = press(t, m, keyEnter)
	fireAndDeliver(t, m, cmd)
	if rec.queries[1] != (domain.LetterQuery{Letter: 'B'}) {
		t.Fatalf("arrow+enter dispatched %v", rec.queries[1])
	}
}

func TestRandomButtonAndShortcut(t *testing.T) {
	m, rec := setupModel(t)

	_, cmd := press(t, m, keyCtrlR)
	fireAndDeliver(t, m, cmd)

	m, _ = press(t, m, keyShiftTab)
	if m.focus != focusRandom {
		t.Fatalf("shift+tab from search should land on random, got %d", m.focus)
	}
	_, cmd = press(t, m, keyEnter)
	fireAndDeliver(t, m, cmd)

	if len(rec.queries) != 2 {
		t.Fatalf("expected 2 dispatches, got %v", rec.queries)
	}
	for _, q := range rec.queries {
		if q != (domain.RandomQuery{}) {
			t.Fatalf("expected random query, got %v", q)
		}
	}
}

func TestFailureAndStaleResults(t *testing.T) {
	m, rec := setupModel(t)
	rec.err = errors.New("dial tcp: no route to host")

	_, cmd := press(t, m, keyCtrlR)
	m = fireAndDeliver(t, m, cmd)
	if !m.failed || !strings.Contains(m.status, "Request failed") {
		t.Fatalf("failure not surfaced: failed=%v status=%q", m.failed, m.status)
	}

	before := m.status
	next, _ := m.Update(resultMsg{res: engine.Result{Query: domain.RandomQuery{}}, err: domain.ErrStale})
	if got := next.(model).status; got != before {
		t.Fatalf("stale result changed status to %q", got)
	}
}

func TestInitialQueryDispatchedOnStart(t *testing.T) {
	m, _ := setupModel(t)
	if m.Init() == nil {
		t.Fatal("Init should at least start the cursor blink")
	}

	m.initial = domain.LetterQuery{Letter: 'M'}
	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected a batched command with the initial dispatch")
	}
}

func TestResizeReadsCardsUnderSurfaceLock(t *testing.T) {
	m, _ := setupModel(t)
	m.box.Append(domain.Card{Name: "Paloma"})

	entered, release := make(chan struct{}), make(chan struct{})
	go m.surface.View(func() {
		close(entered)
		<-release
	})
	<-entered

	done := make(chan model, 1)
	go func() {
		next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		done <- next.(model)
	}()

	select {
	case <-done:
		t.Fatal("resize read the cards while a render held the surface")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case next := <-done:
		if !strings.Contains(next.results.View(), "Paloma") {
			t.Fatalf("results view missing card:\n%s", next.results.View())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("resize never finished")
	}
}
