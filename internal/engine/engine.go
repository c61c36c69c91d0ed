// Package engine runs the query → fetch → render pipeline shared by every
// front end.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/logger"
	"github.com/hammamikhairi/cocktailbox/internal/render"
)

// Surface wraps one output container. Every dispatch onto a surface takes a
// generation number; only the newest dispatch may render, so a slow
// response can never overwrite a faster, newer one.
type Surface struct {
	mu  sync.Mutex
	box domain.Container
	gen uint64
}

// NewSurface wraps box.
func NewSurface(box domain.Container) *Surface {
	return &Surface{box: box}
}

func (s *Surface) next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// View runs fn while holding the surface lock, so fn never sees a render
// half done.
func (s *Surface) View(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// Result summarises a completed dispatch.
type Result struct {
	Query   domain.Query
	Count   int
	Elapsed time.Duration
}

// Option configures the engine.
type Option func(*Engine)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine dispatches queries. It depends only on interfaces and is fully
// testable with fakes.
type Engine struct {
	source domain.DrinkSource
	log    *logger.Logger
	now    func() time.Time
}

// New creates an engine over the given drink source.
func New(source domain.DrinkSource, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		log:    log.Named("engine"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run resolves q and renders the result onto s. On a fetch failure the
// surface keeps its previous cards and the error is returned. If a newer
// dispatch was issued on s while this one was in flight, nothing is
// rendered and domain.ErrStale is returned, whether the fetch succeeded
// or not.
func (e *Engine) Run(ctx context.Context, q domain.Query, s *Surface) (Result, error) {
	gen := s.next()
	start := e.now()
	e.log.Debug("dispatch #%d: %s", gen, q)

	drinks, err := e.source.Search(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if gen != s.gen {
			e.log.Debug("dispatch #%d (%s) superseded by #%d, dropping error: %v", gen, q, s.gen, err)
			return Result{Query: q}, domain.ErrStale
		}
		e.log.Error("dispatch #%d (%s) failed: %v", gen, q, err)
		return Result{Query: q}, fmt.Errorf("fetching %s: %w", q, err)
	}

	if gen != s.gen {
		e.log.Debug("dispatch #%d (%s) superseded by #%d, dropping %d drinks", gen, q, s.gen, len(drinks))
		return Result{Query: q}, domain.ErrStale
	}

	render.Render(s.box, drinks)

	res := Result{Query: q, Count: len(drinks), Elapsed: e.now().Sub(start)}
	e.log.Info("%s: rendered %d cards", q, res.Count)
	return res, nil
}

// IsStale reports whether err means the dispatch was superseded.
func IsStale(err error) bool {
	return errors.Is(err, domain.ErrStale)
}
