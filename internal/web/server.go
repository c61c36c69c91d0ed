// Package web serves the cocktail finder as server-rendered HTML. Each
// request runs its own dispatch onto its own container, so requests share
// no state.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/engine"
	"github.com/hammamikhairi/cocktailbox/internal/keywords"
	"github.com/hammamikhairi/cocktailbox/internal/logger"
	"github.com/hammamikhairi/cocktailbox/internal/query"
	"github.com/hammamikhairi/cocktailbox/internal/render"
)

// Server renders the search page.
type Server struct {
	engine  *engine.Engine
	options []keywords.Option
	letters []string
	log     *logger.Logger
}

// NewServer creates a web front end over eng.
func NewServer(eng *engine.Engine, options []keywords.Option, log *logger.Logger) *Server {
	letters := make([]string, 0, len(domain.Letters))
	for _, r := range domain.Letters {
		letters = append(letters, string(r))
	}
	return &Server{
		engine:  eng,
		options: options,
		letters: letters,
		log:     log.Named("web"),
	}
}

type pageData struct {
	Search   string
	Selected string
	Options  []keywords.Option
	Letters  []string
	Notice   string
	Results  template.HTML
}

// Handler returns the HTTP handler for the site.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/", s.handleIndex)

	return withCommonHeaders(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	params := r.URL.Query()
	data := pageData{
		Options: s.options,
		Letters: s.letters,
	}
	status := http.StatusOK

	if isTriggered(params) {
		q, err := controlQuery(params)
		if err != nil {
			s.log.Debug("bad letter %q: %v", params.Get("f"), err)
			data.Notice = fmt.Sprintf("%q is not on the letter bar.", params.Get("f"))
			s.writePage(w, http.StatusBadRequest, data)
			return
		}
		if tq, ok := q.(domain.TextQuery); ok {
			data.Search = tq.Text
			data.Selected = tq.Text
		}

		box := render.NewHTMLBox()
		res, err := s.engine.Run(r.Context(), q, engine.NewSurface(box))
		switch {
		case err != nil:
			status = http.StatusBadGateway
			data.Notice = "Request failed, please try again."
		case res.Count == 0:
			data.Notice = "No cocktails found."
		}

		if err == nil {
			html, err := box.HTML()
			if err != nil {
				s.log.Error("render %s: %v", q, err)
				http.Error(w, "template error", http.StatusInternalServerError)
				return
			}
			data.Results = html
		}
	}

	s.writePage(w, status, data)
}

func (s *Server) writePage(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		s.log.Error("index template: %v", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Warn("error writing response: %v", err)
	}
}

// controlQuery maps the request parameters to a query. A letter typed into
// the URL by hand is accepted in either case; anything off the letter bar is
// an error rather than a random drink.
func controlQuery(params url.Values) (domain.Query, error) {
	if params.Get("s") == "" && params.Has("f") {
		lq, err := query.ParseLetter(params.Get("f"))
		if err != nil {
			return nil, err
		}
		return lq, nil
	}
	return query.FromControl(query.Control{Value: params.Get("s"), ID: params.Get("f")}), nil
}

// isTriggered reports whether the request came from one of the controls
// rather than a plain page load.
func isTriggered(params url.Values) bool {
	return params.Has("s") || params.Has("f") || params.Has("random")
}

func withCommonHeaders(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		h.ServeHTTP(w, r)
	})
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
