package cocktaildb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(logger.New(logger.LevelOff, nil),
		WithBaseURL(srv.URL+"/api/json/v1/1"),
		WithTimeout(2*time.Second),
	)
}

func jsonHandler(t *testing.T, wantPath, wantQuery, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != wantPath {
			t.Errorf("path = %s, want %s", r.URL.Path, wantPath)
		}
		if r.URL.RawQuery != wantQuery {
			t.Errorf("query = %q, want %q", r.URL.RawQuery, wantQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestSearchByName(t *testing.T) {
	body, err := os.ReadFile("testdata/margarita.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	client := newTestClient(t, jsonHandler(t, "/api/json/v1/1/search.php", "s=margarita", string(body)))

	drinks, err := client.Search(context.Background(), domain.TextQuery{Text: "margarita"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(drinks) != 1 {
		t.Fatalf("expected 1 drink, got %d", len(drinks))
	}

	d := drinks[0]
	if d.Name != "Margarita" || d.ID != "11007" || d.Glass != "Cocktail glass" {
		t.Fatalf("unexpected drink header: %+v", d)
	}
	if d.Thumb != "https://www.thecocktaildb.com/images/media/drink/5noda61589575158.jpg" {
		t.Fatalf("thumb = %q", d.Thumb)
	}

	wantSlots := []domain.Slot{
		{Ingredient: "Tequila", Measure: "1 1/2 oz "},
		{Ingredient: "Triple sec", Measure: "1/2 oz "},
		{Ingredient: "Lime juice", Measure: "1 oz "},
	}
	for i, want := range wantSlots {
		if d.Slots[i] != want {
			t.Fatalf("slot %d = %+v, want %+v", i+1, d.Slots[i], want)
		}
	}
	for i := len(wantSlots); i < domain.SlotCount; i++ {
		if d.Slots[i] != (domain.Slot{}) {
			t.Fatalf("slot %d should be empty, got %+v", i+1, d.Slots[i])
		}
	}
}

func TestSearchRoutes(t *testing.T) {
	tests := []struct {
		name      string
		query     domain.Query
		wantPath  string
		wantQuery string
	}{
		{"letter", domain.LetterQuery{Letter: 'A'}, "/api/json/v1/1/search.php", "f=A"},
		{"random", domain.RandomQuery{}, "/api/json/v1/1/random.php", ""},
		{"text with space", domain.TextQuery{Text: "long island"}, "/api/json/v1/1/search.php", "s=long+island"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, jsonHandler(t, tt.wantPath, tt.wantQuery, `{"drinks":[{"strDrink":"X"}]}`))
			drinks, err := client.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(drinks) != 1 || drinks[0].Name != "X" {
				t.Fatalf("unexpected drinks: %+v", drinks)
			}
		})
	}
}

func TestSearchEmptyResults(t *testing.T) {
	bodies := map[string]string{
		"null drinks":    `{"drinks": null}`,
		"missing key":    `{}`,
		"empty array":    `{"drinks": []}`,
		"no data string": `{"drinks": "no data found"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			drinks, err := client.Search(context.Background(), domain.TextQuery{Text: "zzzz"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if drinks == nil || len(drinks) != 0 {
				t.Fatalf("expected empty non-nil slice, got %#v", drinks)
			}
		})
	}
}

func TestSearchMissingFieldsTolerated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"drinks":[{"strDrink":"Bare"}, null]}`))
	})
	drinks, err := client.Search(context.Background(), domain.RandomQuery{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(drinks) != 1 {
		t.Fatalf("expected 1 drink, got %d", len(drinks))
	}
	if drinks[0].Instructions != "" || drinks[0].Thumb != "" {
		t.Fatalf("missing fields should decode empty: %+v", drinks[0])
	}
}

func TestSearchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream down", http.StatusBadGateway)
			},
			wantErr: domain.ErrBadStatus,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantErr: domain.ErrBadStatus,
		},
		{
			name: "html body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			},
			wantErr: domain.ErrDecode,
		},
		{
			name: "truncated json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"drinks":[{"strDrink":"Mojito"`))
			},
			wantErr: domain.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			drinks, err := client.Search(context.Background(), domain.TextQuery{Text: "mojito"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if drinks != nil {
				t.Fatalf("expected nil drinks on failure, got %+v", drinks)
			}
		})
	}
}

func TestSearchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(logger.New(logger.LevelOff, nil), WithBaseURL(url))
	if _, err := client.Search(context.Background(), domain.RandomQuery{}); err == nil {
		t.Fatal("expected transport error from closed server")
	}
}

func TestSearchHonoursContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Search(ctx, domain.RandomQuery{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSearchSendsUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "cocktailbox-test" {
			t.Errorf("User-Agent = %q", got)
		}
		_, _ = w.Write([]byte(`{"drinks":null}`))
	}))
	defer srv.Close()

	client := NewClient(logger.New(logger.LevelOff, nil), WithBaseURL(srv.URL), WithUserAgent("cocktailbox-test"))
	if _, err := client.Search(context.Background(), domain.RandomQuery{}); err != nil {
		t.Fatalf("Search: %v", err)
	}
}
