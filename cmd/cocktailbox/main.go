// cocktailbox: search TheCocktailDB by name, keyword, first letter or at
// random, and show the matches as drink cards.
//
// Usage:
//
//	cocktailbox [-verbose] [-quiet]                  interactive terminal UI
//	cocktailbox -search margarita [-html out.html]   one-shot query
//	cocktailbox -letter a -export drinks.xlsx
//	cocktailbox -serve [-addr :8080]                 web front end
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/cocktailbox/internal/cocktaildb"
	"github.com/hammamikhairi/cocktailbox/internal/config"
	"github.com/hammamikhairi/cocktailbox/internal/display"
	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/engine"
	"github.com/hammamikhairi/cocktailbox/internal/export"
	"github.com/hammamikhairi/cocktailbox/internal/keywords"
	"github.com/hammamikhairi/cocktailbox/internal/logger"
	"github.com/hammamikhairi/cocktailbox/internal/query"
	"github.com/hammamikhairi/cocktailbox/internal/render"
	"github.com/hammamikhairi/cocktailbox/internal/web"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	baseURL := flag.String("base-url", cfg.BaseURL, "cocktail API root")
	timeout := flag.Duration("timeout", cfg.Timeout, "per-request timeout")
	serve := flag.Bool("serve", false, "run the web front end instead of the terminal UI")
	addr := flag.String("addr", cfg.Addr, "listen address for -serve")
	search := flag.String("search", "", "search cocktails by name")
	keyword := flag.String("keyword", "", "search by a keyword such as an ingredient")
	letter := flag.String("letter", "", "list cocktails starting with this letter")
	random := flag.Bool("random", false, "fetch one random cocktail")
	htmlOut := flag.String("html", "", "also write the cards as an HTML fragment to this file")
	exportOut := flag.String("export", "", "also write the cards to a .xlsx or .csv file")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Logs go to a file by default so the terminal UI stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		f, err := openLogFile(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (falling back to stderr)\n", err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logger.ParseLevel(*verbose, *quiet), logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := cocktaildb.NewClient(log,
		cocktaildb.WithBaseURL(*baseURL),
		cocktaildb.WithTimeout(*timeout),
		cocktaildb.WithUserAgent(cfg.UserAgent),
	)
	eng := engine.New(client, log)
	options := keywords.Options()

	q, err := queryFromFlags(set, *search, *keyword, *letter, *random)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case *serve:
		if err := web.NewServer(eng, options, log).ListenAndServe(ctx, *addr); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	case q != nil:
		if err := runOnce(ctx, eng, q, *htmlOut, *exportOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

	default:
		if *htmlOut != "" || *exportOut != "" {
			fmt.Fprintln(os.Stderr, "error: -html and -export need a query (-search, -keyword, -letter or -random)")
			os.Exit(2)
		}
		box := display.NewTerminalBox()
		surface := engine.NewSurface(box)
		dispatch := func(ctx context.Context, q domain.Query) (engine.Result, error) {
			return eng.Run(ctx, q, surface)
		}
		if err := display.NewUI(box, surface, dispatch, options, log).Run(ctx, nil); err != nil {
			os.Exit(1)
		}
	}
}

// openLogFile opens path for appending, creating its directory first.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	return f, nil
}

// queryFromFlags picks the query named on the command line, or nil when
// none was given. At most one query flag may be set.
func queryFromFlags(set map[string]bool, search, keyword, letter string, random bool) (domain.Query, error) {
	var picked []domain.Query

	if set["search"] {
		picked = append(picked, domain.TextQuery{Text: search})
	}
	if set["keyword"] {
		picked = append(picked, domain.TextQuery{Text: strings.ToLower(strings.TrimSpace(keyword))})
	}
	if set["letter"] {
		q, err := query.ParseLetter(letter)
		if err != nil {
			return nil, fmt.Errorf("-letter: %w", err)
		}
		picked = append(picked, q)
	}
	if random {
		picked = append(picked, domain.RandomQuery{})
	}

	switch len(picked) {
	case 0:
		return nil, nil
	case 1:
		return picked[0], nil
	default:
		return nil, errors.New("use only one of -search, -keyword, -letter, -random")
	}
}

// runOnce dispatches q a single time, prints the cards and writes any
// requested side outputs.
func runOnce(ctx context.Context, eng *engine.Engine, q domain.Query, htmlOut, exportOut string) error {
	term := display.NewTerminalBox()
	targets := render.Multi{term}

	var htmlBox *render.HTMLBox
	if htmlOut != "" {
		htmlBox = render.NewHTMLBox()
		targets = append(targets, htmlBox)
	}
	var sheet *export.Sheet
	if exportOut != "" {
		sheet = export.NewSheet()
		targets = append(targets, sheet)
	}

	res, err := eng.Run(ctx, q, engine.NewSurface(targets))
	if err != nil {
		return err
	}

	width := display.TermWidth()
	if display.IsTerminal() {
		fmt.Print(display.RenderBanner(width, "TheCocktailDB from the terminal"))
		fmt.Println()
	}
	fmt.Println(term.View(width))
	fmt.Println(display.BannerStyle.Render(fmt.Sprintf("  %d cocktail(s) for %s", res.Count, q)))

	if htmlBox != nil {
		if err := writeHTML(htmlOut, htmlBox); err != nil {
			return err
		}
	}
	if sheet != nil {
		if err := sheet.Save(exportOut); err != nil {
			return err
		}
	}
	return nil
}

func writeHTML(path string, box *render.HTMLBox) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := box.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
