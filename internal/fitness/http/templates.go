package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"ago": humanize.Time,
	"kcal": func(v float64) string {
		return humanize.CommafWithDigits(v, 1)
	},
	"grams": func(v float64) string {
		return humanize.FtoaWithDigits(v, 1) + " g"
	},
	"clock": func(t time.Time) string {
		return t.UTC().Format("15:04")
	},
	"fixed2": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}

// pages are parsed once at init; each page is the shared layout plus its own
// "content" block.
var pages = mustParsePages("login", "signup", "dashboard", "admin", "error")

func mustParsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(
			template.New("layout.html").Funcs(templateFuncs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"),
		)
	}
	return out
}

// render executes a page into a buffer first so a template failure can still
// produce a clean 500.
func render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := pages[page].Execute(&buf, data); err != nil {
		slogx.FromContext(r.Context()).Error("render page", "page", page, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorView struct {
	Title   string
	Status  int
	Message string
}

func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render(w, r, status, "error", errorView{
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
	})
}
