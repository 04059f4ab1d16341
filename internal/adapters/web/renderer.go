package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

//go:embed templates
var templatesFS embed.FS

const DefaultAvatar = "https://i.ibb.co/T41PS9v/avatar-default.png"

// Renderer executes the embedded page templates and minifies the output.
type Renderer struct {
	pages    map[string]*template.Template
	minifier *minify.M
}

var templateFuncs = template.FuncMap{
	"price":   browse.FormatPriceLabel,
	"excerpt": func(s string) string { return browse.Truncate(s, browse.ExcerptLength) },
	"avatar": func(photo string) string {
		if photo == "" {
			return DefaultAvatar
		}
		return photo
	},
	"stars": func(rating int) string {
		if rating < domain.MinRating {
			rating = 0
		}
		if rating > domain.MaxRating {
			rating = domain.MaxRating
		}
		return strings.Repeat("★", rating) + strings.Repeat("☆", domain.MaxRating-rating)
	},
	"formatPrice": domain.FormatPrice,
	"derefPrice": func(p *float64) string {
		if p == nil {
			return ""
		}
		return domain.FormatPrice(*p)
	},
	"queryEscape": url.QueryEscape,
	"ratings":     func() []int { return []int{5, 4, 3, 2, 1} },
}

// NewRenderer parses layout.html together with every page template.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template)

	entries, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	for _, page := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(page, "templates/pages/"), ".html")
		tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html", page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		pages[name] = tmpl
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.Add("text/html", &html.Minifier{KeepDocumentTags: true, KeepEndTags: true, KeepQuotes: true})

	return &Renderer{pages: pages, minifier: m}, nil
}

// View is the data every page template receives.
type View struct {
	Ctx  PageContext
	Data interface{}
}

// Render writes the named page with status code.
func (rn *Renderer) Render(w http.ResponseWriter, logger port.LoggerPort, status int, page string, pc PageContext, data interface{}) {
	tmpl, ok := rn.pages[page]
	if !ok {
		logger.Error("Unknown page template", fmt.Errorf("template %q not registered", page), nil)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var raw bytes.Buffer
	if err := tmpl.ExecuteTemplate(&raw, "layout.html", View{Ctx: pc, Data: data}); err != nil {
		logger.Error("Failed to execute template", err, port.Fields{"page": page})
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	body := raw.Bytes()
	var out bytes.Buffer
	if err := rn.minifier.Minify("text/html", &out, bytes.NewReader(body)); err != nil {
		logger.Warn("Minification failed, sending raw HTML", port.Fields{"page": page, "error": err.Error()})
	} else {
		body = out.Bytes()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
