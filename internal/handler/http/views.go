package http

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"maps"
	"net/http"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate = "templates/layout.html"

	pageHome     = "home"
	pageProducts = "products"
	pageLogin    = "login"
	pageError    = "error"
)

var pages = []string{pageHome, pageProducts, pageLogin, pageError}

// viewData is the root value of every template: the request locals and the
// page specific data.
type viewData struct {
	Locals map[string]any
	Page   any
}

// errorPage is rendered by the classifier for failed web requests.
type errorPage struct {
	Status    int
	Message   string
	RequestID string
	Fields    any
	Detail    string
}

type views struct {
	pages map[string]*template.Template
}

func newViews() (*views, error) {
	v := &views{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New("layout.html").
			Funcs(templateFuncs()).
			ParseFS(templateFS, layoutTemplate, "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", page, err)
		}
		v.pages[page] = tmpl
	}
	return v, nil
}

var vndPrinter = message.NewPrinter(language.Vietnamese)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"json": func(v any) (template.JS, error) {
			data, err := json.Marshal(v)
			return template.JS(data), err
		},
		"money": func(v float64) string {
			return vndPrinter.Sprintf("%v ₫", number.Decimal(v, number.MaxFractionDigits(0)))
		},
		"datetime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Local().Format("02/01/2006 15:04")
		},
	}
}

// render executes page into a buffer and writes it with status. A template
// failure is answered with a bare 500 and never goes back to the classifier.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	log := logger.FromRequest(r)

	tmpl, ok := h.views.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locals := map[string]any{"appName": h.options.AppName, "year": time.Now().Year()}
	if rc, ok := utils.GetRequestContext(r.Context()); ok {
		maps.Copy(locals, rc.Locals)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, viewData{Locals: locals, Page: data}); err != nil {
		log.Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Msg("error writing page")
	}
}
