package view

import (
	"embed"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/samber/lo"

	"todo-list/internal/domain"
)

const (
	IndexTemplate = "index.html"
	ErrorTemplate = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates
type Renderer struct {
	templates  *template.Template
	timeFormat string
}

// IndexPage is the data passed to the index template
type IndexPage struct {
	Items []domain.Item
	Open  int
	Done  int
}

// ErrorPage is the data passed to the error template
type ErrorPage struct {
	Status  int
	Title   string
	Message string
}

// NewRenderer parses the embedded templates. timeFormat is a Go time layout
// used for created_at.
func NewRenderer(timeFormat string) (*Renderer, error) {
	r := &Renderer{timeFormat: timeFormat}

	tmpl, err := template.New("").
		Funcs(template.FuncMap{"formatTime": r.formatTime}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r.templates = tmpl
	return r, nil
}

// Templates returns the parsed set, e.g. for gin's SetHTMLTemplate
func (r *Renderer) Templates() *template.Template {
	return r.templates
}

// Render writes the named template with data to w
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func (r *Renderer) formatTime(t time.Time) string {
	return t.Local().Format(r.timeFormat)
}

// NewIndexPage builds the index data for items already in display order
func NewIndexPage(items []domain.Item) IndexPage {
	if items == nil {
		items = []domain.Item{}
	}
	done := lo.CountBy(items, func(item domain.Item) bool {
		return item.Done
	})
	return IndexPage{
		Items: items,
		Open:  len(items) - done,
		Done:  done,
	}
}

// NewErrorPage builds the error data for an HTTP status
func NewErrorPage(status int, message string) ErrorPage {
	return ErrorPage{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	}
}
