// Package view renders the storefront HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutName   = "layout.html"
	layoutFile   = "templates/" + layoutName
	partialsFile = "templates/partials.html"
	pagesGlob    = "templates/pages/*.html"
)

// Page is the model every template receives.
type Page struct {
	Title    string
	Identity *deliverycontext.Identity
	Path     string
	Data     any
	Form     map[string]string
	Errors   *domainerrors.ValidationError
}

// Value returns the submitted value of a form field.
func (p *Page) Value(field string) string {
	return p.Form[field]
}

// FieldError returns the first message for a form field.
func (p *Page) FieldError(field string) string {
	if p.Errors == nil {
		return ""
	}

	return p.Errors.Field(field)
}

// FormErrors returns form-wide messages.
func (p *Page) FormErrors() []string {
	if p.Errors == nil {
		return nil
	}

	return p.Errors.Fields()[""]
}

// ErrorPage is the model of the error template.
type ErrorPage struct {
	Status  int
	Message string
}

// Renderer implements echo.Renderer with one template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout and all pages once.
func NewRenderer() (*Renderer, error) {
	layout, err := template.New(layoutName).Funcs(funcMap()).ParseFS(templateFS, layoutFile, partialsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse layout")
	}

	files, err := fs.Glob(templateFS, pagesGlob)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pages")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		page, err := layout.Clone()
		if err != nil {
			return nil, errors.Wrap(err, "failed to clone layout")
		}
		if _, err := page.ParseFS(templateFS, file); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", file)
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	page, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	return page.ExecuteTemplate(w, layoutName, data)
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]

	return ok
}

var orderStatusLabels = map[entity.OrderStatus]string{
	entity.OrderStatusPending:    "Ожидает обработки",
	entity.OrderStatusProcessing: "В обработке",
	entity.OrderStatusShipped:    "Отправлен",
	entity.OrderStatusDelivered:  "Доставлен",
	entity.OrderStatusCancelled:  "Отменён",
}

// StatusLabel is the customer-facing name of an order status.
func StatusLabel(status entity.OrderStatus) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}

	return string(status)
}

// Money formats an amount with two decimals and the ruble sign.
func Money(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " ₽"
}

// field is the argument of the "field" partial.
type field struct {
	Page  *Page
	Name  string
	Label string
	Type  string
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"money":       Money,
		"statusLabel": StatusLabel,
		"media": func(key string) string {
			if key == "" {
				return ""
			}

			return "/media/" + key
		},
		"date": func(t time.Time) string {
			return t.Local().Format("02.01.2006 15:04")
		},
		"idString": func(v uint) string {
			return fmt.Sprint(v)
		},
		"fieldArgs": func(page *Page, name, label, inputType string) field {
			return field{Page: page, Name: name, Label: label, Type: inputType}
		},
	}
}
