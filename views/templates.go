package views

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names accepted by Render and by gin's HTML renderer.
const (
	PageList    = "list.html"
	PageDetail  = "detail.html"
	PageBooking = "booking.html"
	PageError   = "error.html"
)

// Templates parses every embedded page and partial.
func Templates() (*template.Template, error) {
	return template.New("pages").ParseFS(templateFS, "templates/*.html")
}

// ListPage is the data of "/".
type ListPage struct {
	Title  string
	Notice string
	List   ListViewData
}

// DetailPage is the data of "/properties/:id".
type DetailPage struct {
	Title    string
	Property DetailData
	Reviews  ReviewSectionData
}

// BookingPage is the data of "/booking".
type BookingPage struct {
	Title string
	Form  BookingFormData
}

// ErrorPage is the data of full-page failures such as an unknown property.
type ErrorPage struct {
	Title   string
	Message string
	Retry   string
}

// Render executes one page template into w.
func Render(t *template.Template, w io.Writer, page string, data interface{}) error {
	return t.ExecuteTemplate(w, page, data)
}
