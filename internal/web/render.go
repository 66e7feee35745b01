package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data behind the prediction page. The body carries nothing
// request-specific beyond these fields, so equal inputs render equal bytes.
type Page struct {
	HasResult  bool
	Prediction string
	Label      string
	Error      string
}

// ErrorPage is the one failure page every processing error collapses into.
var ErrorPage = Page{Error: "File cannot be processed."}

// ResultPage builds the success page for a predicted class index. Formatting
// goes through a single strconv call so every integer width renders the same.
func ResultPage(value int64, label string) Page {
	return Page{
		HasResult:  true,
		Prediction: strconv.FormatInt(value, 10),
		Label:      label,
	}
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) RenderPrediction(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, "prediction.html", page)
}
