package sdeprep

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yosssi/gohtml"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// renderer executes the embedded page templates. In dev reload mode the
// emitted HTML is run through gohtml so view-source stays readable.
type renderer struct {
	templates *template.Template
	logger    *zap.Logger
	format    bool
}

func newRenderer(logger *zap.Logger, format bool) (*renderer, error) {
	funcs := template.FuncMap{
		"lower": lowerDashed,
	}
	templates, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &renderer{templates: templates, logger: logger, format: format}, nil
}

func lowerDashed(value string) string {
	out := make([]rune, 0, len(value))
	for _, r := range value {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ' || r == '_':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// render writes the named template. Failures surface as a 500 since a broken
// template is a programming error, not user input.
func (renderer *renderer) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := renderer.templates.ExecuteTemplate(&buf, name, data); err != nil {
		renderer.logger.Error("rendering template", zap.String("template", name), zap.Error(err))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	body := buf.Bytes()
	if renderer.format {
		body = gohtml.FormatBytes(body)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
