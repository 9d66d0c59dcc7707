package webui

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed templates/style.css
var StyleCSS []byte

var ErrBadTemplate = errors.New("bad template file")

// Options are the display settings the pages need
type Options struct {
	SiteTitle           string
	ImageServiceURL     string
	DefaultPageSize     int
	DefaultLanguage     string
	NameCharacterBudget int
}

// WebUI renders the dashboard pages from a loaded dataset, it holds no state of its own
type WebUI struct {
	opts      Options
	templates *template.Template
	now       func() time.Time
}

func NewWebUI(opts Options) (*WebUI, error) {
	templates, err := template.New("").ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates - %w", err)
	}
	return &WebUI{
		opts:      opts,
		templates: templates,
		now:       time.Now,
	}, nil
}

// SetClock replaces the time source used for the home page release split
func (web *WebUI) SetClock(now func() time.Time) {
	web.now = now
}

func (web *WebUI) render(writer io.Writer, name string, data any) error {
	if err := web.templates.ExecuteTemplate(writer, name, data); err != nil {
		return fmt.Errorf("%w %s - %v", ErrBadTemplate, name, err)
	}
	return nil
}
