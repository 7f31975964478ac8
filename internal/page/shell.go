package page

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

var _ templ.Component = (*Shell)(nil)

// Shell is the page shell component.
type Shell struct {
	tmpl *template.Template
	data Data
}

// New parses the embedded template and fixes the displayed API URL.
func New(apiURL string) (*Shell, error) {
	tmpl, err := loadTemplate()
	if err != nil {
		return nil, err
	}
	return &Shell{
		tmpl: tmpl,
		data: Data{APIURL: apiURL, LogoSrc: LogoPath},
	}, nil
}

// Data returns the render model captured by New.
func (s *Shell) Data() Data { return s.data }

// Render writes the page to w. Output depends only on the captured Data.
func (s *Shell) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.tmpl.Execute(w, s.data)
}
