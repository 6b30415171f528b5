package mail

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"

	"accounts/internal/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	subjectConfirmation  = "Verify Email"
	subjectPasswordReset = "Forgot Password Email"

	kindConfirmation  = "confirmation"
	kindPasswordReset = "reset"
)

// message is a rendered email ready for a transport.
type message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type templateData struct {
	Name string
	Link string
}

type renderer struct {
	text *texttemplate.Template
	html *htmltemplate.Template
}

func newRenderer() (*renderer, error) {
	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse text mail templates")
	}

	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html mail templates")
	}

	return &renderer{text: text, html: html}, nil
}

func (r *renderer) render(kind, to, subject string, data templateData) (*message, error) {
	var text, html bytes.Buffer

	if err := r.text.ExecuteTemplate(&text, kind+".txt.tmpl", data); err != nil {
		return nil, errors.Wrapf(err, "failed to render %s text body", kind)
	}
	if err := r.html.ExecuteTemplate(&html, kind+".html.tmpl", data); err != nil {
		return nil, errors.Wrapf(err, "failed to render %s html body", kind)
	}

	return &message{
		To:      to,
		Subject: subject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
