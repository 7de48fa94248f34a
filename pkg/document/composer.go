package document

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const (
	DefaultAttribution = "Document generated using AWS Bedrock Service"

	timestampLayout = "01-02-2006 15:04:05"
)

// Spec is the content of a document: a plain-text title and an HTML body
// fragment.
type Spec struct {
	Title string
	Body  string
}

type Composer struct {
	attribution string

	now func() time.Time
}

type Option func(*Composer)

func WithAttribution(attribution string) Option {
	return func(c *Composer) {
		c.attribution = attribution
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

func NewComposer(options ...Option) *Composer {
	c := &Composer{
		attribution: DefaultAttribution,

		now: time.Now,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Compose wraps title and body into a standalone paginated HTML document. The
// running header carries the time of composition.
func (c *Composer) Compose(spec Spec) (string, error) {
	data := struct {
		Style template.CSS

		Title string
		Body  template.HTML
	}{
		Style: template.CSS(stylesheet(c.now(), c.attribution)),

		Title: spec.Title,
		Body:  template.HTML(spec.Body),
	}

	var buf bytes.Buffer

	if err := page.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func stylesheet(at time.Time, attribution string) string {
	return fmt.Sprintf(css, cssString(at.Format(timestampLayout)), cssString(attribution))
}

// cssString quotes s as a CSS string literal.
func cssString(s string) string {
	var buf bytes.Buffer

	buf.WriteByte('\'')

	for _, r := range s {
		switch {
		case r == '\'' || r == '\\':
			buf.WriteByte('\\')
			buf.WriteRune(r)

		case r < 0x20 || r == '<' || r == '>':
			fmt.Fprintf(&buf, "\\%x ", r)

		default:
			buf.WriteRune(r)
		}
	}

	buf.WriteByte('\'')

	return buf.String()
}
