package text

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// ToHTML renders markdown into an HTML fragment. Inline HTML in the input
// is passed through.
func ToHTML(text string) string {
	if text == "" {
		return ""
	}

	var buf bytes.Buffer

	if err := markdown.Convert([]byte(text), &buf); err != nil {
		// writes to a bytes.Buffer cannot fail
		panic(err)
	}

	return buf.String()
}
