// Package markdown renders the data-model markdown documents to HTML.
package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}

// Render converts markdown source to HTML and returns the document's
// front-matter metadata, if any.
func Render(source []byte) ([]byte, map[string]interface{}, error) {
	md := New()

	var buf bytes.Buffer

	ctx := parser.NewContext()

	if err := md.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return buf.Bytes(), meta.Get(ctx), nil
}
