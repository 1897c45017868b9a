package mdrender

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Option configures a Renderer.
type Option func(*options)

type options struct {
	headingIDs  bool
	xhtml       bool
	typographer bool
}

// WithHeadingIDs gives every heading an id derived from its text.
func WithHeadingIDs() Option {
	return func(o *options) { o.headingIDs = true }
}

// WithXHTML emits self-closing void elements.
func WithXHTML() Option {
	return func(o *options) { o.xhtml = true }
}

// WithTypographer replaces straight quotes and dashes with typographic ones.
func WithTypographer() Option {
	return func(o *options) { o.typographer = true }
}

// Renderer converts GitHub Flavored Markdown to HTML. Raw HTML in the
// source is dropped. A Renderer is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	exts := []goldmark.Extender{extension.GFM}
	if o.typographer {
		exts = append(exts, extension.Typographer)
	}
	var parserOpts []parser.Option
	if o.headingIDs {
		parserOpts = append(parserOpts, parser.WithAutoHeadingID())
	}
	var rendererOpts []renderer.Option
	if o.xhtml {
		rendererOpts = append(rendererOpts, html.WithXHTML())
	}

	return &Renderer{md: goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)}
}

// Render writes the HTML for src to w.
func (r *Renderer) Render(w io.Writer, src []byte) error {
	if err := r.md.Convert(src, w); err != nil {
		return fmt.Errorf("mdrender: %w", err)
	}
	return nil
}

// ToHTML converts markdown to an HTML string.
func (r *Renderer) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, []byte(markdown)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var defaultRenderer = New()

// ToHTML converts markdown with the default renderer.
func ToHTML(markdown string) (string, error) {
	return defaultRenderer.ToHTML(markdown)
}
