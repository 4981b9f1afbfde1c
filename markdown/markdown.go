// Package markdown renders post bodies to HTML with goldmark and exposes the
// result as templ components.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	fences "github.com/stefanfritsch/goldmark-fences"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultCodeStyle is the chroma style used when none is configured.
const DefaultCodeStyle = "onedark"

const anchorClass = "anchor-link"

// Heading is an entry of a table of contents.
type Heading struct {
	ID    string
	Title string
	Level int
}

type options struct {
	codeStyle string
	hardWraps bool
	unsafe    bool
}

// Option configures a Renderer.
type Option func(*options)

// WithCodeStyle sets the chroma style for fenced code blocks.
func WithCodeStyle(style string) Option {
	return func(o *options) {
		if style != "" {
			o.codeStyle = style
		}
	}
}

// WithHardWraps renders newlines inside paragraphs as <br>.
func WithHardWraps() Option {
	return func(o *options) { o.hardWraps = true }
}

// WithUnsafeHTML passes raw HTML in the source through to the output.
func WithUnsafeHTML() Option {
	return func(o *options) { o.unsafe = true }
}

// Renderer converts markdown to HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a Renderer.
func New(opts ...Option) *Renderer {
	o := options{codeStyle: DefaultCodeStyle}
	for _, opt := range opts {
		opt(&o)
	}

	var rendererOpts []renderer.Option
	if o.hardWraps {
		rendererOpts = append(rendererOpts, goldmarkhtml.WithHardWraps())
	}
	if o.unsafe {
		rendererOpts = append(rendererOpts, goldmarkhtml.WithUnsafe())
	}

	return &Renderer{md: goldmark.New(
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
			parser.WithASTTransformers(util.Prioritized(anchorTransformer{}, 100)),
		),
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(o.codeStyle),
				highlighting.WithFormatOptions(chromahtml.TabWidth(2)),
			),
			&fences.Extender{},
		),
		goldmark.WithRendererOptions(rendererOpts...),
	)}
}

// Default is the renderer used by the package level helpers.
var Default = New()

// Render writes the HTML for src to w.
func (r *Renderer) Render(w io.Writer, src []byte) error {
	if err := r.md.Convert(src, w); err != nil {
		return fmt.Errorf("markdown: %w", err)
	}
	return nil
}

// HTML renders src for use in html/template.
func (r *Renderer) HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, []byte(src)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Component returns a templ.Component that renders src as HTML.
func (r *Renderer) Component(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.Render(w, []byte(src))
	})
}

// Headings lists the level 2 and 3 headings of src in document order. IDs
// match the ones in the rendered output.
func (r *Renderer) Headings(src string) []Heading {
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))

	var headings []Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level == 2 || h.Level == 3 {
			headings = append(headings, Heading{
				ID:    headingID(h),
				Title: strings.TrimSpace(plainText(h, source)),
				Level: h.Level,
			})
		}
		return ast.WalkSkipChildren, nil
	})
	return headings
}

// Markdown returns a templ.Component that renders content with the default
// renderer.
func Markdown(content string) templ.Component {
	return Default.Component(content)
}

// anchorTransformer appends a "#" self link to every heading with an id.
type anchorTransformer struct{}

var _ parser.ASTTransformer = anchorTransformer{}

func (anchorTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	var headings []*ast.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			headings = append(headings, h)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	for _, h := range headings {
		id := headingID(h)
		if id == "" {
			continue
		}
		link := ast.NewLink()
		link.Destination = []byte("#" + id)
		link.SetAttributeString("class", []byte(anchorClass))
		link.SetAttributeString("tabindex", []byte("-1"))
		link.AppendChild(link, ast.NewString([]byte("#")))
		h.AppendChild(h, ast.NewString([]byte(" ")))
		h.AppendChild(h, link)
	}
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

func isAnchor(n ast.Node) bool {
	if n.Kind() != ast.KindLink {
		return false
	}
	v, ok := n.AttributeString("class")
	if !ok {
		return false
	}
	b, ok := v.([]byte)
	return ok && string(b) == anchorClass
}

// plainText collects the text of n's descendants, skipping anchor links.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if isAnchor(c) {
			return ast.WalkSkipChildren, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
