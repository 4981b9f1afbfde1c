// Package content loads blog posts and standalone pages from flat
// directories of markdown files with frontmatter.
package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

const (
	excerptLength  = 150
	excerptSuffix  = "..."
	wordsPerMinute = 200
)

// Post is a blog post derived from one markdown file. Slug always comes from
// the filename.
type Post struct {
	Slug        string
	Title       string
	Date        string
	Time        time.Time
	Authors     []string
	Tags        []string
	Description string
	Draft       bool
	Excerpt     string
	ReadTime    string
	Content     string
	Meta        map[string]any
}

// Link returns the canonical site path of the post.
func (p Post) Link() string {
	return "/blog/" + p.Slug + "/"
}

// Author joins the post authors for display.
func (p Post) Author() string {
	return strings.Join(p.Authors, ", ")
}

// ListOptions controls what ListPosts returns.
type ListOptions struct {
	// IncludeContent keeps the markdown body on each post. Excerpt and read
	// time are computed either way.
	IncludeContent bool
	// IncludeDrafts keeps draft posts. Public listings leave this false.
	IncludeDrafts bool
}

// PostSource is what the site needs from a post store.
type PostSource interface {
	ListPosts(opts ListOptions) []Post
	GetPost(slug string) (Post, bool)
}

// excerptParser only parses; nothing is rendered to HTML.
var excerptParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// Excerpt returns the first 150 characters of the body's rendered text with
// a literal "..." appended. An empty body has no excerpt.
func Excerpt(body string) string {
	plain := renderedText([]byte(body))
	if plain == "" {
		return ""
	}
	runes := []rune(plain)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}
	return string(runes) + excerptSuffix
}

// renderedText returns the text a reader sees once the markdown is rendered,
// with every whitespace run collapsed to one space. Raw HTML is dropped, as
// the renderer omits it.
func renderedText(source []byte) string {
	doc := excerptParser.Parse(text.NewReader(source))
	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			b.WriteByte(' ')
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.Write(seg.Value(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

// ReadTime estimates reading time at 200 words per minute, rounded up, with
// a one minute floor.
func ReadTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}

// buildPost fills a Post from parsed frontmatter. It never fails; validate
// decides whether the result may be listed.
func buildPost(slug string, meta map[string]any, body string) Post {
	p := Post{
		Slug:        slug,
		Title:       stringValue(meta["title"]),
		Date:        stringValue(meta["date"]),
		Authors:     stringList(meta["author"]),
		Tags:        stringList(meta["tags"]),
		Description: stringValue(meta["description"]),
		Excerpt:     Excerpt(body),
		ReadTime:    ReadTime(body),
		Content:     body,
		Meta:        meta,
	}
	if draft, ok := meta["draft"].(bool); ok {
		p.Draft = draft
	}
	if t, err := parseDate(meta["date"]); err == nil {
		p.Time = t
	}
	return p
}

// validate reports why a post cannot appear in a listing.
func validate(path string, meta map[string]any) error {
	if stringValue(meta["title"]) == "" {
		return &ValidationError{Path: path, Field: "title", Reason: "is missing"}
	}
	if stringValue(meta["date"]) == "" {
		return &ValidationError{Path: path, Field: "date", Reason: "is missing"}
	}
	if _, err := parseDate(meta["date"]); err != nil {
		return &ValidationError{Path: path, Field: "date", Reason: "is not a valid date", Err: err}
	}
	return nil
}
