package content

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExcerpt(t *testing.T) {
	long := "This is the beginning. "
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t ", ""},
		{"short", "hello", "hello..."},
		{"trimmed before cut", "\n\n  hello world  \n", "hello world..."},
		{"exactly 150", strings.Repeat("a", 150), strings.Repeat("a", 150) + "..."},
		{"long", strings.Repeat(long, 20) + "This is the end.", (strings.Repeat(long, 7))[:150] + "..."},
		{"multibyte", strings.Repeat("é", 200), strings.Repeat("é", 150) + "..."},
		{"intraword underscores", "use snake_case_names here", "use snake_case_names here..."},
		{"spaced asterisks", "2 * 3 * 4 = 24", "2 * 3 * 4 = 24..."},
		{"fenced code", "a\n\n```go\nfmt.Println()\n```\n", "a fmt.Println()..."},
		{"emphasis and links", "Some **bold** and _italic_ text with [a link](https://example.com).", "Some bold and italic text with a link...."},
		{"heading and paragraph", "## Intro\n\nFirst line\nsecond line.", "Intro First line second line...."},
		{"inline code", "Call `fmt.Println` now.", "Call fmt.Println now...."},
		{"raw html dropped", "<div class=\"note\">hidden</div>\n\nshown", "shown..."},
		{"autolink", "See <https://example.com>.", "See https://example.com...."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Excerpt(tt.body)
			if got != tt.want {
				t.Errorf("Excerpt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExcerptLength(t *testing.T) {
	for _, n := range []int{1, 10, 149, 150, 151, 400} {
		body := strings.Repeat("x", n)
		got := len([]rune(Excerpt(body)))
		want := min(150, n) + 3
		if got != want {
			t.Errorf("len(Excerpt(%d chars)) = %d, want %d", n, got, want)
		}
	}
}

func TestReadTime(t *testing.T) {
	words := func(n int) string { return strings.TrimSpace(strings.Repeat("word ", n)) }
	tests := []struct {
		words int
		want  string
	}{
		{0, "1 min"},
		{1, "1 min"},
		{200, "1 min"},
		{201, "2 min"},
		{400, "2 min"},
		{401, "3 min"},
		{1000, "5 min"},
	}
	for _, tt := range tests {
		if got := ReadTime(words(tt.words)); got != tt.want {
			t.Errorf("ReadTime(%d words) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		meta  map[string]any
		field string
	}{
		{"valid", map[string]any{"title": "T", "date": "2024-01-01"}, ""},
		{"valid timestamp", map[string]any{"title": "T", "date": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, ""},
		{"numeric title", map[string]any{"title": 2024, "date": "2024-01-01"}, ""},
		{"missing title", map[string]any{"date": "2024-01-01"}, "title"},
		{"blank title", map[string]any{"title": "  ", "date": "2024-01-01"}, "title"},
		{"missing date", map[string]any{"title": "T"}, "date"},
		{"bad date", map[string]any{"title": "T", "date": "Not A Real Date"}, "date"},
		{"list date", map[string]any{"title": "T", "date": []any{"2024-01-01"}}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate("post.md", tt.meta)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestBuildPostDraftMustBeBool(t *testing.T) {
	p := buildPost("x", map[string]any{"title": "T", "date": "2024-01-01", "draft": "true"}, "")
	if p.Draft {
		t.Error("string draft value should not mark the post as draft")
	}
	p = buildPost("x", map[string]any{"title": "T", "date": "2024-01-01", "draft": true}, "")
	if !p.Draft {
		t.Error("draft: true should mark the post as draft")
	}
}

func TestParseFrontMatter(t *testing.T) {
	src := "---\ntitle: Hello\ndate: 2024-03-10\ncount: 3\npublished: true\ntags:\n  - a\n  - b\n---\n# Body\n"
	meta, body, err := ParseFrontMatter([]byte(src))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta["title"] != "Hello" {
		t.Errorf("title = %v", meta["title"])
	}
	if meta["count"] != 3 {
		t.Errorf("count = %v (%T), want int 3", meta["count"], meta["count"])
	}
	if meta["published"] != true {
		t.Errorf("published = %v", meta["published"])
	}
	if got := stringList(meta["tags"]); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("tags = %v", got)
	}
	if body != "# Body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("# Just markdown\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
	if body != "# Just markdown\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseFrontMatterMalformed(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\ntitle: x\ntags: [unclosed\n---\nbody"))
	var perr *FrontmatterParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseFrontMatter error = %v, want *FrontmatterParseError", err)
	}
}
