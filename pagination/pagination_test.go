package pagination

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/eringen/pubfolio/content"
)

// tenPosts returns post-10 .. post-01, newest first, with 3, 6 and 9 marked
// as drafts.
func tenPosts() []content.Post {
	var posts []content.Post
	for i := 10; i >= 1; i-- {
		posts = append(posts, content.Post{
			Slug:  fmt.Sprintf("post-%02d", i),
			Time:  time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC),
			Draft: i%3 == 0,
		})
	}
	return posts
}

func slugs(posts []content.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func TestPaginateSkipsDrafts(t *testing.T) {
	res := Paginate(tenPosts(), 2, 3)
	if diff := cmp.Diff([]string{"post-05", "post-04", "post-02"}, slugs(res.Items)); diff != "" {
		t.Errorf("page 2 items (-want +got):\n%s", diff)
	}
	if res.Total != 7 || res.TotalPages != 3 {
		t.Errorf("Total = %d, TotalPages = %d, want 7, 3", res.Total, res.TotalPages)
	}
	if !res.HasPrev || !res.HasNext {
		t.Errorf("HasPrev = %v, HasNext = %v, want true, true", res.HasPrev, res.HasNext)
	}
}

func TestPaginateWindows(t *testing.T) {
	posts := tenPosts()
	tests := []struct {
		page, size int
		want       []string
		prev, next bool
	}{
		{1, 3, []string{"post-10", "post-08", "post-07"}, false, true},
		{3, 3, []string{"post-01"}, true, false},
		{4, 3, []string{}, true, false},
		{100, 3, []string{}, true, false},
		{1, 7, []string{"post-10", "post-08", "post-07", "post-05", "post-04", "post-02", "post-01"}, false, false},
		{1, 0, []string{"post-10", "post-08", "post-07", "post-05", "post-04"}, false, true},
		{2, -1, []string{"post-02", "post-01"}, true, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%d,size=%d", tt.page, tt.size), func(t *testing.T) {
			res := Paginate(posts, tt.page, tt.size)
			if diff := cmp.Diff(tt.want, slugs(res.Items)); diff != "" {
				t.Errorf("items (-want +got):\n%s", diff)
			}
			if res.HasPrev != tt.prev || res.HasNext != tt.next {
				t.Errorf("HasPrev = %v, HasNext = %v, want %v, %v", res.HasPrev, res.HasNext, tt.prev, tt.next)
			}
		})
	}
}

func TestPaginateClampsPage(t *testing.T) {
	posts := tenPosts()
	want := Paginate(posts, 1, 3)
	for _, page := range []int{0, -1, -100} {
		if diff := cmp.Diff(want, Paginate(posts, page, 3)); diff != "" {
			t.Errorf("Paginate(page=%d) differs from page 1 (-want +got):\n%s", page, diff)
		}
	}
	for _, raw := range []string{"", "abc", "0", "-2", "NaN"} {
		if diff := cmp.Diff(want, Paginate(posts, ParsePage(raw), 3)); diff != "" {
			t.Errorf("Paginate(ParsePage(%q)) differs from page 1 (-want +got):\n%s", raw, diff)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	res := Paginate(nil, 1, 5)
	if res.Items == nil || len(res.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", res.Items)
	}
	if res.HasPrev || res.HasNext || res.TotalPages != 0 {
		t.Errorf("unexpected result for empty listing: %+v", res)
	}
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1", 1},
		{"2", 2},
		{"42", 42},
		{" 3", 3},
		{"+4", 4},
		{"3abc", 3},
		{"2.9", 2},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-5", 1},
		{"-", 1},
		{"99999999999999999999", 1<<31 - 1},
		{"2147483647", 1<<31 - 1},
		{"2147483649", 1<<31 - 1},
	}
	for _, tt := range tests {
		if got := ParsePage(tt.input); got != tt.expected {
			t.Errorf("ParsePage(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestFindNeighbors(t *testing.T) {
	posts := []content.Post{{Slug: "newest"}, {Slug: "middle"}, {Slug: "oldest"}}
	slug := func(p *content.Post) string {
		if p == nil {
			return ""
		}
		return p.Slug
	}
	tests := []struct {
		slug, prev, next string
	}{
		{"newest", "", "middle"},
		{"middle", "newest", "oldest"},
		{"oldest", "middle", ""},
		{"missing", "", ""},
	}
	for _, tt := range tests {
		n := FindNeighbors(posts, tt.slug)
		if got := slug(n.Previous); got != tt.prev {
			t.Errorf("FindNeighbors(%q).Previous = %q, want %q", tt.slug, got, tt.prev)
		}
		if got := slug(n.Next); got != tt.next {
			t.Errorf("FindNeighbors(%q).Next = %q, want %q", tt.slug, got, tt.next)
		}
	}
}

func TestFindNeighborsSingle(t *testing.T) {
	n := FindNeighbors([]content.Post{{Slug: "only"}}, "only")
	if n.Previous != nil || n.Next != nil {
		t.Errorf("single post should have no neighbours, got %+v", n)
	}
}
