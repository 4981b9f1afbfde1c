// Package pagination slices post listings into pages and finds the
// neighbours of a post.
package pagination

import (
	"strings"

	"github.com/eringen/pubfolio/content"
)

// DefaultPageSize is used when a caller passes a page size below 1.
const DefaultPageSize = 5

// Result is one page of a listing.
type Result struct {
	Items      []content.Post
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// ParsePage reads a page query parameter the way JavaScript's
// parseInt(raw, 10) does: leading whitespace and an optional sign, then the
// longest run of digits ("3", " 3", "3abc" all give 3). Anything else, and
// any value below 1, gives 1. Values past 2^31-1 saturate there.
func ParsePage(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n > (1<<31-1)/10 {
			// Saturate instead of overflowing; such pages are simply empty.
			n = 1<<31 - 1
			break
		}
		n = n*10 + int(r-'0')
		digits++
	}
	if digits == 0 || neg || n < 1 {
		return 1
	}
	return min(n, 1<<31-1)
}

// Paginate returns page (1-indexed) of the published posts. Drafts are
// removed before slicing. A page past the end has no items.
func Paginate(posts []content.Post, page, pageSize int) Result {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	published := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if !p.Draft {
			published = append(published, p)
		}
	}
	total := len(published)

	res := Result{
		Items:      []content.Post{},
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
		HasPrev:    page > 1,
	}

	start := (page - 1) * pageSize
	if start/pageSize != page-1 || start >= total {
		return res
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	res.Items = published[start:end]
	res.HasNext = end < total
	return res
}

// Neighbors holds the posts on either side of a post in a listing.
// Listings are newest first, so Previous is the newer post and Next the
// older one.
type Neighbors struct {
	Previous *content.Post
	Next     *content.Post
}

// FindNeighbors locates slug in posts. Both neighbours are nil when slug is
// not listed.
func FindNeighbors(posts []content.Post, slug string) Neighbors {
	for i := range posts {
		if posts[i].Slug != slug {
			continue
		}
		var n Neighbors
		if i > 0 {
			prev := posts[i-1]
			n.Previous = &prev
		}
		if i < len(posts)-1 {
			next := posts[i+1]
			n.Next = &next
		}
		return n
	}
	return Neighbors{}
}
