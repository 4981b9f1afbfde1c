package content

import (
	"sort"
	"strings"
	"unicode"
)

// TagSlug converts a tag to its URL form: lower case, with every run of
// characters other than letters and digits collapsed to a single dash.
func TagSlug(tag string) string {
	s := strings.ToLower(strings.TrimSpace(tag))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// FilterByTag returns the posts carrying tag, compared by TagSlug.
func FilterByTag(posts []Post, tag string) []Post {
	want := TagSlug(tag)
	filtered := []Post{}
	if want == "" {
		return filtered
	}
	for _, p := range posts {
		for _, t := range p.Tags {
			if TagSlug(t) == want {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// Tags returns the distinct tags of posts ordered by slug. The first
// spelling seen for a slug wins.
func Tags(posts []Post) []string {
	seen := make(map[string]string)
	for _, p := range posts {
		for _, t := range p.Tags {
			slug := TagSlug(t)
			if slug == "" {
				continue
			}
			if _, ok := seen[slug]; !ok {
				seen[slug] = t
			}
		}
	}
	slugs := make([]string, 0, len(seen))
	for slug := range seen {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	tags := make([]string, len(slugs))
	for i, slug := range slugs {
		tags[i] = seen[slug]
	}
	return tags
}
