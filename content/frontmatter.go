package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/araddon/dateparse"
)

// ParseFrontMatter splits source into its metadata block and the markdown
// body that follows it. Sources without a block return an empty mapping and
// the whole text as body. A malformed block returns a *FrontmatterParseError.
func ParseFrontMatter(source []byte) (map[string]any, string, error) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, "", &FrontmatterParseError{Err: err}
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, string(body), nil
}

// stringValue reads a scalar metadata value as trimmed text.
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case time.Time:
		return formatDate(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// stringList accepts either a single string or a list and drops blanks.
func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return filterBlank(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := stringValue(item); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		if s := stringValue(t); s != "" {
			return []string{s}
		}
		return nil
	}
}

func filterBlank(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// parseDate accepts ISO-8601-ish strings (and the timestamps some
// frontmatter decoders produce) and interprets zone-less values as UTC.
func parseDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, fmt.Errorf("zero date")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, fmt.Errorf("empty date")
		}
		return dateparse.ParseIn(s, time.UTC)
	case nil:
		return time.Time{}, fmt.Errorf("missing date")
	default:
		return time.Time{}, fmt.Errorf("unsupported date value %v (%T)", t, t)
	}
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
