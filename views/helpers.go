package views

import (
	"encoding/json"
	"html/template"
	"net/url"
	"path"
	"strings"

	"github.com/eringen/pubfolio/content"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape wraps url.PathEscape for use in templates.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// JoinTags formats a tag slice as a comma-separated string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// WebsiteJSONLD produces a Schema.org WebSite JSON-LD block using cfg values.
func WebsiteJSONLD(cfg SiteConfig) template.JS {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = person(cfg.Author)
	}
	return marshalJS(data)
}

// BlogPostingJSONLD produces a Schema.org BlogPosting JSON-LD block for a
// post. Post authors win over the site author.
func BlogPostingJSONLD(cfg SiteConfig, post content.Post) template.JS {
	postURL := buildURL(cfg.URL, "blog", post.Slug)
	description := post.Description
	if description == "" {
		description = post.Excerpt
	}
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   description,
		"datePublished": post.Date,
		"url":           postURL,
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	switch {
	case len(post.Authors) == 1:
		data["author"] = person(post.Authors[0])
	case len(post.Authors) > 1:
		authors := make([]map[string]string, 0, len(post.Authors))
		for _, a := range post.Authors {
			authors = append(authors, person(a))
		}
		data["author"] = authors
	case cfg.Author != "":
		data["author"] = person(cfg.Author)
	}
	if len(post.Tags) > 0 {
		data["keywords"] = JoinTags(post.Tags)
	}
	return marshalJS(data)
}

func person(name string) map[string]string {
	return map[string]string{"@type": "Person", "name": name}
}

func marshalJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}
