package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/pubfolio/content"
)

var (
	flagDrafts  bool
	flagTag     string
	flagContent bool
	flagFormat  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagLogLevel, flagLogFormat)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		repo := content.NewPostRepository(appConfig.PostsDir, logger)
		posts := repo.ListPosts(content.ListOptions{
			IncludeContent: flagContent,
			IncludeDrafts:  flagDrafts,
		})
		if flagTag != "" {
			posts = content.FilterByTag(posts, flagTag)
		}
		return writePosts(cmd.OutOrStdout(), posts, flagFormat)
	},
}

func init() {
	listCmd.Flags().BoolVar(&flagDrafts, "drafts", false, "include draft posts")
	listCmd.Flags().StringVar(&flagTag, "tag", "", "only posts with this tag")
	listCmd.Flags().BoolVar(&flagContent, "content", false, "include the markdown body (json and yaml only)")
	listCmd.Flags().StringVarP(&flagFormat, "format", "f", "table", "output format: table, json or yaml")
	rootCmd.AddCommand(listCmd)
}

type postRecord struct {
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Date        string   `json:"date" yaml:"date"`
	Authors     []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Draft       bool     `json:"draft,omitempty" yaml:"draft,omitempty"`
	Excerpt     string   `json:"excerpt" yaml:"excerpt"`
	ReadTime    string   `json:"readTime" yaml:"readTime"`
	Content     string   `json:"content,omitempty" yaml:"content,omitempty"`
}

func records(posts []content.Post) []postRecord {
	out := make([]postRecord, 0, len(posts))
	for _, p := range posts {
		out = append(out, postRecord{
			Slug:        p.Slug,
			Title:       p.Title,
			Date:        p.Time.Format("2006-01-02"),
			Authors:     p.Authors,
			Tags:        p.Tags,
			Description: p.Description,
			Draft:       p.Draft,
			Excerpt:     p.Excerpt,
			ReadTime:    p.ReadTime,
			Content:     p.Content,
		})
	}
	return out
}

func writePosts(w io.Writer, posts []content.Post, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records(posts))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records(posts)); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		_, err := fmt.Fprintln(w, postTable(posts))
		return err
	default:
		return fmt.Errorf("unknown format %q: want table, json or yaml", format)
	}
}

func postTable(posts []content.Post) string {
	if len(posts) == 0 {
		return mutedStyle.Render("No posts.")
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("DATE", "SLUG", "TITLE", "TAGS", "READ")
	for _, p := range posts {
		title := p.Title
		if p.Draft {
			title += " " + draftStyle.Render("[draft]")
		}
		t.Row(p.Time.Format("2006-01-02"), p.Slug, title, strings.Join(p.Tags, ", "), p.ReadTime)
	}
	return t.Render()
}
