package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eringen/pubfolio/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate posts and pages",
	Long: `The check command parses every post and page and reports unreadable
files, broken frontmatter, posts missing a title or a valid date, and post
slugs that differ only by case. It exits non-zero when anything is wrong.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if n := runCheck(cmd.OutOrStdout(), appConfig); n > 0 {
			return fmt.Errorf("%d problem(s) found", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck prints a report of both content directories and returns the
// number of problems.
func runCheck(w io.Writer, cfg config) int {
	report := content.NewPostRepository(cfg.PostsDir, nil).Check()
	pageProblems := content.NewPageRepository(cfg.PagesDir, nil).Check()

	fmt.Fprintln(w, headerStyle.Render("posts")+mutedStyle.Render(cfg.PostsDir))
	printProblems(w, report.Problems)
	fmt.Fprintln(w, headerStyle.Render("pages")+mutedStyle.Render(cfg.PagesDir))
	printProblems(w, pageProblems)

	n := len(report.Problems) + len(pageProblems)
	summary := fmt.Sprintf("%d posts, %d drafts, %d problems", len(report.Posts)-report.Drafts, report.Drafts, n)
	if n == 0 {
		fmt.Fprintln(w, okStyle.Render("✓ "+summary))
	} else {
		fmt.Fprintln(w, errorStyle.Render("✗ "+summary))
	}
	return n
}

func printProblems(w io.Writer, problems []error) {
	if len(problems) == 0 {
		fmt.Fprintln(w, "  "+okStyle.Render("ok"))
		return
	}
	for _, err := range problems {
		fmt.Fprintln(w, "  "+labelStyle.Render(problemKind(err))+err.Error())
	}
}

func problemKind(err error) string {
	var (
		dirErr   *content.DirectoryReadError
		readErr  *content.FileReadError
		parseErr *content.FrontmatterParseError
		valErr   *content.ValidationError
	)
	switch {
	case errors.Is(err, content.ErrSlugCollision):
		return "collision"
	case errors.As(err, &dirErr):
		return "directory"
	case errors.As(err, &readErr):
		return "unreadable"
	case errors.As(err, &parseErr):
		return "frontmatter"
	case errors.As(err, &valErr):
		return "invalid"
	default:
		return "error"
	}
}
