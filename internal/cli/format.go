package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/evcraddock/comment-client/comment"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printCommentTable prints a list of comments as a formatted table.
func printCommentTable(w io.Writer, comments []comment.Comment) error {
	if len(comments) == 0 {
		_, err := fmt.Fprintln(w, "No comments.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tTEXT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "--\t----\t----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, c := range comments {
		name := c.Name
		if name == "" {
			name = "anonymous"
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\n",
			c.ID, truncate(name, 20), truncate(oneLine(c.Text), 60)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\nTotal: %d comments\n", len(comments))
	return err
}

// printCommentSingle prints a single comment in text format.
func printCommentSingle(w io.Writer, verb string, c comment.Comment) error {
	_, err := fmt.Fprintf(w, "Comment #%d %s.\n  %s: %s\n", c.ID, verb, c.Name, c.Text)
	return err
}

// oneLine collapses newlines so a comment fits in one table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
