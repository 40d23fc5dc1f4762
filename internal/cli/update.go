package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-client/client"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `update <id> <name> "text"`,
		Short: "Update a comment",
		Long:  "Replace the name and text of an existing comment. Remaining arguments are joined as the text.",
		Args:  cobra.MinimumNArgs(3),
		RunE:  runUpdate,
	}
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req := client.UpdateCommentRequest{
		ID:   args[0],
		Name: args[1],
		Text: strings.Join(args[2:], " "),
	}

	c, err := newAPIClient()
	if err != nil {
		return err
	}

	res, err := c.UpdateComment(cmd.Context(), req)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res.Comment)
	}

	return printCommentSingle(cmd.OutOrStdout(), "updated", res.Comment)
}
