package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-client/client"
)

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `create <name> "text"`,
		Short: "Create a comment",
		Long:  "Create a comment with the given author name. Remaining arguments are joined as the text.",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runCreate,
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	req := client.CreateCommentRequest{
		Name: args[0],
		Text: strings.Join(args[1:], " "),
	}

	c, err := newAPIClient()
	if err != nil {
		return err
	}

	res, err := c.CreateComment(cmd.Context(), req)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res.Comment)
	}

	return printCommentSingle(cmd.OutOrStdout(), "created", res.Comment)
}
