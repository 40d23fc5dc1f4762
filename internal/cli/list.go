package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List comments",
		Long:  "List all comments on the server, in the order the server returns them.",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := newAPIClient()
	if err != nil {
		return err
	}

	res, err := c.ListComments(cmd.Context())
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res.Comments)
	}

	return printCommentTable(cmd.OutOrStdout(), res.Comments)
}
