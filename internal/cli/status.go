package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-client/client"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection to the comment server",
		Long:  "Sends a list request to the configured server and reports whether it answered with valid comments.",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	serverURL := getServerURL()

	fmt.Fprintf(out, "Server:  %s\n", serverURL)

	c, err := newAPIClient()
	if err != nil {
		return err
	}

	res, err := c.ListComments(cmd.Context())
	if err == nil {
		fmt.Fprintf(out, "Status:  ✓ connected (%d comments)\n", len(res.Comments))
		return nil
	}

	fmt.Fprintf(out, "Status:  ✗ %s\n", describeError(err))
	return nil
}

// describeError turns a client error into a short status line.
func describeError(err error) string {
	var apiErr *client.Error
	if !errors.As(err, &apiErr) {
		return err.Error()
	}

	switch apiErr.Kind {
	case client.KindTransport:
		return fmt.Sprintf("cannot reach server (%s)", apiErr.Message)
	case client.KindHTTP:
		return fmt.Sprintf("unexpected response (%d %s)", apiErr.StatusCode, apiErr.Message)
	case client.KindMalformedResponse:
		return fmt.Sprintf("server is not a comment API (%s)", apiErr.Message)
	default:
		return apiErr.Error()
	}
}
