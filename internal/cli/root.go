// Package cli defines the cobra command tree for commentctl.
package cli

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-client/client"
	"github.com/evcraddock/comment-client/internal/db"
)

var (
	flagFormat string
	flagServer string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "commentctl",
		Short:         "Read and write comments on a comment API server",
		Long:          "A command-line client for the comment API. List, create and update comments, or run a local reference server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "comment API base URL (overrides config and COMMENTCTL_SERVER_URL)")

	root.AddCommand(
		newListCmd(),
		newCreateCmd(),
		newUpdateCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// openDB opens the SQLite database at path, or at the default path if empty.
func openDB(path string) (*sql.DB, error) {
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newAPIClient creates a comment API client for the configured server.
func newAPIClient() (*client.Client, error) {
	httpClient := &http.Client{Timeout: getTimeout()}
	return client.New(httpClient, client.WithBaseURL(getServerURL()))
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
