package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/comment-client/internal/logging"
	"github.com/evcraddock/comment-client/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int
	var dev bool
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start a local comment API server",
		Long:  "Start an HTTP server implementing the comment API, backed by a SQLite database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev, dbPath)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable debug logging")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default: ~/.config/commentctl/comments.db)")

	return cmd
}

func runServe(port int, dev bool, dbPath string) error {
	logging.Setup(os.Stdout, dev)

	database, err := openDB(dbPath)
	if err != nil {
		return err
	}
	defer closeDB(database)

	return web.NewServer(database).ListenAndServe(port)
}
