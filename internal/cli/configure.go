package cli

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change CLI settings",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Args:  cobra.NoArgs,
			RunE:  runConfigShow,
		},
		&cobra.Command{
			Use:   "set-server <url>",
			Short: "Save the comment API base URL",
			Args:  cobra.ExactArgs(1),
			RunE:  runConfigSetServer,
		},
		&cobra.Command{
			Use:   "set-timeout <duration>",
			Short: "Save the HTTP timeout (e.g. 10s)",
			Args:  cobra.ExactArgs(1),
			RunE:  runConfigSetTimeout,
		},
	)

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	settings := map[string]string{
		"config":  path,
		"server":  getServerURL(),
		"timeout": getTimeout().String(),
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), settings)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config:  %s\n", settings["config"])
	fmt.Fprintf(out, "Server:  %s\n", settings["server"])
	fmt.Fprintf(out, "Timeout: %s\n", settings["timeout"])
	if os.Getenv("COMMENTCTL_SERVER_URL") != "" {
		fmt.Fprintln(out, "\n(server overridden by COMMENTCTL_SERVER_URL)")
	}
	return nil
}

func runConfigSetServer(cmd *cobra.Command, args []string) error {
	u, err := url.Parse(args[0])
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid server URL: %s", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.ServerURL = args[0]
	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Server set to %s\n", args[0])
	return nil
}

func runConfigSetTimeout(cmd *cobra.Command, args []string) error {
	d, err := time.ParseDuration(args[0])
	if err != nil || d <= 0 {
		return fmt.Errorf("invalid timeout: %s", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Timeout = d.String()
	if err := saveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Timeout set to %s\n", d)
	return nil
}
