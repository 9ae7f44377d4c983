// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/jongio/urlprefix/cliout"
	"github.com/jongio/urlprefix/logutil"
	"github.com/jongio/urlprefix/version"
)

// Name is the binary name.
const Name = "urlprefix"

type rootOptions struct {
	output         string
	debug          bool
	structuredLogs bool
}

// NewRootCommand builds the urlprefix command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   Name,
		Short: "Build URL prefixes from a protocol, host, port, and path",
		Long: `urlprefix builds "<scheme>://<host>[:<port>][/<path>]" strings.

The port is omitted when it equals the protocol's default port
(80 for http and ws, 443 for https and wss, 21 for ftp).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliout.SetFormat(opts.output); err != nil {
				return err
			}
			logutil.SetupLogger(opts.debug, opts.structuredLogs)
			logutil.Debug("starting command", "command", cmd.CommandPath())
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "default", "Output format (default, json)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.structuredLogs, "structured-logs", false, "Write logs as JSON")

	cmd.AddCommand(
		newBuildCommand(),
		newParseCommand(),
		newEndpointsCommand(),
		newMCPCommand(),
		version.NewCommand(version.New(Name)),
	)

	return cmd
}

// Execute runs the command tree with the process arguments and returns the
// process exit code.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		if cliout.IsJSON() {
			_ = cliout.PrintJSON(map[string]string{"error": err.Error()})
		} else {
			cliout.Error("%v", err)
		}
		return 1
	}
	return 0
}
