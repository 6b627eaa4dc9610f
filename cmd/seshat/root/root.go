package root

import (
	"github.com/flarebyte/seshat-annals/cmd/seshat/headcmd"
	"github.com/flarebyte/seshat-annals/cmd/seshat/logcmd"
	"github.com/flarebyte/seshat-annals/cmd/seshat/showcmd"
	"github.com/flarebyte/seshat-annals/cmd/seshat/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seshat.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seshat",
		Short: "CLI: The annals of a repository, reconstructed commit by commit by the keeper of records",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(logcmd.Cmd)
	cmd.AddCommand(showcmd.Cmd)
	cmd.AddCommand(headcmd.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
