package headcmd

import (
	"fmt"

	"github.com/flarebyte/seshat-annals/internal/gitdir"
	"github.com/spf13/cobra"
)

var (
	flagDir      string
	flagSymbolic bool
)

// Cmd represents the `seshat head` command.
var Cmd = &cobra.Command{
	Use:           "head",
	Short:         "Print the commit id the head reference resolves to",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		gitDir, err := gitdir.FindFrom(flagDir)
		if err != nil {
			return err
		}
		if flagSymbolic {
			head, err := gitdir.ReadHead(gitDir)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), head)
			return err
		}
		id, err := gitdir.ResolveHead(gitDir)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
		return err
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagDir, "dir", "C", "", "Start the repository search in this directory")
	Cmd.Flags().BoolVar(&flagSymbolic, "symbolic", false, "Print the raw head content instead of resolving it")
}
