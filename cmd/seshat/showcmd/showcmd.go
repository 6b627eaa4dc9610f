package showcmd

import (
	"github.com/flarebyte/seshat-annals/internal/gitdir"
	"github.com/flarebyte/seshat-annals/internal/logview"
	"github.com/flarebyte/seshat-annals/internal/object"
	"github.com/flarebyte/seshat-annals/internal/walk"
	"github.com/spf13/cobra"
)

var (
	flagDir     string
	flagFormat  string
	flagBackend string
)

// Cmd represents the `seshat show` command: one commit, no walk.
var Cmd = &cobra.Command{
	Use:           "show [object-id]",
	Short:         "Print a single commit, defaulting to the resolved head",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		gitDir, err := gitdir.FindFrom(flagDir)
		if err != nil {
			return err
		}
		id := ""
		if len(args) == 1 {
			id = args[0]
		}
		if id == "" {
			id, err = gitdir.ResolveHead(gitDir)
			if err != nil {
				return err
			}
		}
		fetcher, err := object.New(flagBackend, gitDir)
		if err != nil {
			return err
		}
		renderer, err := logview.NewRenderer(cmd.OutOrStdout(), flagFormat)
		if err != nil {
			return err
		}
		rec, err := walk.Resolve(cmd.Context(), fetcher, id)
		if err != nil {
			return err
		}
		return renderer.Render(rec)
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagDir, "dir", "C", "", "Start the repository search in this directory")
	Cmd.Flags().StringVar(&flagFormat, "format", logview.FormatText, "Output format: text, json or yaml")
	Cmd.Flags().StringVar(&flagBackend, "backend", object.BackendAuto, "Object backend: auto, loose, gogit or cli")
}
