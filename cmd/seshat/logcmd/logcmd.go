package logcmd

import (
	"github.com/flarebyte/seshat-annals/internal/commit"
	"github.com/flarebyte/seshat-annals/internal/filter"
	"github.com/flarebyte/seshat-annals/internal/gitdir"
	"github.com/flarebyte/seshat-annals/internal/logview"
	"github.com/flarebyte/seshat-annals/internal/object"
	"github.com/flarebyte/seshat-annals/internal/walk"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagDir      string
	flagMaxCount int
	flagWithHead bool
	flagFormat   string
	flagBackend  string
	flagFilter   string
)

// Cmd represents the `seshat log` command.
var Cmd = &cobra.Command{
	Use:           "log",
	Short:         "Walk the commit history backward from the head reference",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := mergedSettings(cmd)
		if err != nil {
			return err
		}

		gitDir, err := gitdir.FindFrom(flagDir)
		if err != nil {
			return err
		}
		head, err := gitdir.ResolveHead(gitDir)
		if err != nil {
			return err
		}
		fetcher, err := object.New(s.backend, gitDir)
		if err != nil {
			return err
		}
		renderer, err := logview.NewRenderer(cmd.OutOrStdout(), s.format)
		if err != nil {
			return err
		}

		var pred *filter.Predicate
		if s.filter != "" {
			pred = filter.New(s.filter, s.limits)
		}
		visit := func(rec *commit.Record) error {
			if pred != nil {
				keep, err := pred.Keep(rec)
				if err != nil {
					return err
				}
				if !keep {
					return nil
				}
			}
			return renderer.Render(rec)
		}

		opts := walk.Options{IncludeHead: s.withHead, MaxCount: s.maxCount}
		return walk.Walk(cmd.Context(), fetcher, head, opts, visit)
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to run config file (.cue)")
	Cmd.Flags().StringVarP(&flagDir, "dir", "C", "", "Start the repository search in this directory")
	Cmd.Flags().IntVarP(&flagMaxCount, "max-count", "n", 0, "Stop after this many commits (0 = unlimited)")
	Cmd.Flags().BoolVar(&flagWithHead, "with-head", false, "Also print the head commit, not only its ancestors")
	Cmd.Flags().StringVar(&flagFormat, "format", logview.FormatText, "Output format: text, json or yaml")
	Cmd.Flags().StringVar(&flagBackend, "backend", object.BackendAuto, "Object backend: auto, loose, gogit or cli")
	Cmd.Flags().StringVar(&flagFilter, "filter", "", "Inline Lua predicate deciding which commits to print")
}
