package logcmd

import (
	"github.com/flarebyte/seshat-annals/internal/config"
	"github.com/flarebyte/seshat-annals/internal/filter"
	"github.com/spf13/cobra"
)

type settings struct {
	maxCount int
	withHead bool
	format   string
	backend  string
	filter   string
	limits   filter.Limits
}

// mergedSettings resolves the effective settings: flags win over config,
// config wins over defaults.
func mergedSettings(cmd *cobra.Command) (settings, error) {
	s := settings{
		maxCount: flagMaxCount,
		withHead: flagWithHead,
		format:   flagFormat,
		backend:  flagBackend,
		filter:   flagFilter,
		limits:   filter.DefaultLimits(),
	}
	if flagConfig == "" {
		return s, nil
	}
	cfg, err := config.Parse(flagConfig)
	if err != nil {
		return settings{}, err
	}
	f := cmd.Flags()
	if cfg.Log.HasMaxCount && !f.Changed("max-count") {
		s.maxCount = cfg.Log.MaxCount
	}
	if cfg.Log.HasWithHead && !f.Changed("with-head") {
		s.withHead = cfg.Log.WithHead
	}
	if cfg.Log.HasFormat && !f.Changed("format") {
		s.format = cfg.Log.Format
	}
	if cfg.Log.HasBackend && !f.Changed("backend") {
		s.backend = cfg.Log.Backend
	}
	if cfg.Filter.HasInline && !f.Changed("filter") {
		s.filter = cfg.Filter.Inline
	}
	if cfg.Sandbox.HasTimeout {
		s.limits.TimeoutMs = cfg.Sandbox.TimeoutMs
	}
	if cfg.Sandbox.HasInstructionLimit {
		s.limits.InstructionLimit = cfg.Sandbox.InstructionLimit
	}
	if cfg.Sandbox.HasMemoryLimit {
		s.limits.MemoryLimitBytes = cfg.Sandbox.MemoryLimitBytes
	}
	return s, nil
}
