// Package config loads the optional CUE run configuration for the log
// command. Flags always win over config values; presence flags record which
// fields the file actually set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Settings holds the validated subset of a run config.
type Settings struct {
	ConfigVersion string
	Log           Log
	Filter        Filter
	Sandbox       Sandbox
}

// Log holds optional log view settings and presence flags.
type Log struct {
	MaxCount    int
	WithHead    bool
	Format      string
	Backend     string
	HasMaxCount bool
	HasWithHead bool
	HasFormat   bool
	HasBackend  bool
}

// Filter holds the optional inline Lua predicate.
type Filter struct {
	Inline    string
	HasInline bool
}

// Sandbox holds optional script sandbox limits.
type Sandbox struct {
	TimeoutMs           int
	InstructionLimit    int
	MemoryLimitBytes    int
	HasTimeout          bool
	HasInstructionLimit bool
	HasMemoryLimit      bool
}

// Parse validates and extracts settings from the CUE config at path.
// Required field: configVersion (string).
func Parse(path string) (Settings, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Settings{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&s.ConfigVersion); err != nil {
		return Settings{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}

	lv := v.LookupPath(cue.ParsePath("log"))
	if lv.Exists() {
		decodeInt(lv, "maxCount", &s.Log.MaxCount, &s.Log.HasMaxCount)
		decodeBool(lv, "withHead", &s.Log.WithHead, &s.Log.HasWithHead)
		decodeString(lv, "format", &s.Log.Format, &s.Log.HasFormat)
		decodeString(lv, "backend", &s.Log.Backend, &s.Log.HasBackend)
	}
	fv := v.LookupPath(cue.ParsePath("filter"))
	if fv.Exists() {
		decodeString(fv, "inline", &s.Filter.Inline, &s.Filter.HasInline)
	}
	sv := v.LookupPath(cue.ParsePath("sandbox"))
	if sv.Exists() {
		decodeInt(sv, "timeoutMs", &s.Sandbox.TimeoutMs, &s.Sandbox.HasTimeout)
		decodeInt(sv, "instructionLimit", &s.Sandbox.InstructionLimit, &s.Sandbox.HasInstructionLimit)
		decodeInt(sv, "memoryLimitBytes", &s.Sandbox.MemoryLimitBytes, &s.Sandbox.HasMemoryLimit)
	}
	return s, nil
}

// compileCUE loads and compiles a CUE file at the given path.
func compileCUE(path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

func decodeString(v cue.Value, name string, dst *string, has *bool) {
	f := v.LookupPath(cue.ParsePath(name))
	if f.Exists() && f.Kind() == cue.StringKind {
		if err := f.Decode(dst); err == nil {
			*has = true
		}
	}
}

func decodeInt(v cue.Value, name string, dst *int, has *bool) {
	f := v.LookupPath(cue.ParsePath(name))
	if f.Exists() && f.Kind() == cue.IntKind {
		if err := f.Decode(dst); err == nil {
			*has = true
		}
	}
}

func decodeBool(v cue.Value, name string, dst *bool, has *bool) {
	f := v.LookupPath(cue.ParsePath(name))
	if f.Exists() && f.Kind() == cue.BoolKind {
		if err := f.Decode(dst); err == nil {
			*has = true
		}
	}
}
