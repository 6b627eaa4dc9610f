// Package filter evaluates an inline Lua predicate against commit records
// inside a bounded sandbox. Only the base, string, table and math libraries
// are open; no I/O is reachable from a predicate.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/flarebyte/seshat-annals/internal/commit"
)

// Predicate decides which commit records a log view keeps.
type Predicate struct {
	code   string
	limits Limits
}

// New compiles nothing up front; it wraps bare expressions in a return so
// both `author == "x"` and `return author == "x"` work.
func New(code string, limits Limits) *Predicate {
	if !strings.Contains(code, "return") {
		code = "return (" + code + ")"
	}
	return &Predicate{code: code, limits: limits}
}

// Keep runs the predicate against rec. Sandbox violations and script errors
// are fatal; the walk has no partial-success mode.
func (p *Predicate) Keep(rec *commit.Record) (bool, error) {
	ret, violation, err := runScript(p.limits, recordGlobals(rec), p.code)
	if err != nil {
		return false, fmt.Errorf("filter: %v", err)
	}
	if violation != "" {
		return false, fmt.Errorf("filter: %s", violation)
	}
	keep, _ := ret.(bool)
	return keep, nil
}

// recordGlobals exposes a record to the script as flat globals.
func recordGlobals(rec *commit.Record) map[string]any {
	globals := map[string]any{
		"commit":    rec.Commit(),
		"tree":      rec.Tree(),
		"parent":    rec.Parent(),
		"author":    rec.Author(),
		"committer": rec.Committer(),
		"message":   rec.Message(),
	}
	if at, ok := rec.AuthorTime(); ok {
		globals["author_time"] = at.Format(time.RFC3339)
	}
	if sig, ok := rec.Gpgsig(); ok {
		globals["gpgsig"] = sig
	}
	return globals
}
