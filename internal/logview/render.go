package logview

import (
	"fmt"
	"io"
	"time"

	"github.com/flarebyte/seshat-annals/internal/commit"
)

// Output formats accepted by NewRenderer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Renderer writes one record per Render call in a fixed format.
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer validates format and returns a renderer writing to w.
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML, "":
		if format == "" {
			format = FormatText
		}
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	return &Renderer{w: w, format: format}, nil
}

// Render writes rec in the renderer's format.
func (r *Renderer) Render(rec *commit.Record) error {
	switch r.format {
	case FormatJSON:
		return writeJSON(r.w, serializableFields(rec))
	case FormatYAML:
		return writeYAML(r.w, rec.Commit(), serializableFields(rec))
	default:
		return WriteText(r.w, rec)
	}
}

// serializableFields flattens a record for structured output: times become
// RFC3339 strings, and merge commits expose their ordered parent list under
// "parents" alongside the last-write-wins "parent" key.
func serializableFields(rec *commit.Record) map[string]any {
	out := rec.Fields()
	for k, v := range out {
		if t, ok := v.(time.Time); ok {
			out[k] = t.Format(time.RFC3339)
		}
	}
	if parents := rec.Parents(); len(parents) > 1 {
		list := make([]any, len(parents))
		for i, p := range parents {
			list[i] = p
		}
		out["parents"] = list
	}
	return out
}
