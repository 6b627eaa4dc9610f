// Package logview renders finalized commit records: the classic log block,
// line-delimited JSON, or canonical YAML.
package logview

import (
	"io"
	"strings"

	"github.com/flarebyte/seshat-annals/internal/commit"
)

// DateFormat matches git's default log date rendering,
// e.g. "Tue Jun 21 00:57:59 2016 -0700".
const DateFormat = "Mon Jan 02 15:04:05 2006 -0700"

// Text renders one record as a log block: commit id, author identity, author
// date, a blank separator, the message indented by four spaces, and a
// trailing blank line.
func Text(rec *commit.Record) string {
	var b strings.Builder
	b.WriteString("commit " + rec.Commit() + "\n")
	b.WriteString("Author: " + rec.Author() + "\n")
	if at, ok := rec.AuthorTime(); ok {
		b.WriteString("Date:   " + at.Format(DateFormat) + "\n")
	}
	b.WriteString("\n")
	for _, line := range strings.Split(rec.Message(), "\n") {
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// WriteText writes the log block for rec to w.
func WriteText(w io.Writer, rec *commit.Record) error {
	_, err := io.WriteString(w, Text(rec))
	return err
}
