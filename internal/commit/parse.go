package commit

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports commit object text the parser refuses to guess about.
var ErrMalformed = errors.New("malformed commit object")

const (
	sigStartKey  = "gpgsig"
	sigEndMarker = "END PGP SIGNATURE"
)

type parseState int

// A raw commit has a header section and a free-form message, with the
// multi-line signature block embedded among the headers for signed commits.
const (
	stateHeaders parseState = iota
	stateSignature
	stateMessage
)

// Parse turns the raw text of one commit object, as produced by
// `git cat-file -p`, into a Record. Headers are split at the first space and
// stored last-write-wins; the first empty line starts the message, which is
// kept verbatim to the end of input.
func Parse(raw string) (*Record, error) {
	rec := &Record{fields: map[string]any{}}
	var sig, msg []string
	state := stateHeaders

	for _, line := range strings.Split(raw, "\n") {
		switch state {
		case stateHeaders:
			switch {
			case line == "":
				state = stateMessage
			case strings.HasPrefix(line, sigStartKey+" "):
				// The remainder of the gpgsig line is the first
				// signature fragment, not a plain header value.
				sig = append(sig, line[len(sigStartKey)+1:])
				state = stateSignature
			default:
				key, value, ok := strings.Cut(line, " ")
				if !ok {
					return nil, fmt.Errorf("%w: header line %q has no separator", ErrMalformed, line)
				}
				if key == FieldParent {
					rec.parents = append(rec.parents, value)
				}
				rec.fields[key] = value
			}
		case stateSignature:
			sig = append(sig, strings.TrimSpace(line))
			if strings.Contains(line, sigEndMarker) {
				state = stateHeaders
			}
		case stateMessage:
			msg = append(msg, line)
		}
	}

	if len(sig) > 0 {
		rec.fields[FieldGpgsig] = strings.Join(sig, "\n")
	}
	rec.fields[FieldMessage] = strings.Join(msg, "\n")
	return rec, nil
}
