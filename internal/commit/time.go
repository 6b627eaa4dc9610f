package commit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalize rewrites the author and committer fields of a parsed record from
// "<name> <email> <epoch> <offset>" to the identity alone, and stores the
// timestamp under author_datetime/committer_datetime as an instant in a fixed
// zone whose displayed offset matches the raw offset string.
func Normalize(rec *Record) error {
	for _, field := range []string{FieldAuthor, FieldCommitter} {
		if err := normalizeField(rec, field); err != nil {
			return err
		}
	}
	return nil
}

func normalizeField(rec *Record, field string) error {
	raw, ok := rec.fields[field].(string)
	if !ok {
		return fmt.Errorf("%w: missing %s header", ErrMalformed, field)
	}
	parts := strings.Fields(raw)
	if len(parts) < 3 {
		return fmt.Errorf("%w: %s value %q lacks epoch and offset", ErrMalformed, field, raw)
	}
	epoch, offset := parts[len(parts)-2], parts[len(parts)-1]

	sec, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s epoch %q: %v", ErrMalformed, field, epoch, err)
	}
	zone, err := zoneFromOffset(offset)
	if err != nil {
		return fmt.Errorf("%w: %s offset %q: %v", ErrMalformed, field, offset, err)
	}

	rec.fields[field] = strings.Join(parts[:len(parts)-2], " ")
	rec.fields[field+datetimeSuffix] = time.Unix(sec, 0).UTC().In(zone)
	return nil
}

// zoneFromOffset builds the fixed zone for a git offset string such as
// "-0700". The zone name follows the POSIX Etc/GMT convention, whose sign is
// inverted relative to the offset string: "-0700" names Etc/GMT+7.
func zoneFromOffset(offset string) (*time.Location, error) {
	if len(offset) != 5 {
		return nil, fmt.Errorf("want sign plus four digits")
	}
	sign := offset[0]
	if sign != '+' && sign != '-' {
		return nil, fmt.Errorf("offset sign must be + or -")
	}
	hours, err := strconv.Atoi(offset[1:3])
	if err != nil {
		return nil, err
	}
	mins, err := strconv.Atoi(offset[3:5])
	if err != nil {
		return nil, err
	}
	east := hours*3600 + mins*60
	if sign == '-' {
		east = -east
	}
	return time.FixedZone(fmt.Sprintf("Etc/GMT%c%d", swapSign(sign), hours), east), nil
}

func swapSign(sign byte) byte {
	if sign == '+' {
		return '-'
	}
	return '+'
}
