package commit

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, raw string) *Record {
	t.Helper()
	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return rec
}

func TestNormalizeSplitsIdentityAndTimestamp(t *testing.T) {
	rec := mustParse(t, rawUnsigned)
	if err := Normalize(rec); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got := rec.Author(); got != "Glen Jarvis <glen@glenjarvis.com>" {
		t.Fatalf("author = %q", got)
	}
	if got := rec.Committer(); got != "Glen Jarvis <glen@glenjarvis.com>" {
		t.Fatalf("committer = %q", got)
	}
	at, ok := rec.AuthorTime()
	if !ok {
		t.Fatalf("missing author_datetime")
	}
	if got := at.Unix(); got != 1465164241 {
		t.Fatalf("epoch = %d, want 1465164241", got)
	}
	if got := at.Format("-0700"); got != "-0700" {
		t.Fatalf("displayed offset = %q, want -0700", got)
	}
	if got := at.Location().String(); got != "Etc/GMT+7" {
		t.Fatalf("zone name = %q, want POSIX-inverted Etc/GMT+7", got)
	}
}

func TestNormalizeOffsets(t *testing.T) {
	tests := []struct {
		offset   string
		display  string
		zoneName string
	}{
		{offset: "+0200", display: "+0200", zoneName: "Etc/GMT-2"},
		{offset: "-0700", display: "-0700", zoneName: "Etc/GMT+7"},
		{offset: "+0000", display: "+0000", zoneName: "Etc/GMT-0"},
		{offset: "+0530", display: "+0530", zoneName: "Etc/GMT-5"},
	}
	for _, tt := range tests {
		rec := mustParse(t, "tree aaaa\nauthor A <a@x> 1465164241 "+tt.offset+
			"\ncommitter A <a@x> 1465164241 "+tt.offset+"\n\nm")
		if err := Normalize(rec); err != nil {
			t.Fatalf("Normalize(%s): %v", tt.offset, err)
		}
		at, _ := rec.AuthorTime()
		if got := at.Format("-0700"); got != tt.display {
			t.Fatalf("offset %s displayed as %q, want %q", tt.offset, got, tt.display)
		}
		if got := at.Location().String(); got != tt.zoneName {
			t.Fatalf("offset %s zone = %q, want %q", tt.offset, got, tt.zoneName)
		}
		if got := at.UTC().Unix(); got != 1465164241 {
			t.Fatalf("offset %s round-trip epoch = %d", tt.offset, got)
		}
	}
}

func TestNormalizeMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "too few tokens", raw: "tree aaaa\nauthor onlytwo tokens\ncommitter A <a@x> 1 +0000\n\nm"},
		{name: "bad sign", raw: "tree aaaa\nauthor A <a@x> 1465164241 ~0700\ncommitter A <a@x> 1 +0000\n\nm"},
		{name: "short offset", raw: "tree aaaa\nauthor A <a@x> 1465164241 -07\ncommitter A <a@x> 1 +0000\n\nm"},
		{name: "bad epoch", raw: "tree aaaa\nauthor A <a@x> notanumber -0700\ncommitter A <a@x> 1 +0000\n\nm"},
		{name: "missing author", raw: "tree aaaa\ncommitter A <a@x> 1 +0000\n\nm"},
	}
	for _, tt := range tests {
		rec := mustParse(t, tt.raw)
		if err := Normalize(rec); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: Normalize error = %v, want ErrMalformed", tt.name, err)
		}
	}
}
