package commit

import (
	"errors"
	"strings"
	"testing"
)

const rawUnsigned = "tree 0ea3ee5e56e3123de49422ac3315b1cee3d74910\n" +
	"parent 3d5f868982cc7ccf4dddcfd14560d1f25507dc1d\n" +
	"parent 39f0875dfc705ced8250155e61801554198e0d5f\n" +
	"author Glen Jarvis <glen@glenjarvis.com> 1465164241 -0700\n" +
	"committer Glen Jarvis <glen@glenjarvis.com> 1465164241 -0700\n" +
	"\n" +
	"Merge pull request #4 from glenjarvis/get_branch_commit"

func TestParseHeadersAndMessage(t *testing.T) {
	rec, err := Parse(rawUnsigned)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Tree(); got != "0ea3ee5e56e3123de49422ac3315b1cee3d74910" {
		t.Fatalf("tree = %q", got)
	}
	if got := rec.Author(); got != "Glen Jarvis <glen@glenjarvis.com> 1465164241 -0700" {
		t.Fatalf("raw author = %q", got)
	}
	if got := rec.Message(); got != "Merge pull request #4 from glenjarvis/get_branch_commit" {
		t.Fatalf("message = %q", got)
	}
	if rec.Has(FieldGpgsig) {
		t.Fatalf("unsigned commit should not carry a gpgsig key")
	}
}

func TestParseDuplicateParentLastWins(t *testing.T) {
	rec, err := Parse(rawUnsigned)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Parent(); got != "39f0875dfc705ced8250155e61801554198e0d5f" {
		t.Fatalf("parent = %q, want last header value", got)
	}
	want := []string{
		"3d5f868982cc7ccf4dddcfd14560d1f25507dc1d",
		"39f0875dfc705ced8250155e61801554198e0d5f",
	}
	got := rec.Parents()
	if len(got) != len(want) {
		t.Fatalf("parents = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parents[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseMessageVerbatim(t *testing.T) {
	raw := "tree aaaa\n" +
		"author A <a@x> 1 +0000\n" +
		"committer A <a@x> 1 +0000\n" +
		"\n" +
		"subject line\n" +
		"\n" +
		"  body kept   as-is\n"
	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := "subject line\n\n  body kept   as-is\n"
	if got := rec.Message(); got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestParseEmptyMessage(t *testing.T) {
	rec, err := Parse("tree aaaa\nauthor A <a@x> 1 +0000\ncommitter A <a@x> 1 +0000\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := rec.Message(); got != "" {
		t.Fatalf("message = %q, want empty", got)
	}
}

func TestParseSignedCommit(t *testing.T) {
	raw := "tree 0ea3ee5e56e3123de49422ac3315b1cee3d74910\n" +
		"parent 3d5f868982cc7ccf4dddcfd14560d1f25507dc1d\n" +
		"author Glen Jarvis <glen@glenjarvis.com> 1465164241 -0700\n" +
		"gpgsig -----BEGIN PGP SIGNATURE-----\n" +
		" Version: GnuPG v1\n" +
		" \n" +
		" iQIcBAABAgAGBQJXVJ/8AAoJEJF24vsEed5c44IP\n" +
		" =bnDB\n" +
		" -----END PGP SIGNATURE-----\n" +
		"committer Glen Jarvis <glen@glenjarvis.com> 1465164241 -0700\n" +
		"\n" +
		"signed change"
	rec, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sig, ok := rec.Gpgsig()
	if !ok {
		t.Fatalf("expected gpgsig key")
	}
	want := strings.Join([]string{
		"-----BEGIN PGP SIGNATURE-----",
		"Version: GnuPG v1",
		"",
		"iQIcBAABAgAGBQJXVJ/8AAoJEJF24vsEed5c44IP",
		"=bnDB",
		"-----END PGP SIGNATURE-----",
	}, "\n")
	if sig != want {
		t.Fatalf("gpgsig = %q, want %q", sig, want)
	}
	// Parsing resumed in the header section after the terminator.
	if got := rec.Committer(); got != "Glen Jarvis <glen@glenjarvis.com> 1465164241 -0700" {
		t.Fatalf("committer after signature = %q", got)
	}
	if got := rec.Message(); got != "signed change" {
		t.Fatalf("message = %q", got)
	}
}

func TestParseMalformedHeaderLine(t *testing.T) {
	tests := []string{
		"treeonly",
		"tree aaaa\nbroken\n\nmsg",
	}
	for _, raw := range tests {
		if _, err := Parse(raw); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Parse(%q) error = %v, want ErrMalformed", raw, err)
		}
	}
}
