package commit

import "time"

// Field keys populated by Parse and Normalize.
const (
	FieldTree      = "tree"
	FieldParent    = "parent"
	FieldAuthor    = "author"
	FieldCommitter = "committer"
	FieldGpgsig    = "gpgsig"
	FieldMessage   = "message"
	FieldCommit    = "commit"

	datetimeSuffix = "_datetime"
)

// Record is the field map parsed from one raw commit object. Header keys are
// unique; a duplicated header keeps the last value seen. The ordered parent
// list survives separately for callers that care about merge ancestry.
type Record struct {
	fields  map[string]any
	parents []string
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

func (r *Record) stringField(key string) string {
	s, _ := r.fields[key].(string)
	return s
}

// Tree returns the tree object id.
func (r *Record) Tree() string { return r.stringField(FieldTree) }

// Parent returns the last parent header value, or "" for a root commit.
func (r *Record) Parent() string { return r.stringField(FieldParent) }

// Parents returns every parent id in header order.
func (r *Record) Parents() []string { return r.parents }

// Author returns the author value; identity-only after Normalize.
func (r *Record) Author() string { return r.stringField(FieldAuthor) }

// Committer returns the committer value; identity-only after Normalize.
func (r *Record) Committer() string { return r.stringField(FieldCommitter) }

// Message returns the commit message body, possibly empty.
func (r *Record) Message() string { return r.stringField(FieldMessage) }

// Gpgsig returns the joined signature block for signed commits.
func (r *Record) Gpgsig() (string, bool) {
	s, ok := r.fields[FieldGpgsig].(string)
	return s, ok
}

// Commit returns the object id this record was fetched under.
func (r *Record) Commit() string { return r.stringField(FieldCommit) }

// SetCommit tags the record with the object id it was requested as. The id is
// not part of the raw object text, so the fetching side supplies it.
func (r *Record) SetCommit(id string) { r.fields[FieldCommit] = id }

// AuthorTime returns the normalized author timestamp.
func (r *Record) AuthorTime() (time.Time, bool) {
	t, ok := r.fields[FieldAuthor+datetimeSuffix].(time.Time)
	return t, ok
}

// CommitterTime returns the normalized committer timestamp.
func (r *Record) CommitterTime() (time.Time, bool) {
	t, ok := r.fields[FieldCommitter+datetimeSuffix].(time.Time)
	return t, ok
}

// Fields returns a copy of the field map with stable value types: strings for
// headers, message and ids, time.Time for the datetime fields.
func (r *Record) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}
