// Package sqlbuilder provides a small parameterized WHERE-clause builder for
// PostgreSQL queries. Bound values are never interpolated into query text;
// callers are expected to allow-list any identifier (column, direction) they
// splice in themselves.
package sqlbuilder

import (
	"strconv"
	"strings"
)

// Builder accumulates parameterized filter fragments and their bound values in
// order. Use "$?" as the placeholder marker in fragment strings; it is replaced
// with the next positional parameter number (e.g. "$1", "$2") when Add is
// called. Placeholder numbering is contiguous and continues after any seed
// values, so a statement can pre-bind static parameters (e.g. a date_trunc
// granularity as $1) before any filter fragment is added.
type Builder struct {
	clauses []string
	args    []any
}

// New creates a Builder. Seed values occupy $1..$n ahead of any fragment.
func New(seed ...any) *Builder {
	b := &Builder{}
	if len(seed) > 0 {
		b.args = append(b.args, seed...)
	}
	return b
}

// Add appends a filter fragment with a single bound value. Every "$?" in the
// fragment is replaced with the next positional parameter number.
func (b *Builder) Add(fragment string, value any) {
	b.args = append(b.args, value)
	b.clauses = append(b.clauses, strings.ReplaceAll(fragment, "$?", "$"+strconv.Itoa(len(b.args))))
}

// Next returns the next unused positional parameter number. Fragments that
// need more than one value, or values appended outside Add, should ask the
// builder for the current index rather than assume a static one.
func (b *Builder) Next() int {
	return len(b.args) + 1
}

// Bind records a value that is referenced outside the WHERE fragment list
// (e.g. in a CTE's outer query or a LIMIT clause) and returns its positional
// parameter number.
func (b *Builder) Bind(value any) int {
	b.args = append(b.args, value)
	return len(b.args)
}

// Where returns the accumulated fragments joined with " AND " and prefixed
// with " WHERE ". Returns the empty string when no fragment has been added.
func (b *Builder) Where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.clauses, " AND ")
}

// Args returns a copy of the bound values in placeholder order. Callers get a
// snapshot: appending pagination values later never mutates a previously
// taken argument list.
func (b *Builder) Args() []any {
	args := make([]any, len(b.args))
	copy(args, b.args)
	return args
}

// AppendPagination appends LIMIT and OFFSET clauses to query and binds both
// values, in that order. Only listing statements call this; a count statement
// built from the same filter inputs never sees these parameters.
func (b *Builder) AppendPagination(query string, limit, offset int64) string {
	b.args = append(b.args, limit)
	query += " LIMIT $" + strconv.Itoa(len(b.args))
	b.args = append(b.args, offset)
	query += " OFFSET $" + strconv.Itoa(len(b.args))
	return query
}
