// Package sqlstore implements store.Store over database/sql. Drivers supply
// a Dialect describing their placeholder syntax, how they report unique
// violations and how they migrate.
package sqlstore

import (
	"database/sql"
	"strconv"
	"strings"
)

type Dialect struct {
	// Name is used in log lines and errors.
	Name string

	// Numbered placeholders ($1, $2, ...) instead of "?".
	NumberedParams bool

	// IsUniqueViolation reports whether err came from a unique index.
	IsUniqueViolation func(err error) bool

	// Migrate brings the schema up to date.
	Migrate func(db *sql.DB) error
}

// rebind rewrites "?" placeholders for dialects using numbered parameters.
// Queries in this package never contain a literal "?" inside strings.
func (d Dialect) rebind(query string) string {
	if !d.NumberedParams {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
