package repository

import sq "github.com/Masterminds/squirrel"

const countersTable = "counters"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectCounter reads one counter row by name.
func selectCounter(name string) sq.SelectBuilder {
	return psql.
		Select("value").
		From(countersTable).
		Where(sq.Eq{"name": name})
}

// upsertCounter creates the row at 1 or bumps an existing one, returning the
// new value in the same statement.
func upsertCounter(name string) sq.InsertBuilder {
	return psql.
		Insert(countersTable).
		Columns("name", "value").
		Values(name, 1).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = " + countersTable + ".value + 1, updated_at = now() RETURNING value")
}
