package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// sqlWriter accumulates statement text and its bound values. Every bound value
// becomes the next $n placeholder.
type sqlWriter struct {
	strings.Builder
	args []any
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.WriteString("$")
	w.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) list(items []string) {
	w.WriteString(strings.Join(items, ", "))
}

// Condition is one WHERE predicate.
type Condition interface {
	render(w *sqlWriter)
}

type conditionFunc func(w *sqlWriter)

func (f conditionFunc) render(w *sqlWriter) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.WriteString(column + " = ")
		w.bind(value)
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.WriteString(column + " IS NULL")
	})
}

// Or joins conditions with OR inside parentheses. With no conditions it
// matches nothing.
func Or(conditions ...Condition) Condition {
	return conditionFunc(func(w *sqlWriter) {
		if len(conditions) == 0 {
			w.WriteString("1=0")
			return
		}
		w.WriteString("(")
		joinConditions(w, conditions, " OR ")
		w.WriteString(")")
	})
}

func joinConditions(w *sqlWriter, conditions []Condition, sep string) {
	for i, cond := range conditions {
		if i > 0 {
			w.WriteString(sep)
		}
		cond.render(w)
	}
}

type SelectBuilder struct {
	columns []string
	from    string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

// From takes a table name or a fixed join expression.
func (b *SelectBuilder) From(source string) *SelectBuilder {
	b.from = source
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(terms ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("select columns are required")
	case strings.TrimSpace(b.from) == "":
		return "", nil, fmt.Errorf("select table is required")
	}

	w := &sqlWriter{}
	w.WriteString("SELECT ")
	w.list(b.columns)
	w.WriteString(" FROM " + b.from)
	if len(b.where) > 0 {
		w.WriteString(" WHERE ")
		joinConditions(w, b.where, " AND ")
	}
	if len(b.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		w.list(b.orderBy)
	}
	if b.limit > 0 {
		w.WriteString(" LIMIT " + strconv.Itoa(b.limit))
	}

	return w.String(), w.args, nil
}

// InsertBuilder writes a single-row INSERT with optional conflict handling.
type InsertBuilder struct {
	table     string
	columns   []string
	values    []any
	conflict  []string
	updates   []string
	touch     []string
	returning []string
	err       error
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Set adds one column and its bound value.
func (b *InsertBuilder) Set(column string, value any) *InsertBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

// OnConflict names the conflict target columns.
func (b *InsertBuilder) OnConflict(target ...string) *InsertBuilder {
	b.conflict = append([]string(nil), target...)
	return b
}

// DoUpdate overwrites the listed columns with the rejected row's values.
func (b *InsertBuilder) DoUpdate(columns ...string) *InsertBuilder {
	b.updates = append(b.updates, columns...)
	return b
}

// Touch sets the listed columns to NOW() when the conflict update fires.
func (b *InsertBuilder) Touch(columns ...string) *InsertBuilder {
	b.touch = append(b.touch, columns...)
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.updates)+len(b.touch) > 0 && len(b.conflict) == 0:
		return "", nil, fmt.Errorf("conflict update requires a target")
	}

	w := &sqlWriter{}
	w.WriteString("INSERT INTO " + b.table + " (")
	w.list(b.columns)
	w.WriteString(") VALUES (")
	for i, value := range b.values {
		if i > 0 {
			w.WriteString(", ")
		}
		w.bind(value)
	}
	w.WriteString(")")

	b.writeConflict(w)

	if len(b.returning) > 0 {
		w.WriteString(" RETURNING ")
		w.list(b.returning)
	}

	return w.String(), w.args, nil
}

func (b *InsertBuilder) writeConflict(w *sqlWriter) {
	if len(b.updates)+len(b.touch) == 0 {
		return
	}

	w.WriteString(" ON CONFLICT (")
	w.list(b.conflict)
	w.WriteString(")")

	assignments := make([]string, 0, len(b.updates)+len(b.touch))
	for _, col := range b.updates {
		assignments = append(assignments, col+" = EXCLUDED."+col)
	}
	for _, col := range b.touch {
		assignments = append(assignments, col+" = NOW()")
	}
	w.WriteString(" DO UPDATE SET ")
	w.list(assignments)
}
