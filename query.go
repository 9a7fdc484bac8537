package demodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/vendaspro/demodb/pkg/constants"
	"github.com/vendaspro/demodb/pkg/dataset"
)

// Record is re-exported so call sites don't need to import pkg/dataset
// for literals.
type Record = dataset.Record

type queryMode int

const (
	modeUnset queryMode = iota
	modeSelect
	modeInsert
	modeUpdate
	modeDelete
)

func (m queryMode) String() string {
	switch m {
	case modeSelect:
		return "select"
	case modeInsert:
		return "insert"
	case modeUpdate:
		return "update"
	case modeDelete:
		return "delete"
	}
	return "unset"
}

type collapseMode int

const (
	collapseNone collapseMode = iota
	collapseSingle
	collapseMaybeSingle
)

// filter is one accumulated predicate. Eq carries one value, In carries
// the member set; all filters AND together.
type filter struct {
	column string
	values []any
}

type sortKey struct {
	column     string
	descending bool
}

// OrderOption adjusts a sort key.
type OrderOption func(*sortKey)

// Descending reverses an Order call's sort direction.
func Descending() OrderOption {
	return func(k *sortKey) { k.descending = true }
}

// Query accumulates a fluent chain and runs it once on Exec. The chain
// must settle on exactly one operation: a second conflicting mode call
// (say Insert after Delete) poisons the query, and Exec reports
// constants.ErrConflictingMode instead of silently taking the last call.
type Query struct {
	client *Client
	table  string

	mode       queryMode
	err        error
	selectSpec string
	filters    []filter
	sortKeys   []sortKey
	limit      int
	collapse   collapseMode
	inserts    []dataset.Record
	patch      dataset.Record
}

// Select records the desired result shape. The column list is advisory
// except for relation requests such as "lead:leads(nome, telefone)",
// which the resolver expands into nested rows.
func (q *Query) Select(spec string) *Query {
	q.selectSpec = spec
	if q.mode == modeUnset {
		q.mode = modeSelect
	}
	return q
}

// Eq adds an equality predicate.
func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, filter{column: column, values: []any{value}})
	return q
}

// In adds a membership predicate. Eq and In on the same column both
// apply, intersecting.
func (q *Query) In(column string, values ...any) *Query {
	q.filters = append(q.filters, filter{column: column, values: values})
	return q
}

// Order sorts the result by a column, ascending unless Descending is
// given. Repeated calls add secondary keys. Rows missing the column sort
// first.
func (q *Query) Order(column string, opts ...OrderOption) *Query {
	key := sortKey{column: column}
	for _, opt := range opts {
		opt(&key)
	}
	q.sortKeys = append(q.sortKeys, key)
	return q
}

// Limit caps the number of returned rows. Zero or negative means no cap.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Single collapses the result to the first matching row. Zero rows is
// not an error: Data comes back empty, mirroring the hosted client's
// lenient demo behavior the dashboard depends on.
func (q *Query) Single() *Query {
	q.collapse = collapseSingle
	return q
}

// MaybeSingle behaves like Single; it exists because call sites use both
// spellings of the hosted API.
func (q *Query) MaybeSingle() *Query {
	q.collapse = collapseMaybeSingle
	return q
}

// Insert switches the query to insert mode. Records append as given: no
// uniqueness check, no foreign-key validation, no defaults.
func (q *Query) Insert(records ...Record) *Query {
	q.setMode(modeInsert)
	q.inserts = append(q.inserts, records...)
	return q
}

// Update switches the query to update mode. At execution the partial
// record shallow-merges into every row matching the accumulated filters.
func (q *Query) Update(partial Record) *Query {
	q.setMode(modeUpdate)
	q.patch = partial
	return q
}

// Delete switches the query to delete mode. Rows matching the filters
// are removed; nothing cascades.
func (q *Query) Delete() *Query {
	q.setMode(modeDelete)
	return q
}

func (q *Query) setMode(m queryMode) {
	if q.err != nil {
		return
	}
	// Select before a mutation only records the result shape.
	if q.mode == modeUnset || q.mode == modeSelect {
		q.mode = m
		return
	}
	if q.mode != m {
		q.err = fmt.Errorf("%w: %s after %s", constants.ErrConflictingMode, m, q.mode)
	}
}

// Exec runs the accumulated chain once, synchronously, and returns the
// {Data, Count, Error} envelope. Internal panics are caught and reported
// through the envelope rather than thrown at the caller.
func (q *Query) Exec(ctx context.Context) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			q.client.logger.Error("query panicked", "table", q.table, "mode", q.mode.String(), "panic", r)
			res = &Result{Error: fmt.Errorf("query %s on %q: %v", q.mode, q.table, r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return &Result{Error: err}
	}
	if q.err != nil {
		return &Result{Error: q.err}
	}

	switch q.mode {
	case modeInsert:
		res = q.execInsert()
	case modeUpdate:
		res = q.execUpdate()
	case modeDelete:
		res = q.execDelete()
	default:
		res = q.execSelect()
	}

	q.client.logger.Debug("query executed",
		"table", q.table, "mode", q.mode.String(), "count", res.Count)
	return res
}

func (q *Query) execSelect() *Result {
	rows := q.matchRows(q.client.store.Rows(q.table))

	if len(q.sortKeys) > 0 {
		sort.SliceStable(rows, func(i, j int) bool {
			return q.lessRows(rows[i], rows[j])
		})
	}
	if q.limit > 0 && len(rows) > q.limit {
		rows = rows[:q.limit]
	}

	rows = q.client.resolver.Resolve(q.table, q.selectSpec, rows, q.client.store.Rows)

	if q.collapse != collapseNone && len(rows) > 1 {
		rows = rows[:1]
	}

	return &Result{Data: rows, Count: len(rows)}
}

func (q *Query) execInsert() *Result {
	if len(q.inserts) == 0 {
		return &Result{Error: constants.ErrNoRecords}
	}
	q.client.store.Append(q.table, q.inserts...)
	return &Result{Data: q.inserts, Count: len(q.inserts)}
}

func (q *Query) execUpdate() *Result {
	rows := q.client.store.Rows(q.table)
	var changed []dataset.Record
	for _, row := range rows {
		if !q.rowMatches(row) {
			continue
		}
		for column, value := range q.patch {
			row[column] = value
		}
		changed = append(changed, row)
	}
	// Zero matches is still a successful no-op; the table goes back
	// unchanged.
	q.client.store.Replace(q.table, rows)
	return &Result{Data: changed, Count: len(changed)}
}

func (q *Query) execDelete() *Result {
	rows := q.client.store.Rows(q.table)
	remainder := make([]dataset.Record, 0, len(rows))
	var removed []dataset.Record
	for _, row := range rows {
		if q.rowMatches(row) {
			removed = append(removed, row)
			continue
		}
		remainder = append(remainder, row)
	}
	q.client.store.Replace(q.table, remainder)
	return &Result{Data: removed, Count: len(removed)}
}

func (q *Query) matchRows(rows []dataset.Record) []dataset.Record {
	matched := make([]dataset.Record, 0, len(rows))
	for _, row := range rows {
		if q.rowMatches(row) {
			matched = append(matched, row)
		}
	}
	return matched
}

func (q *Query) rowMatches(row dataset.Record) bool {
	for _, f := range q.filters {
		value, ok := row[f.column]
		if !ok {
			return false
		}
		member := false
		for _, candidate := range f.values {
			if equalValue(value, candidate) {
				member = true
				break
			}
		}
		if !member {
			return false
		}
	}
	return true
}

func (q *Query) lessRows(a, b dataset.Record) bool {
	for _, key := range q.sortKeys {
		cmp := compareValues(a[key.column], b[key.column])
		if cmp == 0 {
			continue
		}
		if key.descending {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}
