// Package dataset holds the in-memory tables backing a demo session.
// There is no schema: whatever shape a row is inserted with is the shape
// it is later read with, and table names are plain strings.
package dataset

import (
	"sort"
	"sync"

	"github.com/vendaspro/demodb/internal/codec"
)

// Record is a single row of a table.
type Record = map[string]any

// Store is the authoritative demo state. Rows keep insertion order, and
// that order is what unordered selects observe. Mutations replace a
// table's backing slice wholesale.
type Store struct {
	mu     sync.RWMutex
	tables map[string][]Record
}

// New creates a Store seeded with the built-in demo fixtures.
func New() *Store {
	return NewWithDataset(seedTables())
}

// NewWithDataset creates a Store bound to the given tables, letting an
// external fixture loader replace the built-in seed data. The tables are
// cloned on the way in; nil means an empty store.
func NewWithDataset(tables map[string][]Record) *Store {
	s := &Store{tables: make(map[string][]Record, len(tables))}
	for name, rows := range tables {
		s.tables[name] = codec.CloneRows(rows)
	}
	return s
}

// Rows returns a deep clone of a table's rows in insertion order. An
// unknown table name yields an empty slice, never an error; a typo in a
// table name therefore reads as "no rows".
func (s *Store) Rows(table string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return codec.CloneRows(s.tables[table])
}

// Len reports the current row count of a table.
func (s *Store) Len(table string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[table])
}

// Tables lists the table names present in the store, sorted.
func (s *Store) Tables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Append adds rows to the end of a table, creating the table if needed.
// No uniqueness or foreign-key validation happens here: duplicate IDs and
// dangling references are the caller's problem, as they are on the real
// backend's permissive demo schema.
func (s *Store) Append(table string, rows ...Record) {
	cloned := codec.CloneRows(rows)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], cloned...)
}

// Replace swaps a table's rows wholesale. Deletes do not cascade: a
// caller removing a lead this way leaves the lead's visits and notes in
// their own tables untouched.
func (s *Store) Replace(table string, rows []Record) {
	cloned := codec.CloneRows(rows)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = cloned
}
