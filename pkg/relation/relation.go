// Package relation attaches related rows across tables, imitating the
// foreign-key joins the hosted backend performs server-side. Relations
// are declared as descriptors instead of per-call-site branches, so a new
// join is one table entry, not new code.
package relation

import (
	"github.com/vendaspro/demodb/pkg/dataset"
)

// Descriptor declares a single relation between two tables.
//
// For has-one relations the foreign key lives on the source row:
// target rows are matched on target[TargetColumn] == source[FKColumn].
// For has-many relations the direction flips: every target row whose
// FKColumn equals the source row's TargetColumn is collected.
type Descriptor struct {
	Source       string
	FKColumn     string
	Target       string
	TargetColumn string
	Attach       string
	HasMany      bool
}

// Lookup fetches the current rows of a table, typically a dataset store's
// Rows method.
type Lookup func(table string) []dataset.Record

// Resolver resolves relation requests found in a select spec against a
// set of descriptors.
type Resolver struct {
	// source table -> attach name -> descriptor
	descriptors map[string]map[string]Descriptor
}

// NewResolver builds a Resolver from explicit descriptors.
func NewResolver(descriptors []Descriptor) *Resolver {
	r := &Resolver{descriptors: make(map[string]map[string]Descriptor)}
	for _, d := range descriptors {
		byAttach, ok := r.descriptors[d.Source]
		if !ok {
			byAttach = make(map[string]Descriptor)
			r.descriptors[d.Source] = byAttach
		}
		byAttach[d.Attach] = d
	}
	return r
}

// Default returns a Resolver covering the relations the dashboard uses.
func Default() *Resolver {
	return NewResolver(DefaultDescriptors())
}

// DefaultDescriptors lists the dashboard's known relations.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{Source: "visit_reports", FKColumn: "lead_id", Target: "leads", TargetColumn: "id", Attach: "lead"},
		{Source: "visit_reports", FKColumn: "especialista_id", Target: "profiles", TargetColumn: "id", Attach: "especialista"},
		{Source: "visit_reports", FKColumn: "visit_report_id", Target: "visit_items", TargetColumn: "id", Attach: "visit_items", HasMany: true},
		{Source: "lead_notes", FKColumn: "autor_id", Target: "profiles", TargetColumn: "id", Attach: "autor"},
		{Source: "scheduled_visits", FKColumn: "lead_id", Target: "leads", TargetColumn: "id", Attach: "lead"},
		{Source: "scheduled_visits", FKColumn: "especialista_id", Target: "profiles", TargetColumn: "id", Attach: "especialista"},
		{Source: "stock_movements", FKColumn: "produto_id", Target: "products", TargetColumn: "id", Attach: "produto"},
		{Source: "stock_movements", FKColumn: "usuario_id", Target: "profiles", TargetColumn: "id", Attach: "usuario"},
		{Source: "role_module_permissions", FKColumn: "module_id", Target: "modules", TargetColumn: "id", Attach: "module"},
		{Source: "user_trail_progress", FKColumn: "trail_level_id", Target: "trail_levels", TargetColumn: "id", Attach: "trail_level"},
		{Source: "leads", FKColumn: "responsavel_id", Target: "profiles", TargetColumn: "id", Attach: "responsavel"},
	}
}

// Resolve attaches related rows to every row in the result set, as
// requested by the select spec. Requests with no matching descriptor are
// skipped silently; callers reading the missing property observe nil,
// the same way the hosted client behaves for an unsupported join.
//
// Target tables are scanned linearly per row. Fixture datasets are tiny,
// so no index is kept.
func (r *Resolver) Resolve(table, selectSpec string, rows []dataset.Record, lookup Lookup) []dataset.Record {
	requests := parseRequests(selectSpec)
	if len(requests) == 0 || len(rows) == 0 {
		return rows
	}

	byAttach := r.descriptors[table]
	if byAttach == nil {
		return rows
	}

	for _, req := range requests {
		d, ok := byAttach[req.alias]
		if !ok {
			continue
		}
		targetRows := lookup(d.Target)
		for _, row := range rows {
			if d.HasMany {
				row[req.alias] = collectMany(d, row, targetRows, req.columns)
			} else {
				row[req.alias] = matchOne(d, row, targetRows, req.columns)
			}
		}
	}

	return rows
}

// matchOne finds the first target row the source row points at, or nil
// when the reference dangles.
func matchOne(d Descriptor, row dataset.Record, targetRows []dataset.Record, columns []string) any {
	fk, ok := row[d.FKColumn]
	if !ok || fk == nil {
		return nil
	}
	for _, target := range targetRows {
		if equalValue(target[d.TargetColumn], fk) {
			return project(target, columns)
		}
	}
	return nil
}

// collectMany gathers every target row pointing back at the source row.
func collectMany(d Descriptor, row dataset.Record, targetRows []dataset.Record, columns []string) []dataset.Record {
	key, ok := row[d.TargetColumn]
	if !ok || key == nil {
		return []dataset.Record{}
	}
	matches := []dataset.Record{}
	for _, target := range targetRows {
		if equalValue(target[d.FKColumn], key) {
			matches = append(matches, project(target, columns))
		}
	}
	return matches
}

// project trims an attached row to the requested columns. "*" or an
// empty list keeps the whole row.
func project(row dataset.Record, columns []string) dataset.Record {
	if len(columns) == 0 {
		return row
	}
	out := make(dataset.Record, len(columns))
	for _, col := range columns {
		if col == "*" {
			return row
		}
		out[col] = row[col]
	}
	return out
}

// equalValue compares foreign-key values. IDs are usually strings, but
// numeric keys may arrive as different Go types depending on whether they
// came from fixtures or caller code.
func equalValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
