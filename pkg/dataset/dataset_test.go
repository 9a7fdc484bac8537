package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsFixtures(t *testing.T) {
	t.Parallel()
	store := New()

	for _, table := range []string{
		"profiles", "leads", "visit_reports", "visit_items", "products",
		"stock_movements", "roles", "modules", "role_module_permissions",
		"trail_levels", "user_trail_progress", "user_progressions",
		"event_notifications", "remarketing_campaigns", "course_modules",
	} {
		assert.NotZero(t, store.Len(table), "table %q should be seeded", table)
	}
}

func TestNewWithDatasetOverridesSeed(t *testing.T) {
	t.Parallel()
	store := NewWithDataset(map[string][]Record{
		"leads": {{"id": "l-1", "nome": "Teste"}},
	})

	require.Equal(t, 1, store.Len("leads"))
	assert.Zero(t, store.Len("profiles"))
}

func TestUnknownTableReadsAsEmpty(t *testing.T) {
	t.Parallel()
	store := NewWithDataset(nil)

	rows := store.Rows("no_such_table")
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestRowsReturnsClones(t *testing.T) {
	t.Parallel()
	store := NewWithDataset(map[string][]Record{
		"leads": {{"id": "l-1", "status": "novo"}},
	})

	rows := store.Rows("leads")
	rows[0]["status"] = "fechado"

	again := store.Rows("leads")
	assert.Equal(t, "novo", again[0]["status"])
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	store := NewWithDataset(nil)

	store.Append("leads", Record{"id": "l-1"})
	store.Append("leads", Record{"id": "l-2"}, Record{"id": "l-3"})

	rows := store.Rows("leads")
	require.Len(t, rows, 3)
	assert.Equal(t, "l-1", rows[0]["id"])
	assert.Equal(t, "l-2", rows[1]["id"])
	assert.Equal(t, "l-3", rows[2]["id"])
}

func TestAppendDoesNotAliasCallerRecord(t *testing.T) {
	t.Parallel()
	store := NewWithDataset(nil)

	row := Record{"id": "l-1", "status": "novo"}
	store.Append("leads", row)
	row["status"] = "perdido"

	assert.Equal(t, "novo", store.Rows("leads")[0]["status"])
}

func TestReplaceSwapsTableWholesale(t *testing.T) {
	t.Parallel()
	store := NewWithDataset(map[string][]Record{
		"leads": {{"id": "l-1"}, {"id": "l-2"}},
	})

	store.Replace("leads", []Record{{"id": "l-9"}})

	rows := store.Rows("leads")
	require.Len(t, rows, 1)
	assert.Equal(t, "l-9", rows[0]["id"])
}

func TestTablesSorted(t *testing.T) {
	t.Parallel()
	store := NewWithDataset(map[string][]Record{
		"b": {}, "a": {}, "c": {},
	})
	assert.Equal(t, []string{"a", "b", "c"}, store.Tables())
}

func TestSeedForeignKeysResolve(t *testing.T) {
	t.Parallel()
	store := New()

	leadIDs := map[any]bool{}
	for _, lead := range store.Rows("leads") {
		leadIDs[lead["id"]] = true
	}
	for _, report := range store.Rows("visit_reports") {
		assert.True(t, leadIDs[report["lead_id"]],
			"visit report %v references unknown lead %v", report["id"], report["lead_id"])
	}

	productIDs := map[any]bool{}
	for _, product := range store.Rows("products") {
		productIDs[product["id"]] = true
	}
	for _, movement := range store.Rows("stock_movements") {
		assert.True(t, productIDs[movement["produto_id"]],
			"stock movement %v references unknown product %v", movement["id"], movement["produto_id"])
	}
}
