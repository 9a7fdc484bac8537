package demodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendaspro/demodb/pkg/dataset"
)

func TestDefaultClientUsesSeedFixtures(t *testing.T) {
	t.Parallel()
	client := New(Config{})

	res := client.From("leads").Select("*").Exec(context.Background())
	require.NoError(t, res.Error)
	assert.NotZero(t, res.Count)
}

// The stock screen records a withdrawal as two independent store
// mutations: insert the movement, then update the product quantity.
func TestStockWithdrawalScenario(t *testing.T) {
	t.Parallel()
	client := newTestClient(map[string][]dataset.Record{
		"products": {
			{"id": "p-1", "nome": "Filtro Refil Premium", "quantidade_atual": 12, "quantidade_minima": 5},
		},
		"stock_movements": {},
	})
	ctx := context.Background()

	movement := Record{
		"id":                  GenerateID(),
		"produto_id":          "p-1",
		"usuario_id":          "u-1",
		"tipo":                "saida",
		"quantidade":          5,
		"quantidade_anterior": 12,
		"quantidade_nova":     7,
	}
	ins := client.From("stock_movements").Insert(movement).Exec(ctx)
	require.NoError(t, ins.Error)

	upd := client.From("products").
		Update(Record{"quantidade_atual": 7}).
		Eq("id", "p-1").
		Exec(ctx)
	require.NoError(t, upd.Error)
	require.Equal(t, 1, upd.Count)

	product := client.From("products").Select("*").Eq("id", "p-1").Single().Exec(ctx).First()
	assert.EqualValues(t, 7, product["quantidade_atual"])

	movements := client.From("stock_movements").Select("*").Eq("produto_id", "p-1").Exec(ctx)
	require.Equal(t, 1, movements.Count)
	assert.EqualValues(t, 12, movements.Data[0]["quantidade_anterior"])
	assert.EqualValues(t, 7, movements.Data[0]["quantidade_nova"])
}

// The visits screen lists reports with their lead and specialist
// stitched in.
func TestVisitReportJoinScenario(t *testing.T) {
	t.Parallel()
	client := newTestClient(map[string][]dataset.Record{
		"leads": {
			{"id": "l-1", "nome": "Marcos", "telefone": "(11) 97701-1001"},
			{"id": "l-2", "nome": "Fernanda", "telefone": "(11) 97702-1002"},
		},
		"profiles": {
			{"id": "u-1", "nome": "Carlos"},
		},
		"visit_reports": {
			{"id": "v-1", "lead_id": "l-1", "especialista_id": "u-1", "venda_realizada": true},
		},
	})

	res := client.From("visit_reports").
		Select("*, lead:leads(nome, telefone), especialista:profiles(nome)").
		Exec(context.Background())

	require.NoError(t, res.Error)
	require.Equal(t, 1, res.Count)

	lead, ok := res.Data[0]["lead"].(dataset.Record)
	require.True(t, ok)
	assert.Equal(t, "Marcos", lead["nome"])
	assert.Equal(t, "(11) 97701-1001", lead["telefone"])

	especialista, ok := res.Data[0]["especialista"].(dataset.Record)
	require.True(t, ok)
	assert.Equal(t, "Carlos", especialista["nome"])
}

func TestPermissionMatrixJoin(t *testing.T) {
	t.Parallel()
	client := New(Config{})

	res := client.From("role_module_permissions").
		Select("*, module:modules(nome, titulo)").
		Exec(context.Background())

	require.NoError(t, res.Error)
	require.NotZero(t, res.Count)
	for _, row := range res.Data {
		module, ok := row["module"].(dataset.Record)
		require.True(t, ok, "permission %v should embed its module", row["id"])
		assert.NotEmpty(t, module["nome"])
	}
}

func TestGenerateIDIsUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		require.False(t, seen[id])
		seen[id] = true
	}
}
