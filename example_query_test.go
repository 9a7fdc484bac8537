package demodb_test

import (
	"context"
	"fmt"

	demodb "github.com/vendaspro/demodb"
	"github.com/vendaspro/demodb/pkg/dataset"
)

func ExampleClient_From() {
	client := demodb.New(demodb.Config{
		Dataset: dataset.NewWithDataset(map[string][]dataset.Record{
			"leads": {
				{"id": "l-1", "nome": "Marcos", "status": "novo", "pontos": 30},
				{"id": "l-2", "nome": "Fernanda", "status": "em_atendimento", "pontos": 10},
				{"id": "l-3", "nome": "Roberto", "status": "novo", "pontos": 20},
			},
		}),
	})

	res := client.From("leads").
		Select("*").
		Eq("status", "novo").
		Order("pontos", demodb.Descending()).
		Exec(context.Background())
	if res.Error != nil {
		panic(res.Error)
	}

	for _, lead := range res.Data {
		fmt.Printf("%s (%v pontos)\n", lead["nome"], lead["pontos"])
	}

	// Output:
	// Marcos (30 pontos)
	// Roberto (20 pontos)
}

func ExampleResult_Into() {
	client := demodb.New(demodb.Config{
		Dataset: dataset.NewWithDataset(map[string][]dataset.Record{
			"products": {
				{"id": "p-1", "nome": "Purificador Vitta", "quantidade_atual": 8},
			},
		}),
	})

	type Product struct {
		Nome            string `json:"nome"`
		QuantidadeAtual int    `json:"quantidade_atual"`
	}

	var product Product
	err := client.From("products").
		Select("*").
		Eq("id", "p-1").
		Single().
		Exec(context.Background()).
		Into(&product)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s: %d em estoque\n", product.Nome, product.QuantidadeAtual)

	// Output:
	// Purificador Vitta: 8 em estoque
}

func ExampleQuery_Insert() {
	client := demodb.New(demodb.Config{
		Dataset: dataset.NewWithDataset(map[string][]dataset.Record{}),
	})
	ctx := context.Background()

	res := client.From("lead_notes").Insert(demodb.Record{
		"id":      "n-1",
		"lead_id": "l-1",
		"texto":   "Ligar amanhã",
	}).Exec(ctx)
	if res.Error != nil {
		panic(res.Error)
	}

	note := client.From("lead_notes").
		Select("*").
		Eq("id", "n-1").
		MaybeSingle().
		Exec(ctx).
		First()
	fmt.Println(note["texto"])

	// Output:
	// Ligar amanhã
}
