package dataset

import (
	_ "embed"

	"github.com/goccy/go-json"
)

//go:embed fixtures.json
var fixturesJSON []byte

// seedTables decodes the embedded demo fixtures. The file ships with the
// build, so a decode failure is a programming error.
func seedTables() map[string][]Record {
	tables := make(map[string][]Record)
	if err := json.Unmarshal(fixturesJSON, &tables); err != nil {
		panic("dataset: embedded fixtures are invalid: " + err.Error())
	}
	return tables
}
