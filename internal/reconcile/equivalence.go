package reconcile

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sells-group/reconcile-cli/internal/model"
)

//go:embed countries.yaml
var countriesYAML []byte

// countryEquivalences maps folded country-name aliases to the canonical
// spelled-out form. Loaded once at process start, immutable thereafter.
var countryEquivalences map[string]string

func init() {
	if err := yaml.Unmarshal(countriesYAML, &countryEquivalences); err != nil {
		panic("reconcile: parse embedded country table: " + err.Error())
	}
}

// equivalenceFor returns the alias table for a master field, or nil.
// Only country-bearing fields have one today; the table is data, so
// new roles mean new data files, not new logic.
func equivalenceFor(field string) map[string]string {
	if strings.Contains(model.Fold(field), "country") {
		return countryEquivalences
	}
	return nil
}
