package identity

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed aliases.yaml
var aliasesYAML []byte

// brandAliases maps short brand domain labels to the full legal or
// trade name they stand for. Loaded once at process start, immutable
// thereafter; extend the data file, not the matching logic.
var brandAliases map[string]string

func init() {
	if err := yaml.Unmarshal(aliasesYAML, &brandAliases); err != nil {
		panic("identity: parse embedded alias table: " + err.Error())
	}
}
