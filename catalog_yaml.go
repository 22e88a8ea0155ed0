package mh10

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// LoadCatalogYAML builds a catalog from a YAML document holding a list of
// entries:
//
//	- di: "9N"
//	  title: PPN
//	  description: Regulated pharmaceutical product number
//	  pattern: "[0-9A-Za-z]{5,22}"
//
// Entries may give "key" instead of "di" for reserved identifiers.
func LoadCatalogYAML(raw []byte, opts ...CatalogOption) (MapCatalog, error) {
	var entries []entry
	if err := yaml.UnmarshalStrict(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return buildCatalog(entries, opts)
}
