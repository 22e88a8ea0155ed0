package mh10

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// LoadCatalogJSON builds a catalog from a JSON array of entries:
//
//	[
//	  {"di": "D", "title": "Date", "description": "YYMMDD", "pattern": "\\d{6}"},
//	  {"key": 4, "title": "Function character", "pattern": ".*"}
//	]
//
// A JSON object whose "entries" field holds the array is accepted as well.
// Like LoadCatalogYAML, unknown entry fields and non-integer keys are rejected.
func LoadCatalogJSON(raw []byte, opts ...CatalogOption) (MapCatalog, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidCatalog)
	}

	list := gjson.ParseBytes(raw)
	if list.IsObject() {
		list = list.Get("entries")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected an array of entries", ErrInvalidCatalog)
	}

	var entries []entry
	var bad error
	list.ForEach(func(_, v gjson.Result) bool {
		idx := len(entries)
		if !v.IsObject() {
			bad = fmt.Errorf("%w: entry %d is not an object", ErrInvalidCatalog, idx)
			return false
		}
		v.ForEach(func(field, _ gjson.Result) bool {
			if !entryFields[field.String()] {
				bad = fmt.Errorf("%w: entry %d: unknown field %q", ErrInvalidCatalog, idx, field.String())
				return false
			}
			return true
		})
		if bad != nil {
			return false
		}
		en := entry{
			DI:          v.Get("di").String(),
			Title:       v.Get("title").String(),
			Description: v.Get("description").String(),
			Pattern:     v.Get("pattern").String(),
		}
		if k := v.Get("key"); k.Exists() {
			key, err := strconv.Atoi(k.Raw)
			if k.Type != gjson.Number || err != nil {
				bad = fmt.Errorf("%w: entry %d: key %s is not an integer", ErrInvalidCatalog, idx, k.Raw)
				return false
			}
			en.Key = &key
		}
		entries = append(entries, en)
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return buildCatalog(entries, opts)
}

// entryFields lists the fields an entry may carry.
var entryFields = map[string]bool{
	"di":          true,
	"key":         true,
	"title":       true,
	"description": true,
	"pattern":     true,
}
