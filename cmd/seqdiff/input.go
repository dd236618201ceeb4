package main

import (
	"errors"

	"github.com/tidwall/gjson"
)

// jsonElements extracts the raw text of every element of a top-level JSON
// array. The elements are compared positionally by their raw source text, so
// formatting differences count as changes.
func jsonElements(doc []byte) ([]string, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.New("invalid JSON")
	}
	v := gjson.ParseBytes(doc)
	if !v.IsArray() {
		return nil, errors.New("not a JSON array")
	}
	var elems []string
	for _, e := range v.Array() {
		elems = append(elems, e.Raw)
	}
	return elems, nil
}
