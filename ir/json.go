package ir

import (
	"bytes"
	"encoding/json"
)

// ToJSON marshals the tree rooted at n through the classifier, so numbers,
// booleans and nulls render as JSON numbers, booleans and nulls.
func ToJSON(n Node) ([]byte, error) {
	return json.Marshal(ToAny(n))
}

// FromJSON builds a node tree from JSON data. Numbers keep their source
// text, so integers beyond float64 precision survive.
func FromJSON(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
