package swagger

import (
	json "github.com/goccy/go-json"
)

// Marshal renders a document as compact JSON. Map-valued blocks (models,
// properties) serialize with sorted keys, so output is deterministic.
func Marshal(doc any) ([]byte, error) {
	return json.Marshal(doc)
}

// MarshalIndent renders a document as indented JSON.
func MarshalIndent(doc any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
