package chattext

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// FromJSON decodes a JSON document into a Component.
func FromJSON(data []byte) (Component, error) {
	return FromJSONReader(bytes.NewReader(data))
}

// FromJSONReader decodes a JSON document from r into a Component.
func FromJSONReader(r io.Reader) (Component, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: "invalid JSON document", Cause: err}}
	}
	return DecodeTree(node)
}

// ToJSON encodes a Component as a JSON document.
func ToJSON(c Component) ([]byte, error) {
	return j.Marshal(EncodeTree(c))
}

// ToJSONWriter encodes a Component as a JSON document written to w.
func ToJSONWriter(c Component, w io.Writer) error {
	return j.NewEncoder(w).Encode(EncodeTree(c))
}
