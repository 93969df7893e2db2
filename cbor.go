package chattext

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// FromCBOR decodes a CBOR document into a Component. CBOR is the compact
// binary form of the same tree the JSON codec uses.
func FromCBOR(data []byte) (Component, error) {
	var node any
	if err := cbor.Unmarshal(data, &node); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: "invalid CBOR document", Cause: err}}
	}
	norm, err := normalizeTree(node, "")
	if err != nil {
		return nil, err
	}
	return DecodeTree(norm)
}

// ToCBOR encodes a Component as a CBOR document.
func ToCBOR(c Component) ([]byte, error) {
	return cbor.Marshal(EncodeTree(c))
}

// normalizeTree rewrites CBOR's map[any]any containers into the
// map[string]any shape the tree codec consumes. Non-string map keys have no
// place in the component contract and are rejected.
func normalizeTree(node any, path string) (any, error) {
	switch v := node.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, el := range v {
			ks, ok := k.(string)
			if !ok {
				return nil, singleIssue(path, CodeInvalidType, fmt.Sprintf("non-string object key %v", k), node)
			}
			nel, err := normalizeTree(el, path+"/"+ks)
			if err != nil {
				return nil, err
			}
			out[ks] = nel
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, el := range v {
			nel, err := normalizeTree(el, path+"/"+k)
			if err != nil {
				return nil, err
			}
			out[k] = nel
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, el := range v {
			nel, err := normalizeTree(el, fmt.Sprintf("%s/%d", path, i))
			if err != nil {
				return nil, err
			}
			out[i] = nel
		}
		return out, nil
	}
	return node, nil
}
