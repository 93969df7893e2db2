package chattext

import "gopkg.in/yaml.v3"

// FromYAML decodes a YAML document into a Component. Components authored in
// YAML (message files, plugin configuration) share the exact field contract
// of the JSON form.
func FromYAML(data []byte) (Component, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, Issues{{Code: CodeParseError, Message: "invalid YAML document", Cause: err}}
	}
	return DecodeTree(node)
}

// ToYAML encodes a Component as a YAML document.
func ToYAML(c Component) ([]byte, error) {
	return yaml.Marshal(EncodeTree(c))
}
