// Package chattext models a composable tree of styled display-text
// components and converts it losslessly to and from generic structured
// documents (JSON, YAML, CBOR).
//
// A Component is one node of the tree: plain text, a translatable message
// key with arguments, a scoreboard value, an entity selector, a keybind,
// or an NBT lookup. Every node carries an ordered list of child components
// and an optional Style. Components are immutable; Append and WithStyle
// return new values sharing unrelated subtrees.
//
// The wire representation is the familiar chat-component document shape:
//
//	{"text":"Hello, ","extra":[{"text":"world","bold":true}]}
//
// DecodeTree and EncodeTree transform between Component values and the
// document tree (map[string]any / []any / primitives); FromJSON, FromYAML
// and FromCBOR wrap them for concrete wire formats. Decode errors are
// reported as Issues carrying a JSON Pointer path and the offending node.
package chattext
