package chattext

import (
	"fmt"
	"strings"
)

// DefaultNamespace is assumed when a resource key is written without an
// explicit namespace.
const DefaultNamespace = "minecraft"

// Key is a namespaced resource identifier, written on the wire as
// "namespace:value".
type Key struct {
	Namespace string
	Value     string
}

// ParseKey parses the wire form of a resource key. A missing namespace
// defaults to DefaultNamespace.
func ParseKey(s string) (Key, error) {
	namespace, value := DefaultNamespace, s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		namespace, value = s[:i], s[i+1:]
		if namespace == "" {
			namespace = DefaultNamespace
		}
	}
	if !validNamespace(namespace) {
		return Key{}, singleIssue("", CodeInvalidFormat, fmt.Sprintf("invalid key namespace %q", namespace), s)
	}
	if !validKeyValue(value) {
		return Key{}, singleIssue("", CodeInvalidFormat, fmt.Sprintf("invalid key value %q", value), s)
	}
	return Key{Namespace: namespace, Value: value}, nil
}

// String returns the wire form "namespace:value".
func (k Key) String() string { return k.Namespace + ":" + k.Value }

func validNamespace(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !keyChar(s[i]) {
			return false
		}
	}
	return true
}

func validKeyValue(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !keyChar(s[i]) && s[i] != '/' {
			return false
		}
	}
	return true
}

func keyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == '.'
}
