package chattext

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnknownShape reports a document node that matches none of the
	// component shapes (not a primitive, not a non-empty array, not an
	// object with a recognized discriminator field).
	CodeUnknownShape = "unknown_shape"
	// CodeRequired reports an object that matched a component shape by its
	// discriminator but is missing a field that shape requires.
	CodeRequired = "required"
	// CodeInvalidType reports a field whose value has the wrong type.
	CodeInvalidType = "invalid_type"
	// CodeInvalidFormat reports a malformed atomic value (resource key,
	// block position).
	CodeInvalidFormat = "invalid_format"
	// CodeInvalidEnum reports an out-of-range decoration or state.
	CodeInvalidEnum = "invalid_enum"
	// CodeParseError reports a failure in the underlying document parser.
	CodeParseError = "parse_error"
)

// Issue represents a single decode failure.
type Issue struct {
	Path    string // JSON Pointer into the document (for example: /extra/2/score).
	Code    string // One of the codes listed above.
	Message string
	Node    any   // The offending document subtree, when available.
	Cause   error // Optional: underlying error.
}

// Issues is a collection of decode errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_shape at /extra/0
		fmt.Fprintf(b, "%s at %s", it.Code, pointerOrRoot(it.Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(path, code, msg string, node any) Issues {
	return Issues{{Path: path, Code: code, Message: msg, Node: node}}
}
