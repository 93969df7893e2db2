package chattext

import "fmt"

// Decoration is a binary-ish visual text attribute. It is represented as a
// tri-state rather than a plain boolean so that "unset" (inherit from the
// surrounding context) stays distinguishable from an explicit off.
type Decoration uint8

const (
	Bold Decoration = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated

	numDecorations = 5
)

var decorationNames = [numDecorations]string{
	"bold", "italic", "underlined", "strikethrough", "obfuscated",
}

func (d Decoration) String() string {
	if d < numDecorations {
		return decorationNames[d]
	}
	return fmt.Sprintf("decoration(%d)", uint8(d))
}

// State is the tri-state value of a decoration. The zero value is NotSet.
type State uint8

const (
	NotSet State = iota
	False
	True

	numStates = 3
)

func (s State) String() string {
	switch s {
	case NotSet:
		return "not_set"
	case False:
		return "false"
	case True:
		return "true"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// StateOf converts a wire boolean into its explicit state.
func StateOf(b bool) State {
	if b {
		return True
	}
	return False
}

// DecorationMap is an immutable, total mapping from every Decoration to a
// State. The domain is universal: all decorations are always present, with
// NotSet as the default, so Size is always 5 and IsEmpty is always false.
// Consumers must not assume the missing-key semantics of ordinary maps.
//
// States occupy two bits each inside a single packed integer, which keeps
// per-style allocation at zero and makes equality a plain == compare. The
// zero value maps every decoration to NotSet.
type DecorationMap struct {
	bits uint16
}

// DecorationMapOf builds a map from an explicit decoration-to-state mapping.
// Decorations absent from m default to NotSet.
func DecorationMapOf(m map[Decoration]State) DecorationMap {
	var bits uint16
	for d := Decoration(0); d < numDecorations; d++ {
		bits |= uint16(m[d]) << (d * 2)
	}
	return DecorationMap{bits: bits}
}

// MergeDecorations layers primary over fallback: for each decoration the
// result takes primary's state when set, else fallback's state, else NotSet.
// Neither input is modified.
func MergeDecorations(primary, fallback DecorationMap) DecorationMap {
	var bits uint16
	for d := Decoration(0); d < numDecorations; d++ {
		s := primary.Get(d)
		if s == NotSet {
			s = fallback.Get(d)
		}
		bits |= uint16(s) << (d * 2)
	}
	return DecorationMap{bits: bits}
}

// Get returns the state of d. Decorations never set report NotSet; there is
// no not-found case because the domain is universal.
func (m DecorationMap) Get(d Decoration) State {
	return State(m.bits >> (d * 2) & 0b11)
}

// With returns a copy of the map with d set to s. The receiver is not
// modified. Out-of-range arguments are contract violations and reported as
// an invalid-argument issue.
func (m DecorationMap) With(d Decoration, s State) (DecorationMap, error) {
	if d >= numDecorations {
		return DecorationMap{}, singleIssue("", CodeInvalidEnum, fmt.Sprintf("unknown decoration %q", d), nil)
	}
	if s >= numStates {
		return DecorationMap{}, singleIssue("", CodeInvalidEnum, fmt.Sprintf("unknown state %q", s), nil)
	}
	off := d * 2
	// 'reset' the two state bits, then or in the new ordinal
	return DecorationMap{bits: m.bits&^(0b11<<off) | uint16(s)<<off}, nil
}

// Size is always the full decoration count.
func (m DecorationMap) Size() int { return numDecorations }

// IsEmpty is always false; every decoration exists with at least NotSet.
func (m DecorationMap) IsEmpty() bool { return false }

// Contains reports whether d addresses a decoration in the universal domain.
func (m DecorationMap) Contains(d Decoration) bool { return d < numDecorations }

// Decorations enumerates all decorations in ordinal order.
func (m DecorationMap) Decorations() []Decoration {
	ds := make([]Decoration, numDecorations)
	for d := Decoration(0); d < numDecorations; d++ {
		ds[d] = d
	}
	return ds
}

// States enumerates the state of every decoration in ordinal order.
func (m DecorationMap) States() []State {
	ss := make([]State, numDecorations)
	for d := Decoration(0); d < numDecorations; d++ {
		ss[d] = m.Get(d)
	}
	return ss
}

// DecorationEntry pairs a decoration with its state for enumeration.
type DecorationEntry struct {
	Decoration Decoration
	State      State
}

// Entries enumerates every decoration with its state in ordinal order.
func (m DecorationMap) Entries() []DecorationEntry {
	es := make([]DecorationEntry, numDecorations)
	for d := Decoration(0); d < numDecorations; d++ {
		es[d] = DecorationEntry{Decoration: d, State: m.Get(d)}
	}
	return es
}
