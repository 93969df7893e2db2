package chattext

import "reflect"

// Component is one node of a display-text tree. Exactly one of the concrete
// variants (Text, Translatable, Score, Selector, Keybind, NBTBlock,
// NBTEntity, NBTStorage) is active per node; children and style are
// orthogonal to the variant and legal on all of them.
//
// Components are immutable once built. Append and WithStyle return new
// values; unrelated subtrees are shared, never copied.
type Component interface {
	// Children returns the ordered child components. Rendering order
	// matters. The returned slice must not be modified.
	Children() []Component
	// ComponentStyle returns the style attached to this node. The zero
	// Style means no styling.
	ComponentStyle() Style
	// Append returns a copy of this component with the given children
	// appended after the existing ones.
	Append(children ...Component) Component
	// WithStyle returns a copy of this component carrying s.
	WithStyle(s Style) Component

	isComponent()
}

// base carries the fields shared by every variant.
type base struct {
	children []Component
	style    Style
}

func (b base) Children() []Component { return b.children }
func (b base) ComponentStyle() Style { return b.style }
func (base) isComponent()            {}

func (b base) appended(children []Component) base {
	next := make([]Component, 0, len(b.children)+len(children))
	next = append(next, b.children...)
	next = append(next, children...)
	return base{children: next, style: b.style}
}

func (b base) styled(s Style) base {
	return base{children: b.children, style: s}
}

// Text is a literal text component.
type Text struct {
	base
	content string
}

// NewText builds a text component with the given literal content.
func NewText(content string) Text { return Text{content: content} }

func (t Text) Content() string { return t.content }

func (t Text) Append(children ...Component) Component {
	t.base = t.base.appended(children)
	return t
}

func (t Text) WithStyle(s Style) Component {
	t.base = t.base.styled(s)
	return t
}

// Translatable is a component rendered by looking up a translation key and
// substituting the ordered arguments into it.
type Translatable struct {
	base
	key  string
	args []Component
}

// NewTranslatable builds a translatable component for key with the given
// arguments (may be none).
func NewTranslatable(key string, args ...Component) Translatable {
	return Translatable{key: key, args: args}
}

func (t Translatable) Key() string       { return t.key }
func (t Translatable) Args() []Component { return t.args }

func (t Translatable) Append(children ...Component) Component {
	t.base = t.base.appended(children)
	return t
}

func (t Translatable) WithStyle(s Style) Component {
	t.base = t.base.styled(s)
	return t
}

// Score displays a scoreboard value for name under objective. The value
// field is a deprecated legacy override kept for wire compatibility.
type Score struct {
	base
	name      string
	objective string
	value     string
	hasValue  bool
}

// NewScore builds a score component for name and objective.
func NewScore(name, objective string) Score {
	return Score{name: name, objective: objective}
}

func (s Score) Name() string      { return s.name }
func (s Score) Objective() string { return s.objective }

// Value returns the legacy value override, when present.
func (s Score) Value() (string, bool) { return s.value, s.hasValue }

// WithValue returns a copy carrying the legacy value override.
func (s Score) WithValue(value string) Score {
	s.value = value
	s.hasValue = true
	return s
}

func (s Score) Append(children ...Component) Component {
	s.base = s.base.appended(children)
	return s
}

func (s Score) WithStyle(st Style) Component {
	s.base = s.base.styled(st)
	return s
}

// Selector displays the names of the entities matched by a selector
// pattern, joined by the optional separator.
type Selector struct {
	base
	pattern   string
	separator Component
}

// NewSelector builds a selector component for the given pattern.
func NewSelector(pattern string) Selector { return Selector{pattern: pattern} }

func (s Selector) Pattern() string      { return s.pattern }
func (s Selector) Separator() Component { return s.separator }

// WithSeparator returns a copy carrying the separator component.
func (s Selector) WithSeparator(sep Component) Selector {
	s.separator = sep
	return s
}

func (s Selector) Append(children ...Component) Component {
	s.base = s.base.appended(children)
	return s
}

func (s Selector) WithStyle(st Style) Component {
	s.base = s.base.styled(st)
	return s
}

// Keybind displays the key bound to a named client action.
type Keybind struct {
	base
	keybind string
}

// NewKeybind builds a keybind component for the given binding name.
func NewKeybind(keybind string) Keybind { return Keybind{keybind: keybind} }

func (k Keybind) Keybind() string { return k.keybind }

func (k Keybind) Append(children ...Component) Component {
	k.base = k.base.appended(children)
	return k
}

func (k Keybind) WithStyle(s Style) Component {
	k.base = k.base.styled(s)
	return k
}

// NBTBlock displays data looked up at an NBT path in the block at a
// position, joined by the optional separator.
type NBTBlock struct {
	base
	path      string
	interpret bool
	separator Component
	pos       Pos
}

// NewBlockNBT builds a block NBT component for path at pos.
func NewBlockNBT(path string, pos Pos) NBTBlock {
	return NBTBlock{path: path, pos: pos}
}

func (n NBTBlock) NBTPath() string      { return n.path }
func (n NBTBlock) Interpret() bool      { return n.interpret }
func (n NBTBlock) Separator() Component { return n.separator }
func (n NBTBlock) Position() Pos        { return n.pos }

// WithInterpret returns a copy with the interpret flag set to v.
func (n NBTBlock) WithInterpret(v bool) NBTBlock {
	n.interpret = v
	return n
}

// WithSeparator returns a copy carrying the separator component.
func (n NBTBlock) WithSeparator(sep Component) NBTBlock {
	n.separator = sep
	return n
}

func (n NBTBlock) Append(children ...Component) Component {
	n.base = n.base.appended(children)
	return n
}

func (n NBTBlock) WithStyle(s Style) Component {
	n.base = n.base.styled(s)
	return n
}

// NBTEntity displays data looked up at an NBT path in the entities matched
// by a selector. Unlike its block and storage siblings it carries no
// separator; the wire encoder has never written one for entity lookups.
type NBTEntity struct {
	base
	path      string
	interpret bool
	selector  string
}

// NewEntityNBT builds an entity NBT component for path on the entities
// matched by selector.
func NewEntityNBT(path, selector string) NBTEntity {
	return NBTEntity{path: path, selector: selector}
}

func (n NBTEntity) NBTPath() string  { return n.path }
func (n NBTEntity) Interpret() bool  { return n.interpret }
func (n NBTEntity) Selector() string { return n.selector }

// WithInterpret returns a copy with the interpret flag set to v.
func (n NBTEntity) WithInterpret(v bool) NBTEntity {
	n.interpret = v
	return n
}

func (n NBTEntity) Append(children ...Component) Component {
	n.base = n.base.appended(children)
	return n
}

func (n NBTEntity) WithStyle(s Style) Component {
	n.base = n.base.styled(s)
	return n
}

// NBTStorage displays data looked up at an NBT path in a named command
// storage, joined by the optional separator.
type NBTStorage struct {
	base
	path      string
	interpret bool
	separator Component
	storage   Key
}

// NewStorageNBT builds a storage NBT component for path in storage.
func NewStorageNBT(path string, storage Key) NBTStorage {
	return NBTStorage{path: path, storage: storage}
}

func (n NBTStorage) NBTPath() string      { return n.path }
func (n NBTStorage) Interpret() bool      { return n.interpret }
func (n NBTStorage) Separator() Component { return n.separator }
func (n NBTStorage) Storage() Key         { return n.storage }

// WithInterpret returns a copy with the interpret flag set to v.
func (n NBTStorage) WithInterpret(v bool) NBTStorage {
	n.interpret = v
	return n
}

// WithSeparator returns a copy carrying the separator component.
func (n NBTStorage) WithSeparator(sep Component) NBTStorage {
	n.separator = sep
	return n
}

func (n NBTStorage) Append(children ...Component) Component {
	n.base = n.base.appended(children)
	return n
}

func (n NBTStorage) WithStyle(s Style) Component {
	n.base = n.base.styled(s)
	return n
}

// Equal reports structural equality: same variant, same field values, same
// children in order, same style, same optional separator. Opaque style
// event subtrees compare deeply.
func Equal(a, b Component) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !styleEqual(a.ComponentStyle(), b.ComponentStyle()) {
		return false
	}
	if !childrenEqual(a.Children(), b.Children()) {
		return false
	}
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av.content == bv.content
	case Translatable:
		bv, ok := b.(Translatable)
		return ok && av.key == bv.key && childrenEqual(av.args, bv.args)
	case Score:
		bv, ok := b.(Score)
		return ok && av.name == bv.name && av.objective == bv.objective &&
			av.hasValue == bv.hasValue && av.value == bv.value
	case Selector:
		bv, ok := b.(Selector)
		return ok && av.pattern == bv.pattern && Equal(av.separator, bv.separator)
	case Keybind:
		bv, ok := b.(Keybind)
		return ok && av.keybind == bv.keybind
	case NBTBlock:
		bv, ok := b.(NBTBlock)
		return ok && av.path == bv.path && av.interpret == bv.interpret &&
			reflect.DeepEqual(av.pos, bv.pos) && Equal(av.separator, bv.separator)
	case NBTEntity:
		bv, ok := b.(NBTEntity)
		return ok && av.path == bv.path && av.interpret == bv.interpret &&
			av.selector == bv.selector
	case NBTStorage:
		bv, ok := b.(NBTStorage)
		return ok && av.path == bv.path && av.interpret == bv.interpret &&
			av.storage == bv.storage && Equal(av.separator, bv.separator)
	}
	return false
}

func childrenEqual(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func styleEqual(a, b Style) bool {
	return a.Decorations == b.Decorations &&
		a.Color == b.Color && a.Font == b.Font && a.Insertion == b.Insertion &&
		reflect.DeepEqual(a.ClickEvent, b.ClickEvent) &&
		reflect.DeepEqual(a.HoverEvent, b.HoverEvent)
}
