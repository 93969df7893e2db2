package chattext

// Style is the full set of visual attributes attached to a Component: the
// decoration map plus the remaining attributes. Click and hover events are
// opaque document subtrees carried through the codec unchanged.
//
// The zero Style is empty. An empty style on a component is legal and simply
// emits no fields.
type Style struct {
	Decorations DecorationMap
	Color       string
	Font        string
	Insertion   string
	ClickEvent  any
	HoverEvent  any
}

// IsEmpty reports whether the style carries no attribute at all.
func (s Style) IsEmpty() bool {
	return s.Decorations == DecorationMap{} &&
		s.Color == "" && s.Font == "" && s.Insertion == "" &&
		s.ClickEvent == nil && s.HoverEvent == nil
}

// MergeStyles layers primary over fallback: scalar attributes take primary's
// value when present, and the decoration maps merge per decoration.
func MergeStyles(primary, fallback Style) Style {
	out := fallback
	out.Decorations = MergeDecorations(primary.Decorations, fallback.Decorations)
	if primary.Color != "" {
		out.Color = primary.Color
	}
	if primary.Font != "" {
		out.Font = primary.Font
	}
	if primary.Insertion != "" {
		out.Insertion = primary.Insertion
	}
	if primary.ClickEvent != nil {
		out.ClickEvent = primary.ClickEvent
	}
	if primary.HoverEvent != nil {
		out.HoverEvent = primary.HoverEvent
	}
	return out
}

const (
	keyColor      = "color"
	keyFont       = "font"
	keyInsertion  = "insertion"
	keyClickEvent = "clickEvent"
	keyHoverEvent = "hoverEvent"
)

// decodeStyle extracts the style attributes co-located in a component object.
// Unrecognized fields are ignored; they belong to the component shape.
func decodeStyle(obj map[string]any, path string) (Style, error) {
	var s Style
	for d := Decoration(0); d < numDecorations; d++ {
		raw, ok := obj[decorationNames[d]]
		if !ok {
			continue
		}
		b, ok := raw.(bool)
		if !ok {
			return Style{}, singleIssue(path+"/"+decorationNames[d], CodeInvalidType, "expected boolean", raw)
		}
		s.Decorations, _ = s.Decorations.With(d, StateOf(b))
	}
	var err error
	if s.Color, err = optionalString(obj, keyColor, path); err != nil {
		return Style{}, err
	}
	if s.Font, err = optionalString(obj, keyFont, path); err != nil {
		return Style{}, err
	}
	if s.Insertion, err = optionalString(obj, keyInsertion, path); err != nil {
		return Style{}, err
	}
	s.ClickEvent = obj[keyClickEvent]
	s.HoverEvent = obj[keyHoverEvent]
	return s, nil
}

// encodeStyle hoists the style attributes into dst, the component object
// under construction.
func encodeStyle(s Style, dst map[string]any) {
	for d := Decoration(0); d < numDecorations; d++ {
		switch s.Decorations.Get(d) {
		case True:
			dst[decorationNames[d]] = true
		case False:
			dst[decorationNames[d]] = false
		}
	}
	if s.Color != "" {
		dst[keyColor] = s.Color
	}
	if s.Font != "" {
		dst[keyFont] = s.Font
	}
	if s.Insertion != "" {
		dst[keyInsertion] = s.Insertion
	}
	if s.ClickEvent != nil {
		dst[keyClickEvent] = s.ClickEvent
	}
	if s.HoverEvent != nil {
		dst[keyHoverEvent] = s.HoverEvent
	}
}

func optionalString(obj map[string]any, key, path string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", nil
	}
	v, ok := raw.(string)
	if !ok {
		return "", singleIssue(path+"/"+key, CodeInvalidType, "expected string", raw)
	}
	return v, nil
}
