package chattext_test

import (
	"testing"

	chattext "github.com/reoring/chattext"
)

func mustDecode(t *testing.T, node any) chattext.Component {
	t.Helper()
	c, err := chattext.DecodeTree(node)
	if err != nil {
		t.Fatalf("DecodeTree(%v): %v", node, err)
	}
	return c
}

func decodeIssue(t *testing.T, node any, wantCode string) chattext.Issue {
	t.Helper()
	_, err := chattext.DecodeTree(node)
	if err == nil {
		t.Fatalf("DecodeTree(%v): expected error", node)
	}
	iss, ok := chattext.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("DecodeTree(%v): error is not Issues: %v", node, err)
	}
	if iss[0].Code != wantCode {
		t.Fatalf("DecodeTree(%v): code = %q, want %q (%v)", node, iss[0].Code, wantCode, err)
	}
	return iss[0]
}

func TestDecode_StringPrimitive(t *testing.T) {
	c := mustDecode(t, "hello")
	text, ok := c.(chattext.Text)
	if !ok {
		t.Fatalf("got %T, want Text", c)
	}
	if text.Content() != "hello" {
		t.Errorf("content = %q, want %q", text.Content(), "hello")
	}
	if len(c.Children()) != 0 {
		t.Errorf("children = %d, want 0", len(c.Children()))
	}
	if !c.ComponentStyle().IsEmpty() {
		t.Errorf("style is non-empty")
	}
}

func TestDecode_NonStringPrimitivesCoerce(t *testing.T) {
	tests := []struct {
		node any
		want string
	}{
		{true, "true"},
		{false, "false"},
		{float64(1.5), "1.5"},
		{42, "42"},
	}
	for _, tt := range tests {
		c := mustDecode(t, tt.node)
		text, ok := c.(chattext.Text)
		if !ok {
			t.Fatalf("DecodeTree(%v): got %T, want Text", tt.node, c)
		}
		if text.Content() != tt.want {
			t.Errorf("DecodeTree(%v): content = %q, want %q", tt.node, text.Content(), tt.want)
		}
	}
}

func TestDecode_ArrayFlattening(t *testing.T) {
	c := mustDecode(t, []any{"a", "b", "c"})
	text, ok := c.(chattext.Text)
	if !ok {
		t.Fatalf("got %T, want Text", c)
	}
	if text.Content() != "a" {
		t.Errorf("root content = %q, want %q", text.Content(), "a")
	}
	children := c.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	for i, want := range []string{"b", "c"} {
		child, ok := children[i].(chattext.Text)
		if !ok || child.Content() != want {
			t.Errorf("child %d = %v, want Text(%q)", i, children[i], want)
		}
	}
}

func TestDecode_EmptyArrayFails(t *testing.T) {
	issue := decodeIssue(t, []any{}, chattext.CodeUnknownShape)
	if issue.Node == nil {
		t.Errorf("issue does not carry the offending node")
	}
}

func TestDecode_UnrecognizedShapes(t *testing.T) {
	decodeIssue(t, nil, chattext.CodeUnknownShape)
	decodeIssue(t, map[string]any{"bogus": "x"}, chattext.CodeUnknownShape)
}

func TestDecode_DiscriminatorPriority(t *testing.T) {
	// text wins over translate even when both are present
	c := mustDecode(t, map[string]any{
		"translate": "some.key",
		"text":      "literal",
	})
	text, ok := c.(chattext.Text)
	if !ok {
		t.Fatalf("got %T, want Text", c)
	}
	if text.Content() != "literal" {
		t.Errorf("content = %q, want %q", text.Content(), "literal")
	}
}

func TestDecode_TranslatableWithArgs(t *testing.T) {
	c := mustDecode(t, map[string]any{
		"translate": "chat.type.text",
		"with":      []any{"Steve", map[string]any{"text": "hi"}},
	})
	tr, ok := c.(chattext.Translatable)
	if !ok {
		t.Fatalf("got %T, want Translatable", c)
	}
	if tr.Key() != "chat.type.text" {
		t.Errorf("key = %q", tr.Key())
	}
	args := tr.Args()
	if len(args) != 2 {
		t.Fatalf("args = %d, want 2", len(args))
	}
	if first, ok := args[0].(chattext.Text); !ok || first.Content() != "Steve" {
		t.Errorf("args[0] = %v, want Text(Steve)", args[0])
	}
}

func TestDecode_TranslatableWithoutArgs(t *testing.T) {
	c := mustDecode(t, map[string]any{"translate": "menu.quit"})
	tr := c.(chattext.Translatable)
	if len(tr.Args()) != 0 {
		t.Errorf("args = %d, want 0", len(tr.Args()))
	}
}

func TestDecode_ScoreRequiredFields(t *testing.T) {
	issue := decodeIssue(t, map[string]any{
		"score": map[string]any{"name": "n"},
	}, chattext.CodeRequired)
	if issue.Path != "/score" {
		t.Errorf("path = %q, want /score", issue.Path)
	}

	c := mustDecode(t, map[string]any{
		"score": map[string]any{"name": "n", "objective": "o"},
	})
	score, ok := c.(chattext.Score)
	if !ok {
		t.Fatalf("got %T, want Score", c)
	}
	if score.Name() != "n" || score.Objective() != "o" {
		t.Errorf("score = %q/%q", score.Name(), score.Objective())
	}
	if _, ok := score.Value(); ok {
		t.Errorf("value present, want absent")
	}
}

func TestDecode_ScoreLegacyValue(t *testing.T) {
	c := mustDecode(t, map[string]any{
		"score": map[string]any{"name": "n", "objective": "o", "value": "12"},
	})
	value, ok := c.(chattext.Score).Value()
	if !ok || value != "12" {
		t.Errorf("value = %q/%v, want 12/true", value, ok)
	}
}

func TestDecode_SelectorWithSeparator(t *testing.T) {
	c := mustDecode(t, map[string]any{
		"selector":  "@e[type=cow]",
		"separator": map[string]any{"text": ", "},
	})
	sel, ok := c.(chattext.Selector)
	if !ok {
		t.Fatalf("got %T, want Selector", c)
	}
	if sel.Pattern() != "@e[type=cow]" {
		t.Errorf("pattern = %q", sel.Pattern())
	}
	sep, ok := sel.Separator().(chattext.Text)
	if !ok || sep.Content() != ", " {
		t.Errorf("separator = %v, want Text(\", \")", sel.Separator())
	}
}

func TestDecode_Keybind(t *testing.T) {
	c := mustDecode(t, map[string]any{"keybind": "key.jump"})
	kb, ok := c.(chattext.Keybind)
	if !ok || kb.Keybind() != "key.jump" {
		t.Fatalf("got %v (%T), want Keybind(key.jump)", c, c)
	}
}

func TestDecode_NBTSubVariants(t *testing.T) {
	block := mustDecode(t, map[string]any{"nbt": "Items", "block": "1 2 3"})
	if _, ok := block.(chattext.NBTBlock); !ok {
		t.Errorf("nbt+block decoded as %T, want NBTBlock", block)
	}
	entity := mustDecode(t, map[string]any{"nbt": "Health", "entity": "@s"})
	if _, ok := entity.(chattext.NBTEntity); !ok {
		t.Errorf("nbt+entity decoded as %T, want NBTEntity", entity)
	}
	storage := mustDecode(t, map[string]any{"nbt": "data", "storage": "foo:bar"})
	if _, ok := storage.(chattext.NBTStorage); !ok {
		t.Errorf("nbt+storage decoded as %T, want NBTStorage", storage)
	}
	decodeIssue(t, map[string]any{"nbt": "Items"}, chattext.CodeRequired)
}

func TestDecode_NBTInterpretDefaultsFalse(t *testing.T) {
	c := mustDecode(t, map[string]any{"nbt": "Health", "entity": "@s"})
	if c.(chattext.NBTEntity).Interpret() {
		t.Errorf("interpret = true, want false by default")
	}
	c = mustDecode(t, map[string]any{"nbt": "Health", "entity": "@s", "interpret": true})
	if !c.(chattext.NBTEntity).Interpret() {
		t.Errorf("interpret = false, want true")
	}
}

func TestDecode_NBTBlockPosition(t *testing.T) {
	c := mustDecode(t, map[string]any{"nbt": "Items", "block": "~1 2 ~-3"})
	pos, ok := c.(chattext.NBTBlock).Position().(chattext.WorldPos)
	if !ok {
		t.Fatalf("position = %T, want WorldPos", c.(chattext.NBTBlock).Position())
	}
	want := chattext.WorldPos{
		X: chattext.Coordinate{Value: 1, Relative: true},
		Y: chattext.Coordinate{Value: 2},
		Z: chattext.Coordinate{Value: -3, Relative: true},
	}
	if pos != want {
		t.Errorf("position = %v, want %v", pos, want)
	}
}

func TestDecode_NBTEntityDropsSeparator(t *testing.T) {
	// entity lookups do not carry a separator; the field still has to be a
	// well-formed component
	c := mustDecode(t, map[string]any{
		"nbt":       "Health",
		"entity":    "@s",
		"separator": map[string]any{"text": ", "},
	})
	if _, ok := c.(chattext.NBTEntity); !ok {
		t.Fatalf("got %T, want NBTEntity", c)
	}
	decodeIssue(t, map[string]any{
		"nbt":       "Health",
		"entity":    "@s",
		"separator": []any{},
	}, chattext.CodeUnknownShape)
}

func TestDecode_ChildrenAppendOrder(t *testing.T) {
	// variant-implied children (translate args) stay ahead of extra
	c := mustDecode(t, map[string]any{
		"translate": "k",
		"with":      []any{"arg"},
		"extra":     []any{"x", "y"},
	})
	tr := c.(chattext.Translatable)
	if len(tr.Args()) != 1 {
		t.Fatalf("args = %d, want 1", len(tr.Args()))
	}
	children := c.Children()
	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	for i, want := range []string{"x", "y"} {
		if got := children[i].(chattext.Text).Content(); got != want {
			t.Errorf("children[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestDecode_MalformedSubtreeAbortsWhole(t *testing.T) {
	issue := decodeIssue(t, map[string]any{
		"text":  "ok",
		"extra": []any{"fine", map[string]any{"score": map[string]any{"name": "n"}}},
	}, chattext.CodeRequired)
	if issue.Path != "/extra/1/score" {
		t.Errorf("path = %q, want /extra/1/score", issue.Path)
	}
}

func TestDecode_StyleAttaches(t *testing.T) {
	c := mustDecode(t, map[string]any{
		"text":   "styled",
		"bold":   true,
		"italic": false,
		"color":  "red",
	})
	style := c.ComponentStyle()
	if style.IsEmpty() {
		t.Fatalf("style is empty")
	}
	if got := style.Decorations.Get(chattext.Bold); got != chattext.True {
		t.Errorf("bold = %v, want True", got)
	}
	if got := style.Decorations.Get(chattext.Italic); got != chattext.False {
		t.Errorf("italic = %v, want False", got)
	}
	if got := style.Decorations.Get(chattext.Underlined); got != chattext.NotSet {
		t.Errorf("underlined = %v, want NotSet", got)
	}
	if style.Color != "red" {
		t.Errorf("color = %q, want red", style.Color)
	}
}

func TestEncode_StyleHoistedToTopLevel(t *testing.T) {
	c := chattext.NewText("x").WithStyle(chattext.Style{
		Color: "gold",
		Decorations: chattext.DecorationMapOf(map[chattext.Decoration]chattext.State{
			chattext.Bold: chattext.True,
		}),
	})
	obj, ok := chattext.EncodeTree(c).(map[string]any)
	if !ok {
		t.Fatalf("encoded tree is %T, want object", chattext.EncodeTree(c))
	}
	if obj["color"] != "gold" || obj["bold"] != true || obj["text"] != "x" {
		t.Errorf("object = %v", obj)
	}
	if _, ok := obj["style"]; ok {
		t.Errorf("style nested under a style key, want hoisted fields")
	}
}

func TestEncode_OpaqueEventsPassThrough(t *testing.T) {
	event := map[string]any{"action": "open_url", "value": "https://example.org"}
	c := chattext.NewText("x").WithStyle(chattext.Style{ClickEvent: event})
	obj := chattext.EncodeTree(c).(map[string]any)
	if got, ok := obj["clickEvent"].(map[string]any); !ok || got["action"] != "open_url" {
		t.Errorf("clickEvent = %v, want carried through unchanged", obj["clickEvent"])
	}
	back := mustDecode(t, obj)
	if !chattext.Equal(back, c) {
		t.Errorf("event did not survive the round trip")
	}
}

func roundTripComponents() []chattext.Component {
	bold := chattext.Style{
		Decorations: chattext.DecorationMapOf(map[chattext.Decoration]chattext.State{
			chattext.Bold: chattext.True,
		}),
	}
	return []chattext.Component{
		chattext.NewText("plain"),
		chattext.NewText("styled").WithStyle(chattext.Style{Color: "aqua", Font: "minecraft:alt", Insertion: "hi"}),
		chattext.NewText("parent").Append(chattext.NewText("one"), chattext.NewText("two").WithStyle(bold)),
		chattext.NewTranslatable("multiplayer.player.joined", chattext.NewText("Steve")),
		chattext.NewTranslatable("menu.quit"),
		chattext.NewScore("Steve", "kills"),
		chattext.NewScore("Steve", "kills").WithValue("3"),
		chattext.NewSelector("@a"),
		chattext.NewSelector("@e[type=cow]").WithSeparator(chattext.NewText(", ")),
		chattext.NewKeybind("key.inventory"),
		chattext.NewBlockNBT("Items[0]", chattext.WorldPos{
			X: chattext.Coordinate{Value: 1},
			Y: chattext.Coordinate{Value: 2, Relative: true},
			Z: chattext.Coordinate{Value: 3},
		}).WithInterpret(true).WithSeparator(chattext.NewText("; ")),
		chattext.NewBlockNBT("Items", chattext.LocalPos{Left: 1, Up: 2.5, Forwards: -3}),
		chattext.NewEntityNBT("Health", "@s").WithInterpret(true),
		chattext.NewStorageNBT("data.messages", chattext.Key{Namespace: "mymod", Value: "storage"}).
			WithSeparator(chattext.NewText(" | ")),
	}
}

func TestRoundTrip_Tree(t *testing.T) {
	for _, c := range roundTripComponents() {
		back, err := chattext.DecodeTree(chattext.EncodeTree(c))
		if err != nil {
			t.Errorf("decode(encode(%v)): %v", c, err)
			continue
		}
		if !chattext.Equal(back, c) {
			t.Errorf("round trip changed the tree:\n in: %#v\nout: %#v", c, back)
		}
	}
}

func TestRoundTrip_DeepNesting(t *testing.T) {
	c := chattext.Component(chattext.NewText("leaf"))
	for i := 0; i < 64; i++ {
		c = chattext.NewText("level").Append(c)
	}
	back, err := chattext.DecodeTree(chattext.EncodeTree(c))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !chattext.Equal(back, c) {
		t.Errorf("deep tree changed through the round trip")
	}
}
