// Package render flattens component trees into text, either plain or
// styled for ANSI terminals.
package render

import (
	"strings"

	chattext "github.com/reoring/chattext"
	"github.com/reoring/chattext/i18n"
)

// Visit receives each flattened text run together with its effective style.
type Visit func(text string, style chattext.Style)

// Flatten walks the component tree depth-first and emits text runs in
// rendering order. Each node's style is layered over its parent's, so a
// run's style is the fully merged one. Translatable components resolve
// their key through the i18n translator for locale, falling back to the
// raw key.
func Flatten(c chattext.Component, locale string, visit Visit) {
	flatten(c, locale, chattext.Style{}, visit)
}

func flatten(c chattext.Component, locale string, parent chattext.Style, visit Visit) {
	style := chattext.MergeStyles(c.ComponentStyle(), parent)

	switch v := c.(type) {
	case chattext.Text:
		if v.Content() != "" {
			visit(v.Content(), style)
		}
	case chattext.Translatable:
		flattenTranslatable(v, locale, style, visit)
	case chattext.Score:
		if value, ok := v.Value(); ok {
			visit(value, style)
		} else {
			visit(v.Name()+":"+v.Objective(), style)
		}
	case chattext.Selector:
		visit(v.Pattern(), style)
	case chattext.Keybind:
		visit(v.Keybind(), style)
	case chattext.NBTBlock:
		visit(v.NBTPath(), style)
	case chattext.NBTEntity:
		visit(v.NBTPath(), style)
	case chattext.NBTStorage:
		visit(v.NBTPath(), style)
	}

	for _, child := range c.Children() {
		flatten(child, locale, style, visit)
	}
}

// flattenTranslatable expands a message template, substituting each "%s"
// placeholder with the next argument's flattened rendering. Unknown keys
// fall back to the key itself so untranslated trees stay legible.
func flattenTranslatable(t chattext.Translatable, locale string, style chattext.Style, visit Visit) {
	template, ok := i18n.T(locale, t.Key())
	if !ok {
		template = t.Key()
	}
	args := t.Args()
	next := 0
	for {
		i := strings.Index(template, "%s")
		if i < 0 {
			break
		}
		if i > 0 {
			visit(template[:i], style)
		}
		if next < len(args) {
			flatten(args[next], locale, style, visit)
			next++
		}
		template = template[i+2:]
	}
	if template != "" {
		visit(template, style)
	}
}

// Plain renders the component tree as unstyled text.
func Plain(c chattext.Component, locale string) string {
	b := &strings.Builder{}
	Flatten(c, locale, func(text string, _ chattext.Style) {
		b.WriteString(text)
	})
	return b.String()
}
