package render

import (
	"io"

	"github.com/fatih/color"

	chattext "github.com/reoring/chattext"
)

// ANSI renders component trees as colored terminal text.
type ANSI struct {
	Out    io.Writer
	Locale string
}

// Render writes the flattened, styled text of c to the output writer.
func (a ANSI) Render(c chattext.Component) error {
	var err error
	Flatten(c, a.Locale, func(text string, style chattext.Style) {
		if err != nil {
			return
		}
		attrs := attributes(style)
		if len(attrs) == 0 {
			_, err = io.WriteString(a.Out, text)
			return
		}
		_, err = color.New(attrs...).Fprint(a.Out, text)
	})
	return err
}

func attributes(style chattext.Style) []color.Attribute {
	var attrs []color.Attribute
	if attr, ok := colorAttributes[style.Color]; ok {
		attrs = append(attrs, attr)
	}
	for _, e := range style.Decorations.Entries() {
		if e.State != chattext.True {
			continue
		}
		if attr, ok := decorationAttributes[e.Decoration]; ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// The sixteen named chat colors mapped onto the base and bright ANSI
// palette.
var colorAttributes = map[string]color.Attribute{
	"black":        color.FgBlack,
	"dark_blue":    color.FgBlue,
	"dark_green":   color.FgGreen,
	"dark_aqua":    color.FgCyan,
	"dark_red":     color.FgRed,
	"dark_purple":  color.FgMagenta,
	"gold":         color.FgYellow,
	"gray":         color.FgWhite,
	"dark_gray":    color.FgHiBlack,
	"blue":         color.FgHiBlue,
	"green":        color.FgHiGreen,
	"aqua":         color.FgHiCyan,
	"red":          color.FgHiRed,
	"light_purple": color.FgHiMagenta,
	"yellow":       color.FgHiYellow,
	"white":        color.FgHiWhite,
}

var decorationAttributes = map[chattext.Decoration]color.Attribute{
	chattext.Bold:          color.Bold,
	chattext.Italic:        color.Italic,
	chattext.Underlined:    color.Underline,
	chattext.Strikethrough: color.CrossedOut,
	chattext.Obfuscated:    color.BlinkSlow,
}
