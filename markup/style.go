package markup

import (
	"slices"

	"github.com/charmbracelet/x/ansi"
)

// Color is a terminal foreground color. The zero value is [NoColor].
type Color int

// Colors.
const (
	NoColor Color = iota
	Black
	Grey
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	LightGrey
	DarkGrey
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	White
)

var colorNames = map[Color]string{
	Black:        "black",
	Grey:         "grey",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Blue:         "blue",
	Magenta:      "magenta",
	Cyan:         "cyan",
	LightGrey:    "light_grey",
	DarkGrey:     "dark_grey",
	LightRed:     "light_red",
	LightGreen:   "light_green",
	LightYellow:  "light_yellow",
	LightBlue:    "light_blue",
	LightMagenta: "light_magenta",
	LightCyan:    "light_cyan",
	White:        "white",
}

// ANSI palette entry of each color. Black and grey share an entry.
var colorCodes = map[Color]ansi.BasicColor{
	Black:        ansi.Black,
	Grey:         ansi.Black,
	Red:          ansi.Red,
	Green:        ansi.Green,
	Yellow:       ansi.Yellow,
	Blue:         ansi.Blue,
	Magenta:      ansi.Magenta,
	Cyan:         ansi.Cyan,
	LightGrey:    ansi.White,
	DarkGrey:     ansi.BrightBlack,
	LightRed:     ansi.BrightRed,
	LightGreen:   ansi.BrightGreen,
	LightYellow:  ansi.BrightYellow,
	LightBlue:    ansi.BrightBlue,
	LightMagenta: ansi.BrightMagenta,
	LightCyan:    ansi.BrightCyan,
	White:        ansi.BrightWhite,
}

// String returns the tag name of c, or "" for [NoColor].
func (c Color) String() string {
	return colorNames[c]
}

// ParseColor returns the [Color] named by a tag.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}

	return NoColor, false
}

// Attribute is a terminal text attribute.
type Attribute int

// Attributes.
const (
	Bold Attribute = iota + 1
	Dark
	Italic
	Underline
	Blink
	Reverse
	Concealed
	Strike
)

var attributeNames = map[Attribute]string{
	Bold:      "bold",
	Dark:      "dark",
	Italic:    "italic",
	Underline: "underline",
	Blink:     "blink",
	Reverse:   "reverse",
	Concealed: "concealed",
	Strike:    "strike",
}

// String returns the tag name of a.
func (a Attribute) String() string {
	return attributeNames[a]
}

// ParseAttribute returns the [Attribute] named by a tag.
func ParseAttribute(name string) (Attribute, bool) {
	for a, n := range attributeNames {
		if n == name {
			return a, true
		}
	}

	return 0, false
}

// Colorize styles text with attrs, in order, and color as one SGR
// sequence followed by a reset. The text itself is never changed. With no
// color and no attributes, text is returned as is. Colorize has no hidden
// state.
func Colorize(text string, color Color, attrs ...Attribute) string {
	if text == "" || (color == NoColor && len(attrs) == 0) {
		return text
	}

	var style ansi.Style

	for _, a := range attrs {
		switch a {
		case Bold:
			style = style.Bold()
		case Dark:
			style = style.Faint()
		case Italic:
			style = style.Italic(true)
		case Underline:
			style = style.Underline(true)
		case Blink:
			style = style.Blink(true)
		case Reverse:
			style = style.Reverse(true)
		case Concealed:
			style = style.Conceal(true)
		case Strike:
			style = style.Strikethrough(true)
		}
	}

	if code, ok := colorCodes[color]; ok {
		style = style.ForegroundColor(code)
	}

	return style.Styled(text)
}

// Style is the color and attribute set in effect at a point of a markup
// string.
type Style struct {
	Attributes []Attribute
	Color      Color
}

// Apply styles text with s.
func (s *Style) Apply(text string) string {
	return Colorize(text, s.Color, s.Attributes...)
}

// Open applies an opening tag.
func (s *Style) Open(tag string) error {
	if c, ok := ParseColor(tag); ok {
		s.Color = c

		return nil
	}

	if a, ok := ParseAttribute(tag); ok {
		if !slices.Contains(s.Attributes, a) {
			s.Attributes = append(s.Attributes, a)
		}

		return nil
	}

	return invalidTag(tag, "unknown tag")
}

// Close applies a closing tag. Closing a color or attribute that is not in
// effect fails with [ErrInvalidTag].
func (s *Style) Close(tag string) error {
	if c, ok := ParseColor(tag); ok {
		if s.Color != c {
			return invalidTag("/"+tag, "color is not open")
		}

		s.Color = NoColor

		return nil
	}

	if a, ok := ParseAttribute(tag); ok {
		i := slices.Index(s.Attributes, a)
		if i < 0 {
			return invalidTag("/"+tag, "attribute is not open")
		}

		s.Attributes = slices.Delete(s.Attributes, i, i+1)

		return nil
	}

	return invalidTag("/"+tag, "unknown tag")
}
