package markup_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/stopwatch/markup"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	text := func(s string) markup.Token { return markup.Token{Kind: markup.TokenText, Text: s} }
	open := func(s string) markup.Token { return markup.Token{Kind: markup.TokenOpen, Tag: s} }
	closeTag := func(s string) markup.Token { return markup.Token{Kind: markup.TokenClose, Tag: s} }

	tcs := map[string]struct {
		input string
		want  []markup.Token
	}{
		"empty": {
			input: "",
			want:  nil,
		},
		"plain text": {
			input: "hello",
			want:  []markup.Token{text("hello")},
		},
		"tags": {
			input: "[bold]x[/bold]",
			want:  []markup.Token{open("bold"), text("x"), closeTag("bold")},
		},
		"escapes merge into text": {
			input: "[[literal]]",
			want:  []markup.Token{text("[literal]")},
		},
		"escape before tag": {
			input: "[[[blue]m[/blue]]]",
			want:  []markup.Token{text("["), open("blue"), text("m"), closeTag("blue"), text("]")},
		},
		"lone brackets are literal": {
			input: "a[1] ] [B] [",
			want:  []markup.Token{text("a[1] ] [B] [")},
		},
		"underscore tag": {
			input: "[light_blue]x",
			want:  []markup.Token{open("light_blue"), text("x")},
		},
		"empty tag name is literal": {
			input: "[]x[/]",
			want:  []markup.Token{text("[]x[/]")},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, markup.Tokenize(tc.input))
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"plain text": {
			input: "plain",
			want:  "plain",
		},
		"bold": {
			input: "[bold]x[/bold]",
			want:  markup.Colorize("x", markup.NoColor, markup.Bold),
		},
		"escaped brackets": {
			input: "[[literal]]",
			want:  "[literal]",
		},
		"nested color and attribute": {
			input: "[bold]a[red]b[/red]c[/bold]",
			want:  "\x1b[1ma\x1b[m\x1b[1;31mb\x1b[m\x1b[1mc\x1b[m",
		},
		"attribute order follows opening order": {
			input: "[underline][bold]x",
			want:  markup.Colorize("x", markup.NoColor, markup.Underline, markup.Bold),
		},
		"color replaced by later color": {
			input: "[red][green]x[/green]y",
			want:  markup.Colorize("x", markup.Green) + "y",
		},
		"unclosed tags are allowed": {
			input: "[blue]x",
			want:  markup.Colorize("x", markup.Blue),
		},
		"default report prefix": {
			input: "[bold][[[blue]mod[/blue]:[green]fn[/green]]][/bold]",
			want: markup.Colorize("[", markup.NoColor, markup.Bold) +
				markup.Colorize("mod", markup.Blue, markup.Bold) +
				markup.Colorize(":", markup.NoColor, markup.Bold) +
				markup.Colorize("fn", markup.Green, markup.Bold) +
				markup.Colorize("]", markup.NoColor, markup.Bold),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := markup.Render(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRenderInvalidTag(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
	}{
		"unknown opening tag":      {input: "[sparkle]x"},
		"unknown closing tag":      {input: "x[/sparkle]"},
		"close unopened attribute": {input: "x[/bold]"},
		"close unopened color":     {input: "x[/red]"},
		"close different color":    {input: "[red]x[/blue]"},
		"close attribute twice":    {input: "[bold]x[/bold][/bold]"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := markup.Render(tc.input)
			require.ErrorIs(t, err, markup.ErrInvalidTag)

			_, err = markup.Strip(tc.input)
			require.ErrorIs(t, err, markup.ErrInvalidTag)
		})
	}
}

func TestMustRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", markup.MustRender("ok"))
	assert.Panics(t, func() { markup.MustRender("[nope]") })
}

func TestStrip(t *testing.T) {
	t.Parallel()

	got, err := markup.Strip("[bold][[[blue]mod[/blue]]][/bold] ~ [magenta]1s[/magenta]")
	require.NoError(t, err)
	assert.Equal(t, "[mod] ~ 1s", got)
}

func TestColorize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		text  string
		want  string
		attrs []markup.Attribute
		color markup.Color
	}{
		"plain":      {text: "text", color: markup.NoColor, want: "text"},
		"empty":      {text: "", color: markup.Red, attrs: []markup.Attribute{markup.Bold}, want: ""},
		"bold red":   {text: "x", color: markup.Red, attrs: []markup.Attribute{markup.Bold}, want: "\x1b[1;31mx\x1b[m"},
		"black":      {text: "x", color: markup.Black, want: "\x1b[30mx\x1b[m"},
		"grey":       {text: "x", color: markup.Grey, want: "\x1b[30mx\x1b[m"},
		"light grey": {text: "x", color: markup.LightGrey, want: "\x1b[37mx\x1b[m"},
		"dark grey":  {text: "x", color: markup.DarkGrey, want: "\x1b[90mx\x1b[m"},
		"light blue": {text: "x", color: markup.LightBlue, want: "\x1b[94mx\x1b[m"},
		"white":      {text: "x", color: markup.White, want: "\x1b[97mx\x1b[m"},
		"dark":       {text: "x", attrs: []markup.Attribute{markup.Dark}, want: "\x1b[2mx\x1b[m"},
		"italic":     {text: "x", attrs: []markup.Attribute{markup.Italic}, want: "\x1b[3mx\x1b[m"},
		"underline":  {text: "x", attrs: []markup.Attribute{markup.Underline}, want: "\x1b[4mx\x1b[m"},
		"blink":      {text: "x", attrs: []markup.Attribute{markup.Blink}, want: "\x1b[5mx\x1b[m"},
		"reverse":    {text: "x", attrs: []markup.Attribute{markup.Reverse}, want: "\x1b[7mx\x1b[m"},
		"concealed":  {text: "x", attrs: []markup.Attribute{markup.Concealed}, want: "\x1b[8mx\x1b[m"},
		"strike":     {text: "x", attrs: []markup.Attribute{markup.Strike}, want: "\x1b[9mx\x1b[m"},
		"attrs ordered": {
			text:  "x",
			color: markup.Cyan,
			attrs: []markup.Attribute{markup.Underline, markup.Bold},
			want:  "\x1b[4;1;36mx\x1b[m",
		},
		"multi-line": {
			text:  "a\nlonger line",
			attrs: []markup.Attribute{markup.Bold},
			want:  "\x1b[1ma\nlonger line\x1b[m",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, markup.Colorize(tc.text, tc.color, tc.attrs...))
		})
	}
}

func TestRenderKeepsText(t *testing.T) {
	t.Parallel()

	const src = "[bold]a\nlonger line[/bold]\n[red]x  [/red]"

	got, err := markup.Render(src)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1ma\nlonger line\x1b[m\n\x1b[31mx  \x1b[m", got)

	stripped, err := markup.Strip(src)
	require.NoError(t, err)
	assert.Equal(t, "a\nlonger line\nx  ", stripped)
	assert.Equal(t, stripped, ansi.Strip(got))
}

func TestParseNames(t *testing.T) {
	t.Parallel()

	for _, c := range []markup.Color{
		markup.Black, markup.Grey, markup.Red, markup.Green, markup.Yellow,
		markup.Blue, markup.Magenta, markup.Cyan, markup.LightGrey,
		markup.DarkGrey, markup.LightRed, markup.LightGreen,
		markup.LightYellow, markup.LightBlue, markup.LightMagenta,
		markup.LightCyan, markup.White,
	} {
		got, ok := markup.ParseColor(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	for _, a := range []markup.Attribute{
		markup.Bold, markup.Dark, markup.Italic, markup.Underline,
		markup.Blink, markup.Reverse, markup.Concealed, markup.Strike,
	} {
		got, ok := markup.ParseAttribute(a.String())
		require.True(t, ok, a.String())
		assert.Equal(t, a, got)
	}

	_, ok := markup.ParseColor("bold")
	assert.False(t, ok)

	_, ok = markup.ParseAttribute("red")
	assert.False(t, ok)
}
