// Package markup renders a small tag language into terminal-styled text.
//
// Tags wrap literal text in colors and attributes:
//
//	[bold][blue]module[/blue]:[green]name[/green][/bold]
//
// An opening tag "[name]" sets a [Color] or adds an [Attribute]; the
// matching closing tag "[/name]" clears it again. "[[" and "]]" render a
// literal "[" and "]". Every other character is literal text.
//
// [Render] processes its input in a single left-to-right pass and passes
// each run of literal text through [Colorize] with the style in effect at
// that point. Unknown tags, and closing tags that do not match an open tag,
// fail with [ErrInvalidTag]:
//
//	out, err := markup.Render("[bold]done[/bold] in [magenta]1.2s[/magenta]")
//
// Styling is produced with [github.com/charmbracelet/x/ansi] SGR sequences.
// [Colorize] is a pure function: it only wraps text in escape codes and
// never inspects the terminal. Downsampling to the
// capabilities of the output is the job of the writer the result is sent
// to.
package markup
