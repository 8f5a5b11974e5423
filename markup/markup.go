package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTag indicates an unknown or mismatched tag.
var ErrInvalidTag = errors.New("invalid tag")

func invalidTag(tag, reason string) error {
	return fmt.Errorf("%w [%s]: %s", ErrInvalidTag, tag, reason)
}

// TokenKind identifies a [Token].
type TokenKind int

// Token kinds.
const (
	// TokenText is a run of literal text.
	TokenText TokenKind = iota
	// TokenOpen is an opening tag such as "[bold]".
	TokenOpen
	// TokenClose is a closing tag such as "[/bold]".
	TokenClose
)

// Token is one lexical element of a markup string. For [TokenText], Text
// holds the literal text with escapes resolved. For tags, Tag holds the tag
// name without brackets or slash.
type Token struct {
	Text string
	Tag  string
	Kind TokenKind
}

// Tokenize splits s into tokens in a single left-to-right pass. Adjacent
// literal text, including resolved escapes, is merged into one token.
func Tokenize(s string) []Token {
	var (
		tokens []Token
		text   strings.Builder
	)

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenText, Text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "[["):
			text.WriteByte('[')

			i += 2

		case strings.HasPrefix(s[i:], "]]"):
			text.WriteByte(']')

			i += 2

		case s[i] == '[':
			tag, closing, n := scanTag(s[i:])
			if n == 0 {
				text.WriteByte('[')

				i++

				continue
			}

			flush()

			kind := TokenOpen
			if closing {
				kind = TokenClose
			}

			tokens = append(tokens, Token{Kind: kind, Tag: tag})
			i += n

		default:
			text.WriteByte(s[i])

			i++
		}
	}

	flush()

	return tokens
}

// scanTag matches `\[/?[a-z_]+\]` at the start of s and returns the tag
// name, whether it is a closing tag, and the matched length (0 when s does
// not start with a tag).
func scanTag(s string) (string, bool, int) {
	i := 1

	closing := i < len(s) && s[i] == '/'
	if closing {
		i++
	}

	start := i
	for i < len(s) && (s[i] >= 'a' && s[i] <= 'z' || s[i] == '_') {
		i++
	}

	if i == start || i >= len(s) || s[i] != ']' {
		return "", false, 0
	}

	return s[start:i], closing, i + 1
}

// Render renders markup s into styled text.
func Render(s string) (string, error) {
	return render(s, (*Style).Apply)
}

// MustRender is like [Render] but panics on error. Use it for markup known
// at compile time.
func MustRender(s string) string {
	out, err := Render(s)
	if err != nil {
		panic(err)
	}

	return out
}

// Strip renders s without styling. Tags are still validated.
func Strip(s string) (string, error) {
	return render(s, func(_ *Style, text string) string {
		return text
	})
}

func render(s string, apply func(*Style, string) string) (string, error) {
	var (
		out   strings.Builder
		style Style
	)

	for _, tok := range Tokenize(s) {
		var err error

		switch tok.Kind {
		case TokenText:
			out.WriteString(apply(&style, tok.Text))
		case TokenOpen:
			err = style.Open(tok.Tag)
		case TokenClose:
			err = style.Close(tok.Tag)
		}

		if err != nil {
			return "", err
		}
	}

	return out.String(), nil
}
