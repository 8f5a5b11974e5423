package profile

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.jacobcolvin.com/stopwatch/caller"
	"go.jacobcolvin.com/stopwatch/markup"
	"go.jacobcolvin.com/stopwatch/statistics"
)

var (
	profilerFields = []string{"module", "function", "line", "name", "elapsed", "hits", "statistics"}
	scopeFields    = []string{"module", "function", "line", "name", "elapsed", "message"}
)

// template is a report format with markup already rendered. Placeholders
// are substituted verbatim, so values never act as markup.
type template struct {
	parts []part
}

// part is either literal text or, when field is set, a placeholder.
type part struct {
	text  string
	field string
	spec  string
}

func compileTemplate(format string, fields []string, color bool) (*template, error) {
	render := markup.Render
	if !color {
		render = markup.Strip
	}

	styled, err := render(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, format, err)
	}

	parts, err := parsePlaceholders(styled, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, format, err)
	}

	return &template{parts: parts}, nil
}

// parsePlaceholders splits s into literal text and "{field}" or
// "{field:spec}" placeholders. "{{" and "}}" are literal braces.
func parsePlaceholders(s string, fields []string) ([]part, error) {
	var (
		parts []part
		text  strings.Builder
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '{' && strings.HasPrefix(s[i:], "{{"):
			text.WriteByte('{')
			i++

		case c == '}' && strings.HasPrefix(s[i:], "}}"):
			text.WriteByte('}')
			i++

		case c == '}':
			return nil, fmt.Errorf("single '}' at offset %d", i)

		case c == '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed '{' at offset %d", i)
			}

			p, err := parsePlaceholder(s[i+1:i+end], fields)
			if err != nil {
				return nil, err
			}

			if text.Len() > 0 {
				parts = append(parts, part{text: text.String()})
				text.Reset()
			}

			parts = append(parts, p)
			i += end

		default:
			text.WriteByte(c)
		}
	}

	if text.Len() > 0 {
		parts = append(parts, part{text: text.String()})
	}

	return parts, nil
}

func parsePlaceholder(body string, fields []string) (part, error) {
	name, spec, hasSpec := strings.Cut(body, ":")
	name = strings.TrimSpace(name)

	if !slices.Contains(fields, name) {
		return part{}, fmt.Errorf("unknown field %q", name)
	}

	if !hasSpec {
		return part{field: name}, nil
	}

	if name != "statistics" {
		return part{}, fmt.Errorf("field %q takes no arguments", name)
	}

	err := statistics.ValidateFields(statistics.ParseFields(spec)...)
	if err != nil {
		return part{}, err
	}

	return part{field: name, spec: spec}, nil
}

func (t *template) execute(value func(field, spec string) string) string {
	var out strings.Builder

	for _, p := range t.parts {
		if p.field == "" {
			out.WriteString(p.text)

			continue
		}

		out.WriteString(value(p.field, p.spec))
	}

	return out.String()
}

func callerValue(c caller.Caller, field string) string {
	switch field {
	case "module":
		return c.Module
	case "function":
		return c.Function
	case "line":
		return strconv.Itoa(c.Line)
	}

	return ""
}
