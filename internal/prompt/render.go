// Package prompt renders theme templates by substituting field values into
// {field} placeholders.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches placeholder references like {tone} or {相手の名前}.
// Anything between braces except another brace counts as a placeholder name.
var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// MissingFieldError reports the first field without a value, in the theme's
// declared field order.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing value for field %q", e.Field)
}

// Render substitutes values into template. For each name in fields, every
// occurrence of the literal placeholder {name} is replaced with the
// corresponding value. Placeholders that match no declared field pass through
// unchanged.
//
// Every declared field must have a non-empty value; an absent or empty-string
// entry makes Render return a MissingFieldError for the first such field in
// declaration order. Whitespace-only values count as filled and substitute
// as-is. Substitution proceeds one field at a time in declaration order; text
// outside placeholders is preserved verbatim.
func Render(template string, fields []string, values map[string]string) (string, error) {
	for _, f := range fields {
		if values[f] == "" {
			return "", &MissingFieldError{Field: f}
		}
	}

	result := template
	for _, f := range fields {
		result = strings.ReplaceAll(result, "{"+f+"}", values[f])
	}
	return result, nil
}

// Placeholders extracts placeholder names from a template in order of first
// appearance, without duplicates.
func Placeholders(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	seen := make(map[string]bool)
	var names []string

	for _, match := range matches {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
