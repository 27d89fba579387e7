package template

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{identifier}} placeholders. Identifiers are
// the characters between the braces, with surrounding whitespace trimmed.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Template holds a literal string interleaved with {{identifier}}
// placeholders. The original text is retained so Resolve can be called
// repeatedly against different value snapshots without compounding.
type Template struct {
	source string
}

// New creates a template from its source text.
func New(source string) Template {
	return Template{source: source}
}

// Source returns the original, unresolved template text.
func (t Template) Source() string {
	return t.source
}

// IsEmpty reports whether the template has no source text.
func (t Template) IsEmpty() bool {
	return t.source == ""
}

// Placeholders returns the identifiers referenced by the template, in
// document order, with duplicates preserved.
func (t Template) Placeholders() []string {
	matches := placeholderPattern.FindAllStringSubmatch(t.source, -1)
	if len(matches) == 0 {
		return nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}

// Resolve substitutes every placeholder whose identifier has an entry in
// values, using the empty string for inputs that exist but carry no value.
// Identifiers with no matching entry are left as literal text; this is a
// deliberate leniency, not an error.
//
// Resolution always starts from the retained source, so repeated calls
// against changing snapshots re-resolve cleanly.
func (t Template) Resolve(values map[string]string) string {
	if t.source == "" || !strings.Contains(t.source, "{{") {
		return t.source
	}

	return placeholderPattern.ReplaceAllStringFunc(t.source, func(match string) string {
		id := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := values[id]; ok {
			return value
		}
		return match
	})
}
