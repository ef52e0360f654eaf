package validator

import (
	"regexp"
	"strings"
)

// TagPrefix marks a class token as a validator tag, e.g. "validate-email".
const TagPrefix = "validate-"

var tagNameRegex = regexp.MustCompile(`^\w+`)

// ParseTags extracts validator names from an attribute value.
//
// When fromClass is true the attribute is treated as a class list and only
// tokens of the form "validate-<type>" are used. Otherwise the value is a
// whitespace or comma separated list of names, each with an optional
// "validate-" prefix. A name is the leading run of word characters, so
// "validate-email-confirm" yields "email". Duplicates are dropped. With no
// tags the result is []string{"text"}.
func ParseTags(attr string, fromClass bool) []string {
	tokens := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
	})

	var names []string
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		name, hasPrefix := strings.CutPrefix(tok, TagPrefix)
		if fromClass && !hasPrefix {
			continue
		}
		name = tagNameRegex.FindString(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	if len(names) == 0 {
		return []string{Text}
	}
	return names
}
