package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// whitespaceClass is the whitespace accepted inside names and descriptions:
// ASCII spacing including vertical tab, every Zs space, the line and
// paragraph separators and the byte order mark.
const whitespaceClass = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	taskNamePattern    = regexp.MustCompile(`^[a-zA-Z0-9` + whitespaceClass + `]+$`)
	descriptionPattern = regexp.MustCompile(`^[a-zA-Z0-9` + whitespaceClass + `.,!?'"-]*$`)
)

// isWhitespace matches the same runes as whitespaceClass.
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Validator holds the stateless field checks used by TaskValidator
type Validator struct {
	taskNameRegex    *regexp.Regexp
	descriptionRegex *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		taskNameRegex:    taskNamePattern,
		descriptionRegex: descriptionPattern,
	}
}

// IsEmpty reports whether s has no characters once surrounding whitespace is removed
func (v *Validator) IsEmpty(s string) bool {
	return strings.TrimFunc(s, isWhitespace) == ""
}

// LegalTaskName reports whether every character of name is an ASCII letter,
// an ASCII digit or whitespace. The empty string is not legal.
func (v *Validator) LegalTaskName(name string) bool {
	return v.taskNameRegex.MatchString(name)
}

// LegalDescription reports whether description only uses ASCII letters,
// digits, whitespace and . , ! ? ' " -
// The empty string is legal.
func (v *Validator) LegalDescription(description string) bool {
	return v.descriptionRegex.MatchString(description)
}
