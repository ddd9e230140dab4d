package errs

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// EmailRX is a permissive email shape check, not an RFC 5322 validator.
var EmailRX = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidationError carries per-field messages. It blocks a write before the
// database is touched.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator accumulates field errors so the caller gets all of them at once
// instead of only the first failing check.
type Validator struct {
	fields map[string]string
}

func NewValidator() *Validator {
	return &Validator{fields: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.fields) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, ok := v.fields[field]; !ok {
		v.fields[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Err returns nil when every check passed.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

func LengthBetween(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}

func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}
