// Package pattern provides escape-token decoding and role-tagged
// compiled regex pattern sets shared by the pre-commit hooks.
package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// EscapeToken stands in for a literal character inside a pattern
// argument that would otherwise collide with the CLI argument
// delimiter (=).
const EscapeToken = "-EsC-"

// ErrInvalidPattern indicates a pattern that failed to compile after decoding.
var ErrInvalidPattern = errors.New("invalid pattern")

// Role tags a pattern with how its matches count toward the verdict.
type Role int

const (
	// Accept contributes toward a pass when matched.
	Accept Role = iota
	// Reject unconditionally fails the target when matched.
	Reject
	// Require must match file content for that file to pass.
	Require
)

// String returns the role name as it appears on the CLI.
func (r Role) String() string {
	switch r {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Require:
		return "require"
	default:
		return "unknown"
	}
}

// Decode replaces every occurrence of the escape token followed by a
// single character with that literal character. All other characters
// pass through unchanged.
//
// Examples:
//   - "-EsC-=" -> "="
//   - "-EsC-(c-EsC-) 2024" -> "(c) 2024"
//   - "no tokens here" -> "no tokens here"
//
// A trailing token with no character after it is not an error; it is
// passed through as-is.
func Decode(raw string) string {
	if !strings.Contains(raw, EscapeToken) {
		return raw
	}

	var b strings.Builder
	rest := raw
	for {
		i := strings.Index(rest, EscapeToken)
		if i < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:i])

		after := rest[i+len(EscapeToken):]
		if after == "" {
			b.WriteString(EscapeToken)
			return b.String()
		}
		_, size := utf8.DecodeRuneInString(after)
		b.WriteString(after[:size])
		rest = after[size:]
	}
}

// Pattern is a user-authored regular expression tagged with a Role.
// Immutable once compiled.
type Pattern struct {
	Raw  string // pattern text as authored, before decoding
	Role Role

	re *regexp.Regexp
}

// Compile decodes raw and compiles the result. The returned error
// wraps ErrInvalidPattern and names the raw pattern and its role so
// the user sees the text they actually typed.
func Compile(raw string, role Role) (*Pattern, error) {
	re, err := regexp.Compile(Decode(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: error compiling %s pattern %q: %v", ErrInvalidPattern, role, raw, err)
	}
	return &Pattern{Raw: raw, Role: role, re: re}, nil
}

// Matches reports whether p matches anywhere in s (unanchored search).
func (p *Pattern) Matches(s string) bool {
	return p.re.MatchString(s)
}

// Set is an ordered sequence of patterns sharing one role. Order only
// affects which pattern gets reported first, not the outcome.
type Set []*Pattern

// CompileSet compiles raws in order, stopping at the first failure.
func CompileSet(raws []string, role Role) (Set, error) {
	set := make(Set, 0, len(raws))
	for _, raw := range raws {
		p, err := Compile(raw, role)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}
