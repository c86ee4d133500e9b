// Package pattern validates and builds STIX 2.1 pattern expressions, the
// bracketed comparison DSL carried by Indicator objects:
//
//	[object-type:property operator value]
//
// Validation is syntactic only. It checks bracket structure, the observable
// object-type vocabulary, the colon separator and operator presence; it does
// not parse property paths or evaluate patterns against data.
package pattern

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingBrackets is returned when the pattern is not wrapped in
	// square brackets.
	ErrMissingBrackets = errors.New("pattern must start with '[' and end with ']'")

	// ErrUnbalancedBrackets is returned when open and close bracket counts
	// differ.
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")

	// ErrEmptyPattern is returned for a bracket pair with nothing inside.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrMissingColon is returned when a comparison has no object-type:property
	// separator.
	ErrMissingColon = errors.New("missing colon separator between object type and property")

	// ErrMissingOperator is returned when a comparison has no recognized
	// operator.
	ErrMissingOperator = errors.New("missing comparison operator")
)

// InvalidObjectTypeError is returned when a comparison names an object type
// outside the observable vocabulary.
type InvalidObjectTypeError struct {
	Type string
}

func (e *InvalidObjectTypeError) Error() string {
	return fmt.Sprintf("invalid object type: %s", e.Type)
}

// Is matches any InvalidObjectTypeError with the same type name, or the bare
// *InvalidObjectTypeError when the target's Type is empty.
func (e *InvalidObjectTypeError) Is(target error) bool {
	t, ok := target.(*InvalidObjectTypeError)
	if !ok {
		return false
	}
	return t.Type == "" || t.Type == e.Type
}

// ObjectTypes is the observable object-type vocabulary accepted on the left
// of a comparison. Matching is exact and case-sensitive.
var ObjectTypes = []string{
	"artifact",
	"autonomous-system",
	"directory",
	"domain-name",
	"email-addr",
	"email-message",
	"file",
	"ipv4-addr",
	"ipv6-addr",
	"mac-addr",
	"mutex",
	"network-traffic",
	"process",
	"software",
	"url",
	"user-account",
	"windows-registry-key",
	"x509-certificate",
}

// Operators are the comparison operators accepted in a pattern.
var Operators = []string{
	"=", "!=", ">", ">=", "<", "<=",
	"IN", "MATCHES", "LIKE", "ISSUBSET", "ISSUPERSET",
}

// Combiners join comparisons within one bracketed expression.
var Combiners = []string{"AND", "OR", "FOLLOWEDBY"}

// Validate checks the syntax of a STIX pattern string. The zero value of a
// valid pattern is e.g. "[file:hashes.MD5 = 'abc123']"; comparisons can be
// joined with AND, OR and FOLLOWEDBY, and bracketed sub-expressions nest.
func Validate(pattern string) error {
	trimmed := strings.TrimSpace(pattern)

	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return ErrMissingBrackets
	}

	if strings.Count(trimmed, "[") != strings.Count(trimmed, "]") {
		return ErrUnbalancedBrackets
	}

	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return ErrEmptyPattern
	}

	for _, part := range splitByCombiners(inner) {
		if err := validateComparison(strings.TrimSpace(part)); err != nil {
			return err
		}
	}
	return nil
}

// splitByCombiners splits on the first quote-free occurrence of each
// combiner, in vocabulary order. A combiner inside a quoted value does not
// split, and neither does one sitting before an earlier split point ("a OR b
// AND c" splits on AND only; the OR stays inside the first part).
func splitByCombiners(pattern string) []string {
	var parts []string
	lastPos := 0

	for _, combiner := range Combiners {
		pos := strings.Index(pattern, combiner)
		if pos < 0 || pos < lastPos {
			continue
		}
		if insideQuotes(pattern, pos) {
			continue
		}
		parts = append(parts, pattern[lastPos:pos])
		lastPos = pos + len(combiner)
	}

	if len(parts) == 0 {
		return []string{pattern}
	}
	return append(parts, pattern[lastPos:])
}

// insideQuotes reports whether pos falls inside a quoted run: an odd number
// of single or double quotes before the position means the quote is open.
func insideQuotes(s string, pos int) bool {
	before := s[:pos]
	return strings.Count(before, "'")%2 != 0 || strings.Count(before, `"`)%2 != 0
}

// validateComparison checks one object-type:property operator value clause.
// Operator detection is a plain substring search over everything after the
// colon, so a quoted value containing an operator character also satisfies
// it.
func validateComparison(expr string) error {
	// A bracketed sub-expression is a full pattern of its own.
	if strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]") {
		return Validate(expr)
	}

	objectType, rest, found := strings.Cut(expr, ":")
	if !found {
		return ErrMissingColon
	}

	objectType = strings.TrimSpace(objectType)
	if !validObjectType(objectType) {
		return &InvalidObjectTypeError{Type: objectType}
	}

	for _, op := range Operators {
		if strings.Contains(rest, op) {
			return nil
		}
	}
	return ErrMissingOperator
}

func validObjectType(objectType string) bool {
	for _, valid := range ObjectTypes {
		if objectType == valid {
			return true
		}
	}
	return false
}
