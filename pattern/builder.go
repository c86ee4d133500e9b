package pattern

import (
	"fmt"
	"strings"
)

// Builder accumulates comparison expressions and combiners, then renders the
// bracketed pattern string. It performs no validation and does not guard
// against misuse (a trailing combiner, two adjacent comparisons); run the
// result through Validate before trusting it.
type Builder struct {
	parts []string
}

// NewBuilder returns an empty pattern builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Compare appends an "objectType:property operator value" expression. The
// value is rendered verbatim: quote string literals yourself ("'evil.com'").
func (b *Builder) Compare(objectType, property, operator, value string) *Builder {
	b.parts = append(b.parts, fmt.Sprintf("%s:%s %s %s", objectType, property, operator, value))
	return b
}

// And appends an AND combiner. Ignored while the builder is still empty.
func (b *Builder) And() *Builder {
	if len(b.parts) > 0 {
		b.parts = append(b.parts, " AND ")
	}
	return b
}

// Or appends an OR combiner. Ignored while the builder is still empty.
func (b *Builder) Or() *Builder {
	if len(b.parts) > 0 {
		b.parts = append(b.parts, " OR ")
	}
	return b
}

// FollowedBy appends a FOLLOWEDBY combiner. Ignored while the builder is
// still empty.
func (b *Builder) FollowedBy() *Builder {
	if len(b.parts) > 0 {
		b.parts = append(b.parts, " FOLLOWEDBY ")
	}
	return b
}

// Build renders the accumulated parts inside one bracket pair.
func (b *Builder) Build() string {
	return "[" + strings.Join(b.parts, "") + "]"
}
