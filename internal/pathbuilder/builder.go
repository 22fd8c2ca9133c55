package pathbuilder

import (
	"strconv"
	"strings"
)

// Builder incrementally builds a JSON-pointer-style path using ".name" for
// object descent and "[i]" for array descent.
type Builder struct {
	segments []string
	length   int // pre-calculated length for String()'s allocation
}

// Push adds an object-key segment to the path.
func (b *Builder) Push(segment string) {
	b.segments = append(b.segments, segment)
	b.length += 1 + len(segment) // leading dot separator
}

// PushIndex adds an array-index segment: "[0]", "[1]", etc.
func (b *Builder) PushIndex(i int) {
	seg := "[" + strconv.Itoa(i) + "]"
	b.segments = append(b.segments, seg)
	b.length += len(seg) // no dot separator for brackets
}

// Pop removes the last segment.
func (b *Builder) Pop() {
	if len(b.segments) == 0 {
		return
	}
	last := b.segments[len(b.segments)-1]
	b.segments = b.segments[:len(b.segments)-1]
	b.length -= len(last)
	if len(last) == 0 || last[0] != '[' {
		b.length-- // dot separator
	}
}

// Reset clears the builder for reuse.
func (b *Builder) Reset() {
	b.segments = b.segments[:0]
	b.length = 0
}

// String materializes the full path. The root path is the empty string.
// Object descent always carries its leading dot, including the first
// segment ("foo" renders as ".foo"), matching spec's error-text convention
// of an always-dot-prefixed path; array descent never does ("[0]", not
// ".[0]").
func (b *Builder) String() string {
	if len(b.segments) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.length)
	for _, seg := range b.segments {
		if len(seg) > 0 && seg[0] == '[' {
			sb.WriteString(seg)
		} else {
			sb.WriteByte('.')
			sb.WriteString(seg)
		}
	}
	return sb.String()
}
