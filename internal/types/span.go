package types

// ByteOffset is a byte position in source text.
type ByteOffset uint32

// Span represents a range in source text.
type Span struct {
	Start ByteOffset // inclusive
	End   ByteOffset // exclusive
}

// NewSpan creates a new span.
func NewSpan(start, end ByteOffset) Span {
	return Span{Start: start, End: end}
}

// Len returns the length of the span in bytes.
func (s Span) Len() ByteOffset {
	return s.End - s.Start
}

// IsEmpty returns true if the span is empty.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Position converts a byte offset into a 1-based line and column.
// Columns count bytes, matching how editors report positions in ASCII
// source; offsets past the end of source clamp to the final position.
func Position(source []byte, off ByteOffset) (line, col int) {
	if int(off) > len(source) {
		off = ByteOffset(len(source))
	}
	line, col = 1, 1
	for _, b := range source[:off] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
