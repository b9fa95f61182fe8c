package token

import "fmt"

// Position is a location in a source buffer.
type Position struct {
	// Line number (1-indexed).
	Line int
	// Column is the byte offset on the line (1-indexed).
	Column int
	// Offset is the byte offset from the start of source (0-indexed).
	Offset int
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before returns true if p is before other in the source.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// After returns true if p is after other in the source.
func (p Position) After(other Position) bool {
	if p.Line != other.Line {
		return p.Line > other.Line
	}
	return p.Column > other.Column
}

// Span is the source range of a node: Start is its first character, End the
// position just past its last one.
type Span struct {
	Start Position
	End   Position
}

// SpanOf returns the span running from start to end.
func SpanOf(start, end Position) Span {
	return Span{Start: start, End: end}
}

func (s Span) StartLine() int { return s.Start.Line }
func (s Span) StartCol() int  { return s.Start.Column }
func (s Span) EndLine() int   { return s.End.Line }
func (s Span) EndCol() int    { return s.End.Column }

// Len returns the number of source bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// String returns "line:col-col" for single-line spans and
// "line:col-line:col" otherwise.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s-%d", s.Start.String(), s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start.String(), s.End.String())
}

// Contains returns true if the span contains the given position.
// End is exclusive.
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && p.Before(s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	out := s
	if other.Start.Before(out.Start) {
		out.Start = other.Start
	}
	if other.End.After(out.End) {
		out.End = other.End
	}
	return out
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}
