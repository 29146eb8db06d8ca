package source

import (
	"regexp"
)

// Slice is a cursor over a Sequence yielding its items.
type Slice struct {
	seq Sequence
	pos int
}

func NewSlice(seq Sequence) *Slice {
	return &Slice{seq: seq}
}

// Of creates a Slice over given items.
func Of(items ...any) *Slice {
	return NewSlice(Items(items))
}

func (s *Slice) Next() (any, bool) {
	if s.pos >= s.seq.Len() {
		return nil, false
	}

	s.pos++
	return s.seq.At(s.pos - 1), true
}

// MatchRegexp always panics: sequences do not hold text.
func (s *Slice) MatchRegexp(*regexp.Regexp) (string, bool) {
	panic(regexpSourceError())
}

func (s *Slice) Clone() Context {
	return &Slice{s.seq, s.pos}
}

func (s *Slice) Pos() Pos {
	return Pos{Offset: s.pos}
}
