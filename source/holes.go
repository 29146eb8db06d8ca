package source

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Hole is the item yielded by Holes in place of an embedded value.
type Hole struct {
	Value any
}

func (h Hole) String() string {
	return fmt.Sprintf("hole(%v)", h.Value)
}

// Holes is a cursor over text chunks interleaved with embedded values.
// Chunk text is yielded rune by rune, each embedded value is yielded as a single Hole item.
type Holes struct {
	parts []string
	holes []any
	part  int
	pos   int
}

// NewHoles creates a cursor yielding parts[0], holes[0], parts[1], ..., parts[n].
// Returns parsec.Error if len(holes) != len(parts) - 1.
func NewHoles(parts []string, holes []any) (*Holes, error) {
	if len(holes) != len(parts)-1 {
		return nil, mismatchedHolesError(len(parts), len(holes))
	}

	return &Holes{parts: parts, holes: holes}, nil
}

func (h *Holes) Next() (any, bool) {
	if h.part >= len(h.parts) {
		return nil, false
	}

	text := h.parts[h.part]
	if h.pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[h.pos:])
		h.pos += size
		return r, true
	}

	if h.part < len(h.holes) {
		hole := h.holes[h.part]
		h.part++
		h.pos = 0
		return Hole{hole}, true
	}

	return nil, false
}

// MatchRegexp matches re within current chunk, a match never spans a hole.
func (h *Holes) MatchRegexp(re *regexp.Regexp) (string, bool) {
	if h.part >= len(h.parts) {
		return "", false
	}

	match, ok := matchAt(re, h.parts[h.part], h.pos)
	if ok {
		h.pos += len(match)
	}
	return match, ok
}

func (h *Holes) Clone() Context {
	c := *h
	return &c
}

// Pos returns chunk index and offset, Line and Col count text of all chunks up to current position.
func (h *Holes) Pos() Pos {
	line, col := 1, 1
	for i := 0; i <= h.part && i < len(h.parts); i++ {
		text := h.parts[i]
		if i == h.part {
			text = text[:h.pos]
		}
		if nl := strings.LastIndexByte(text, '\n'); nl >= 0 {
			line += strings.Count(text, "\n")
			col = utf8.RuneCountInString(text[nl+1:]) + 1
		} else {
			col += utf8.RuneCountInString(text)
		}
	}

	return Pos{Part: h.part, Offset: h.pos, Line: line, Col: col}
}
