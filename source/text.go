package source

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

type lineIndex struct {
	once       sync.Once
	lineStarts []int
}

func (li *lineIndex) starts(text string) []int {
	li.once.Do(func() {
		li.lineStarts = make([]int, 1, strings.Count(text, "\n")+1)
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				li.lineStarts = append(li.lineStarts, i+1)
			}
		}
	})
	return li.lineStarts
}

func lineCol(text string, starts []int, pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(text) {
		pos = len(text)
	}

	lineIndex := sort.SearchInts(starts, pos+1) - 1
	lineStart := starts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(text[lineStart:pos]) + 1
}

// Text is a cursor over a string yielding runes.
type Text struct {
	text  string
	pos   int
	lines *lineIndex
}

func NewText(text string) *Text {
	return &Text{text: text, lines: &lineIndex{}}
}

func (t *Text) Next() (any, bool) {
	if t.pos >= len(t.text) {
		return nil, false
	}

	r, size := utf8.DecodeRuneInString(t.text[t.pos:])
	t.pos += size
	return r, true
}

func (t *Text) MatchRegexp(re *regexp.Regexp) (string, bool) {
	match, ok := matchAt(re, t.text, t.pos)
	if ok {
		t.pos += len(match)
	}
	return match, ok
}

func (t *Text) Clone() Context {
	c := *t
	return &c
}

func (t *Text) Pos() Pos {
	line, col := lineCol(t.text, t.lines.starts(t.text), t.pos)
	return Pos{Offset: t.pos, Line: line, Col: col}
}

// Rest returns unconsumed text.
func (t *Text) Rest() string {
	return t.text[t.pos:]
}

// matchAt returns the match of re starting exactly at pos.
// Nothing matches at the end of text.
func matchAt(re *regexp.Regexp, text string, pos int) (string, bool) {
	if pos >= len(text) {
		return "", false
	}

	loc := re.FindStringIndex(text[pos:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return text[pos : pos+loc[1]], true
}
