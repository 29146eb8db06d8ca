// Package source defines input cursors used by parsers.
package source

import (
	"fmt"
	"reflect"
	"regexp"
)

// Context is a cursor over parser input.
// Parsers never advance a cursor they were given: they clone it first,
// so a failed attempt leaves the original cursor valid.
type Context interface {
	// Next returns the item at current position and advances the cursor.
	// Returns nil, false at the end of input.
	Next() (item any, ok bool)

	// MatchRegexp matches re at current position and advances the cursor past the match.
	// Returns "", false and does not advance if there is no match starting exactly at current position.
	// Panics with parsec.Error if the cursor does not hold text.
	MatchRegexp(re *regexp.Regexp) (match string, ok bool)

	// Clone returns an independent cursor at the same position.
	Clone() Context
}

// Sequence is an indexable sequence of items.
type Sequence interface {
	Len() int
	At(i int) any
}

// Pos is a cursor position.
// Part is the index of current text chunk for Holes, 0 otherwise.
// Offset is the byte offset in current text chunk or the item index for sequences.
// Line and Col are 1-based and are set for text cursors only.
type Pos struct {
	Part, Offset int
	Line, Col    int
}

func (p Pos) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("line %d col %d", p.Line, p.Col)
	}
	if p.Part > 0 {
		return fmt.Sprintf("part %d offset %d", p.Part, p.Offset)
	}
	return fmt.Sprintf("offset %d", p.Offset)
}

// Positioner is implemented by cursors able to report their position.
type Positioner interface {
	Pos() Pos
}

// PosOf returns cursor position or zero Pos if c does not implement Positioner.
func PosOf(c Context) Pos {
	if p, ok := c.(Positioner); ok {
		return p.Pos()
	}
	return Pos{}
}

// From converts parser input to a Context:
// a Context is returned as is, a string becomes Text,
// a Sequence, []any or any other slice or array becomes Slice.
// Panics with parsec.Error for any other input.
func From(input any) Context {
	switch v := input.(type) {
	case Context:
		return v
	case string:
		return NewText(v)
	case []any:
		return NewSlice(Items(v))
	case Sequence:
		return NewSlice(v)
	case nil:
		panic(unsupportedInputError(input))
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return NewSlice(reflectSeq{rv})
	}
	panic(unsupportedInputError(input))
}

// Items is a Sequence of arbitrary values.
type Items []any

func (is Items) Len() int {
	return len(is)
}

func (is Items) At(i int) any {
	return is[i]
}

type reflectSeq struct {
	v reflect.Value
}

func (s reflectSeq) Len() int {
	return s.v.Len()
}

func (s reflectSeq) At(i int) any {
	return s.v.Index(i).Interface()
}
