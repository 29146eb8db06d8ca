package source

import (
	"regexp"
)

// State decorates a cursor with a value shared by all its clones.
// Parsers use it to reach data that must be visible to every backtracking branch,
// e.g. a table of named rules.
type State[S any] struct {
	inner Context
	state S
}

func NewState[S any](inner Context, state S) *State[S] {
	return &State[S]{inner, state}
}

// WithState converts input using From and attaches state to the resulting cursor.
func WithState[S any](input any, state S) *State[S] {
	return NewState(From(input), state)
}

func (s *State[S]) State() S {
	return s.state
}

func (s *State[S]) Next() (any, bool) {
	return s.inner.Next()
}

func (s *State[S]) MatchRegexp(re *regexp.Regexp) (string, bool) {
	return s.inner.MatchRegexp(re)
}

func (s *State[S]) Clone() Context {
	return &State[S]{s.inner.Clone(), s.state}
}

func (s *State[S]) Pos() Pos {
	return PosOf(s.inner)
}
