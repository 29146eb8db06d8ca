// Package outcome defines the success/failure value returned by every parsing step.
package outcome

import (
	"strings"
)

// Failure describes an unsuccessful step.
// Combinators that try several parsers keep the failures of those parsers in Causes.
type Failure struct {
	Message string
	Causes  []*Failure
}

// NewFailure creates a failure with optional causes, nil causes are dropped.
func NewFailure(msg string, causes ...*Failure) *Failure {
	f := &Failure{Message: msg}
	for _, c := range causes {
		if c != nil {
			f.Causes = append(f.Causes, c)
		}
	}
	return f
}

// Error returns the message followed by the messages of all causes.
func (f *Failure) Error() string {
	switch len(f.Causes) {
	case 0:
		return f.Message
	case 1:
		return f.Message + ": " + f.Causes[0].Error()
	}

	msgs := make([]string, len(f.Causes))
	for i, c := range f.Causes {
		msgs[i] = c.Error()
	}
	return f.Message + ": [" + strings.Join(msgs, "; ") + "]"
}

// String renders the failure as an indented tree, one message per line.
func (f *Failure) String() string {
	sb := &strings.Builder{}
	f.format(sb, 0)
	return sb.String()
}

func (f *Failure) format(sb *strings.Builder, depth int) {
	if depth > 0 {
		sb.WriteByte('\n')
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(f.Message)
	for _, c := range f.Causes {
		c.format(sb, depth+1)
	}
}

// Outcome is either a success holding a value of type T or a Failure.
// The zero Outcome is a success holding the zero value.
type Outcome[T any] struct {
	value   T
	failure *Failure
}

// Of returns a successful outcome.
func Of[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Fail returns a failed outcome.
func Fail[T any](msg string, causes ...*Failure) Outcome[T] {
	return Outcome[T]{failure: NewFailure(msg, causes...)}
}

// FromFailure returns a failed outcome reusing existing failure.
// A nil failure is replaced with an empty one so the outcome still fails.
func FromFailure[T any](f *Failure) Outcome[T] {
	if f == nil {
		f = &Failure{}
	}
	return Outcome[T]{failure: f}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.failure == nil
}

// Value returns the success value or zero T for a failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Failure returns nil for a success.
func (o Outcome[T]) Failure() *Failure {
	return o.failure
}

// Map transforms the success value, failures pass through.
func (o Outcome[T]) Map(f func(T) T) Outcome[T] {
	return Map(o, f)
}

// Chain runs f on the success value, failures short-circuit.
func (o Outcome[T]) Chain(f func(T) Outcome[T]) Outcome[T] {
	return Chain(o, f)
}

// ForEach calls f on the success value and returns o unchanged.
func (o Outcome[T]) ForEach(f func(T)) Outcome[T] {
	if o.failure == nil {
		f(o.value)
	}
	return o
}

// OnFailure calls f on the failure and returns o unchanged.
func (o Outcome[T]) OnFailure(f func(*Failure)) Outcome[T] {
	if o.failure != nil {
		f(o.failure)
	}
	return o
}

// Unwrap converts the outcome to the usual Go value/error pair.
func (o Outcome[T]) Unwrap() (T, error) {
	if o.failure != nil {
		var zero T
		return zero, o.failure
	}
	return o.value, nil
}

// Map is Outcome.Map for transformations changing the value type.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if o.failure != nil {
		return Outcome[U]{failure: o.failure}
	}
	return Outcome[U]{value: f(o.value)}
}

// Chain is Outcome.Chain for computations changing the value type.
func Chain[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if o.failure != nil {
		return Outcome[U]{failure: o.failure}
	}
	return f(o.value)
}
