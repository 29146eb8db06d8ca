package test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/ava12/parsec"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	Expect(t, expected == got, expected, got)
}

// ExpectErrorCode looks for *parsec.Error with expected code in e and its wrapped errors.
func ExpectErrorCode(t *testing.T, expected int, e error) {
	var pe *parsec.Error
	if e != nil && errors.As(e, &pe) && pe.Code == expected {
		return
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}

// ExpectPanicCode runs f and expects it to panic with *parsec.Error having expected code.
func ExpectPanicCode(t *testing.T, expected int, f func()) {
	var got any
	func() {
		defer func() {
			got = recover()
		}()
		f()
	}()

	pe, valid := got.(*parsec.Error)
	if !valid || pe.Code != expected {
		fatalf(t, "expecting panic with error code %d, got %v", expected, got)
	}
}
