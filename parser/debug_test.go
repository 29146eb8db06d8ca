package parser

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	. "github.com/ava12/parsec/internal/test"
)

func TestDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p := Char('a').Debug("letter", logger)

	o := p.Parse("ab")
	ExpectBool(t, true, o.IsSuccess())
	ExpectInt(t, 1, len(hook.AllEntries()))
	e := hook.LastEntry()
	Expect(t, e.Data["label"] == "letter", "letter", e.Data["label"])
	Expect(t, e.Data["value"] == 'a', 'a', e.Data["value"])
	Expect(t, e.Data["pos"] == "line 1 col 1", "line 1 col 1", e.Data["pos"])

	o = p.Parse("b")
	ExpectBool(t, false, o.IsSuccess())
	ExpectInt(t, 2, len(hook.AllEntries()))
	e = hook.LastEntry()
	_, hasFailure := e.Data["failure"]
	Assert(t, hasFailure, "expecting failure field, got %v", e.Data)
	Expect(t, e.Level == logrus.DebugLevel, logrus.DebugLevel, e.Level)
}

func TestDebugBelowLevel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	v, e := Item().Many().Tie("").Debug("all", logger).TryParse("abc")
	Assert(t, e == nil && v == "abc", "expecting abc, got %v, %v", v, e)
	ExpectInt(t, 0, len(hook.AllEntries()))
}
