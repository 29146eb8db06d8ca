package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/ava12/parsec/outcome"
	"github.com/ava12/parsec/source"
)

// Debug logs every run of p at debug level and returns its outcome unchanged.
// Successful runs are logged with the parsed value and the position after it,
// failed runs with the failure message. The standard logrus logger is used if log is nil.
func (p Parser) Debug(label string, log logrus.FieldLogger) Parser {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return New(func(ctx source.Context) Outcome {
		entry := log.WithFields(logrus.Fields{
			"label": label,
			"pos":   source.PosOf(ctx).String(),
		})
		return p.action(ctx).ForEach(func(r Result) {
			entry.WithField("value", r.Value).Debugf("%s matched up to %s", label, source.PosOf(r.Context))
		}).OnFailure(func(f *outcome.Failure) {
			entry.WithField("failure", f.Error()).Debugf("%s failed", label)
		})
	})
}
