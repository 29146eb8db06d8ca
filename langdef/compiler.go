package langdef

import (
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/ava12/parsec/grammar"
	"github.com/ava12/parsec/lexer"
	"github.com/ava12/parsec/source"
)

// Compiler converts grammar descriptions to rule tables.
// Compiler is immutable and safe for concurrent use.
type Compiler struct {
	log            logrus.FieldLogger
	seed           grammar.Rules
	allowUndefined bool
}

// Option configures Compiler.
type Option func(*Compiler)

// WithLogger sets the logger receiving debug messages about compiled descriptions.
// By default nothing is logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Compiler) {
		c.log = log
	}
}

// WithRules seeds every compiled table with rules.
// Seeded rules may be referenced by the description and redefined by it.
// The seed table itself is never modified.
func WithRules(rules grammar.Rules) Option {
	return func(c *Compiler) {
		c.seed = rules.Clone()
	}
}

// AllowUndefined disables the check for references to rules that are neither defined nor seeded.
// Such a reference panics with grammar.UnknownRuleError if it runs before the rule is bound.
func AllowUndefined() Option {
	return func(c *Compiler) {
		c.allowUndefined = true
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New creates a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = discardLogger()
	}
	return c
}

// Parse compiles a description made of text chunks and embedded values:
// parts[0], holes[0], parts[1], ..., parts[n].
// Returns a table containing seeded rules and every rule of the description,
// or nil and an error. Multiple validation problems are reported as *multierror.Error
// wrapping *parsec.Error values.
func (c *Compiler) Parse(parts []string, holes ...any) (grammar.Rules, error) {
	src, e := source.NewHoles(parts, holes)
	if e != nil {
		return nil, e
	}

	ts, e := lexer.Lex(src)
	if e != nil {
		return nil, e
	}
	c.log.WithField("tokens", len(ts)).Debug("grammar description tokenized")

	var errs *multierror.Error
	errs = checkHoles(ts, errs)
	errs = checkRegexps(ts, errs)
	if e = errs.ErrorOrNil(); e != nil {
		return nil, e
	}

	rules := c.seed.Clone()
	o := rulesParser.Run(source.NewState[grammar.Rules](source.NewSlice(ts), rules))
	rest := o.Value().Context
	if item, found := rest.Clone().Next(); found {
		return nil, syntaxError(item.(lexer.Token), ruleParser.Run(rest).Failure())
	}

	errs = checkNames(ts, c.seed, c.allowUndefined, errs)
	if e = errs.ErrorOrNil(); e != nil {
		return nil, e
	}

	for _, v := range o.Value().Value.([]any) {
		r := v.(grammar.Rule)
		rules.Bind(r)
		c.log.WithField("rule", r.Name).Debug("rule bound")
	}
	return rules, nil
}

// Lang compiles a description given as a list of segments.
// A string segment is description text, any other segment is an embedded value.
// Adjacent strings are joined. Wrap a string in source.Hole to embed it as a value.
func (c *Compiler) Lang(segments ...any) (grammar.Rules, error) {
	parts := []string{""}
	holes := make([]any, 0)
	for _, s := range segments {
		switch x := s.(type) {
		case string:
			parts[len(parts)-1] += x
		case source.Hole:
			holes = append(holes, x.Value)
			parts = append(parts, "")
		default:
			holes = append(holes, x)
			parts = append(parts, "")
		}
	}
	return c.Parse(parts, holes...)
}

// MustLang is like Lang but panics on error.
func (c *Compiler) MustLang(segments ...any) grammar.Rules {
	rules, e := c.Lang(segments...)
	if e != nil {
		panic(e)
	}
	return rules
}

var defaultCompiler = New()

// Parse compiles a description using Compiler with default options.
func Parse(parts []string, holes ...any) (grammar.Rules, error) {
	return defaultCompiler.Parse(parts, holes...)
}

// Lang compiles a description using Compiler with default options.
func Lang(segments ...any) (grammar.Rules, error) {
	return defaultCompiler.Lang(segments...)
}

// MustLang compiles a description using Compiler with default options and panics on error.
func MustLang(segments ...any) grammar.Rules {
	return defaultCompiler.MustLang(segments...)
}
