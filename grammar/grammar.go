// Package grammar defines the rule table shared by compiled grammar rules.
//
// Rules refer to each other by name through Ref parsers which look the name up
// every time they run, so a rule may refer to rules bound after it, including itself.
package grammar

import (
	"sort"

	"github.com/ava12/parsec"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

// Error codes used by grammar:
const (
	// UnknownRuleError indicates that a Ref parser was run while its rule is not bound.
	UnknownRuleError = parsec.GrammarErrors + iota
)

func unknownRuleError(name string) *parsec.Error {
	return parsec.FormatError(UnknownRuleError, "unknown rule %q", name)
}

// Rule is a named parser definition.
type Rule struct {
	Name       string
	Definition parser.Parser
}

// Rules maps rule names to parsers.
type Rules map[string]parser.Parser

// Bind adds rule r to the table replacing any rule with the same name.
func (rs Rules) Bind(r Rule) {
	rs[r.Name] = r.Definition
}

// Has reports whether a rule with the given name is bound.
func (rs Rules) Has(name string) bool {
	_, found := rs[name]
	return found
}

// Ref returns a parser running the rule bound to name at the moment the parser runs.
// The parser panics with UnknownRuleError if no rule is bound to name by then.
func (rs Rules) Ref(name string) parser.Parser {
	return parser.New(func(ctx source.Context) parser.Outcome {
		p, found := rs[name]
		if !found {
			panic(unknownRuleError(name))
		}
		return p.Run(ctx)
	})
}

// Names returns sorted names of bound rules.
func (rs Rules) Names() []string {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a shallow copy of the table.
func (rs Rules) Clone() Rules {
	result := make(Rules, len(rs))
	for name, p := range rs {
		result[name] = p
	}
	return result
}
