package langdef

import (
	"github.com/ahrtr/gocontainer/set"
	"github.com/hashicorp/go-multierror"

	"github.com/ava12/parsec/grammar"
	"github.com/ava12/parsec/lexer"
)

// checkHoles reports misplaced holes and holes of unexpected types.
func checkHoles(ts lexer.Tokens, e *multierror.Error) *multierror.Error {
	for i, t := range ts {
		if t.Kind != lexer.Hole {
			continue
		}

		var kind holeKind
		found := false
		after := ""
		if i > 0 && ts[i-1].Kind == lexer.Punctuator {
			after = ts[i-1].Value.(string)
			kind, found = holeKinds[after]
		}
		if !found {
			e = multierror.Append(e, misplacedHoleError(t))
		} else if !kind.check(t.Value) {
			e = multierror.Append(e, holeTypeError(t, after, kind.expected))
		}
	}
	return e
}

func checkRegexps(ts lexer.Tokens, e *multierror.Error) *multierror.Error {
	for _, t := range ts {
		if t.Kind != lexer.Regexp {
			continue
		}

		if _, ce := compileRegexp(t.Value.(lexer.RegexpLiteral)); ce != nil {
			e = multierror.Append(e, regexpError(t, ce))
		}
	}
	return e
}

func isDefinition(ts lexer.Tokens, i int) bool {
	return ts[i].Kind == lexer.Ident && i+1 < len(ts) && ts[i+1].Is(lexer.Punctuator, "=")
}

// checkNames reports rules defined more than once and, unless allowUndefined is set,
// references to rules neither defined in ts nor present in seeded.
// ts must be a syntactically valid description.
func checkNames(ts lexer.Tokens, seeded grammar.Rules, allowUndefined bool, e *multierror.Error) *multierror.Error {
	defined := set.New()
	for i, t := range ts {
		if !isDefinition(ts, i) {
			continue
		}

		if defined.Contains(t.Value) {
			e = multierror.Append(e, duplicateRuleError(t))
		} else {
			defined.Add(t.Value)
		}
	}

	if allowUndefined {
		return e
	}

	for i, t := range ts {
		if t.Kind != lexer.Ident || isDefinition(ts, i) {
			continue
		}

		name := t.Value.(string)
		if !defined.Contains(name) && !seeded.Has(name) {
			e = multierror.Append(e, undefinedRuleError(t))
		}
	}
	return e
}
