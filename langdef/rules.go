package langdef

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ava12/parsec/grammar"
	"github.com/ava12/parsec/lexer"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

// ruleContext is the token cursor used by the rule grammar.
// It carries the rule table identifier references are resolved against.
type ruleContext = source.State[grammar.Rules]

func tokenOf(kind lexer.Kind) parser.Parser {
	return parser.SatisfyMsg(func(item any) bool {
		t, valid := item.(lexer.Token)
		return valid && t.Kind == kind
	}, func(item any) string {
		return fmt.Sprintf("expecting %s, got %v", kind, item)
	})
}

func punct(p string) parser.Parser {
	return parser.SatisfyMsg(func(item any) bool {
		t, valid := item.(lexer.Token)
		return valid && t.Is(lexer.Punctuator, p)
	}, func(item any) string {
		return fmt.Sprintf("expecting %q, got %v", p, item)
	})
}

func valueOf(v any) any {
	return v.(lexer.Token).Value
}

func second(v any) any {
	return v.([]any)[1]
}

func parsers(v any) []parser.Parser {
	items := v.([]any)
	result := make([]parser.Parser, len(items))
	for i, item := range items {
		result[i] = item.(parser.Parser)
	}
	return result
}

// sequenceOf yields the only parser as is and a Sequence of several parsers otherwise.
func sequenceOf(v any) any {
	ps := parsers(v)
	if len(ps) == 1 {
		return ps[0]
	}
	return parser.Sequence(ps...)
}

// compileRegexp compiles regexp literal, flags "i", "m", and "s" are passed to RE2,
// other flags are ignored.
func compileRegexp(rl lexer.RegexpLiteral) (*regexp.Regexp, error) {
	flags := ""
	for _, f := range "ims" {
		if strings.ContainsRune(rl.Flags, f) {
			flags += string(f)
		}
	}

	expr := rl.Body
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}
	return regexp.Compile(expr)
}

// rulesState yields the rule table carried by the cursor and consumes nothing.
var rulesState = parser.New(func(ctx source.Context) parser.Outcome {
	rc, valid := ctx.(*ruleContext)
	if !valid {
		return parser.Failed("rule table is not available")
	}
	return parser.Succeeded(rc.State(), ctx)
})

type mapping = func(parser.Parser) parser.Parser

func newRuleParser() parser.Parser {
	hole := tokenOf(lexer.Hole).Map(valueOf)

	stringDef := tokenOf(lexer.String).Map(func(v any) any {
		return parser.String(valueOf(v).(string))
	})

	refDef := tokenOf(lexer.Ident).Chain(func(v any) parser.Parser {
		name := valueOf(v).(string)
		return rulesState.Map(func(rs any) any {
			return rs.(grammar.Rules).Ref(name)
		})
	})

	regexpDef := tokenOf(lexer.Regexp).Chain(func(v any) parser.Parser {
		re, e := compileRegexp(valueOf(v).(lexer.RegexpLiteral))
		if e != nil {
			return parser.Fail(e.Error())
		}
		return parser.Of(parser.Regexp(re))
	})

	satisfyDef := punct("!").Then(hole).Map(func(v any) any {
		return parser.Satisfy(predicate(v))
	})

	parserDef := punct("@").Then(hole)

	var alternation parser.Parser
	groupDef := parser.Sequence(
		punct("("),
		parser.Lazy(func() parser.Parser { return alternation }),
		punct(")"),
	).Map(second)

	primitive := parser.Alternatives(stringDef, refDef, regexpDef, satisfyDef, parserDef, groupDef)

	repetition := primitive.Chain(func(v any) parser.Parser {
		p := v.(parser.Parser)
		return parser.Alternatives(
			punct("*").Return(p.Many()),
			punct("+").Return(p.AtLeast(1)),
			parser.Of(p),
		)
	})

	mapOp := parser.Alternatives(
		punct(">>").Then(hole).Map(func(v any) any {
			f := binder(v)
			return mapping(func(p parser.Parser) parser.Parser { return p.Chain(f) })
		}),
		punct(">").Then(hole).Map(func(v any) any {
			f := mapper(v)
			return mapping(func(p parser.Parser) parser.Parser { return p.Map(f) })
		}),
	)

	mapped := parser.Sequence(repetition.AtLeast(1).Map(sequenceOf), mapOp.Many()).Map(func(v any) any {
		vs := v.([]any)
		p := vs[0].(parser.Parser)
		for _, m := range vs[1].([]any) {
			p = m.(mapping)(p)
		}
		return p
	})

	sequence := mapped.AtLeast(1).Map(sequenceOf)

	alternation = parser.Sequence(sequence, punct("|").Then(sequence).Many()).Map(func(v any) any {
		vs := v.([]any)
		ps := append([]parser.Parser{vs[0].(parser.Parser)}, parsers(vs[1])...)
		if len(ps) == 1 {
			return ps[0]
		}
		return parser.Alternatives(ps...)
	})

	return parser.Sequence(tokenOf(lexer.Ident), punct("="), alternation, punct(";")).Map(func(v any) any {
		vs := v.([]any)
		return grammar.Rule{
			Name:       valueOf(vs[0]).(string),
			Definition: vs[2].(parser.Parser),
		}
	})
}

var (
	ruleParser  = newRuleParser()
	rulesParser = ruleParser.Many()
)
