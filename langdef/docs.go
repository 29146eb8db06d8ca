/*
Package langdef compiles textual grammar descriptions with embedded Go values into grammar.Rules tables.

A description is a sequence of text chunks interleaved with Go values (holes), e.g.

	rules, e := langdef.Lang(`num = /[0-9]+/ > `, toInt, `;`)

Self-definition of description language is:
*/
//  ident = /[a-zA-Z_][a-zA-Z0-9_]*/;
//  string = /'(?:[^'\\]|\\.)*'/;
//  regexp = /\/(?:[^\/\\\n]|\\.)+\/[gimsuy]*/;
//  punctuator = /=|\||\(|\)|\*|\+|;|!|>>|>|@/;
//  # spaces and comments are skipped
//
//  grammar = rule*;
//  rule = ident '=' alternation ';';
//  alternation = sequence ('|' sequence)*;
//  sequence = mapped+;
//  mapped = repetition+ (('>' | '>>') hole)*;
//  repetition = primitive ('*' | '+')?;
//  primitive = string | ident | regexp | '!' hole | '@' hole | '(' alternation ')';
/*
Lines starting with # (after optional spaces) are comments.
Identifiers are case-sensitive names of rules. String literals are enclosed in single quotes
and may contain escape sequences: \n, \r, \t, \b, \f, \v, and \u{HHHH} (1 to 6 hex digits);
any other escaped character stands for itself, e.g. \' and \\.

Regular expression literal is an RE2 regular expression delimited with slashes, \/ stands for a slash.
Flags i, m, and s have their RE2 meaning, flags g, u, and y are accepted and ignored.
A regular expression matches at current position only.

Holes are not text and never appear inside string or regexp literals.
Each hole must follow one of punctuators:
   ! the hole is a predicate, func(any) bool or func(rune) bool, the result matches a single item accepted by it;
   @ the hole is a parser.Parser used as is;
   > the hole is a func(any) any transforming the value of preceding expression;
   >> the hole is a func(any) parser.Parser, the returned parser continues parsing after preceding expression.

Compiled expressions:
   'text'    parser.String("text"), yields the string;
   /re/      parser.Regexp, yields the matched string;
   name      rule reference, resolved every time it runs, so rules may refer to rules defined later;
   x*        x.Many(), yields []any;
   x+        x.AtLeast(1), yields []any;
   x y       parser.Sequence(x, y), yields []any;
   x > f     x.Map(f), maps are folded left to right: x > f > g is x.Map(f).Map(g);
   x >> f    x.Chain(f);
   x | y     parser.Alternatives(x, y), the first successful alternative wins.

A map applies to the whole sequence preceding it up to the previous map or alternative, e.g.
'a' 'b' > f maps ['a', 'b'], while 'a' > f 'b' yields [f('a'), 'b'].

Each rule must be defined once. Every referenced rule must be defined in the same description
or seeded with WithRules option, unless AllowUndefined option is used.
Compilation errors are *parsec.Error values, several validation errors are returned together
as *multierror.Error.
*/
package langdef
