package parsec_test

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ava12/parsec/langdef"
	"github.com/ava12/parsec/parser"
)

type section string

type pair struct {
	name, value string
}

func Example() {
	input := `foo = hello
bar = world
[sec]
baz =
[sec.subsec]
qux = !
`
	rules, e := langdef.Lang(`
		space = /[ \t]*/;
		nl = /\n/;
		name = /[a-z]+/;
		secName = /[a-z]+(?:\.[a-z]+)*/;
		value = /[^\n]*/;

		section = '[' secName ']' nl > `, func(v any) any {
		return section(v.([]any)[1].(string))
	}, `;
		pair = name space '=' space value nl > `, func(v any) any {
		vs := v.([]any)
		return pair{vs[0].(string), vs[4].(string)}
	}, `;
		config = (section | pair | nl)* @`, parser.End(), `;
	`)
	if e != nil {
		fmt.Println(e)
		return
	}

	items, e := rules["config"].TryParse(input)
	if e != nil {
		fmt.Println(e)
		return
	}

	result := make(map[string]string)
	prefix := ""
	for _, item := range items.([]any)[0].([]any) {
		switch x := item.(type) {
		case section:
			prefix = string(x) + "."
		case pair:
			result[prefix+x.name] = x.value
		}
	}

	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%q\n", k, result[k])
	}

	// Output:
	// bar="world"
	// foo="hello"
	// sec.baz=""
	// sec.subsec.qux="!"
}

func ExampleParser_Operators() {
	number := parser.Pattern(`[0-9]+`).Map(func(v any) any {
		n, _ := strconv.Atoi(v.(string))
		return n
	})
	expr := number.Operators(
		parser.LeftOp(1, parser.Char('+'), func(a, b any) any { return a.(int) + b.(int) }),
		parser.LeftOp(2, parser.Char('*'), func(a, b any) any { return a.(int) * b.(int) }),
		parser.RightOp(3, parser.Char('^'), func(a, b any) any {
			result := 1
			for i := 0; i < b.(int); i++ {
				result *= a.(int)
			}
			return result
		}),
		parser.PrefixOp(0, parser.Char('-'), func(a any) any { return -a.(int) }),
	).Skip(parser.End())

	for _, input := range []string{"2^3^2", "-2+3*4", "2*"} {
		v, e := expr.TryParse(input)
		if e != nil {
			fmt.Println(input, "failed")
		} else {
			fmt.Println(input, "=", v)
		}
	}

	// Output:
	// 2^3^2 = 512
	// -2+3*4 = 10
	// 2* failed
}
