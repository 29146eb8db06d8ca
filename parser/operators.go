package parser

import (
	"github.com/ava12/parsec/source"
)

// Assoc is operator associativity.
type Assoc int

const (
	Left Assoc = iota
	Right
	Prefix
)

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Prefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Operator describes an operator for Parser.Operators.
// Prefix operators use Unary action, Left and Right operators use Binary action.
type Operator struct {
	Assoc  Assoc
	Prec   int
	Parser Parser
	Unary  func(operand any) any
	Binary func(left, right any) any
}

// LeftOp creates left-associative infix operator.
func LeftOp(prec int, p Parser, action func(left, right any) any) Operator {
	return Operator{Assoc: Left, Prec: prec, Parser: p, Binary: action}
}

// RightOp creates right-associative infix operator.
func RightOp(prec int, p Parser, action func(left, right any) any) Operator {
	return Operator{Assoc: Right, Prec: prec, Parser: p, Binary: action}
}

// PrefixOp creates prefix operator.
func PrefixOp(prec int, p Parser, action func(operand any) any) Operator {
	return Operator{Assoc: Prefix, Prec: prec, Parser: p, Unary: action}
}

func (op Operator) validate() {
	switch op.Assoc {
	case Left, Right:
		if op.Binary == nil {
			panic(missingActionError(op.Assoc, op.Prec))
		}
	case Prefix:
		if op.Unary == nil {
			panic(missingActionError(op.Assoc, op.Prec))
		}
	default:
		panic(wrongAssocError(op.Assoc))
	}
}

func (op Operator) bind(left any) func(any) any {
	return func(right any) any {
		return op.Binary(left, right)
	}
}

func identity(v any) any {
	return v
}

func operatorsOf(ops []Operator, prefix bool) Parser {
	var ps []Parser
	for _, op := range ops {
		if (op.Assoc == Prefix) == prefix {
			ps = append(ps, op.Parser.Return(op))
		}
	}
	if len(ps) == 0 {
		return Fail("no operators")
	}
	return Alternatives(ps...)
}

// Operators parses expressions of operands parsed by p combined with operators
// and yields the result of applying operator actions.
//
// Operands and infix operators alternate, any operand may be preceded by prefix operators.
// An operator with precedence next is applied before the pending operator with precedence prec when
// prec < next for pending left-associative operator, or next <= prec for pending right-associative
// or prefix operator.
// Expressions are reduced with an explicit stack of pending operators, not with recursion.
//
// Panics with parsec.Error if an operator has unknown associativity or lacks an action.
func (p Parser) Operators(ops ...Operator) Parser {
	for _, op := range ops {
		op.validate()
	}
	infixOps := operatorsOf(ops, false)
	prefixOps := operatorsOf(ops, true)

	return New(func(ctx source.Context) Outcome {
		stack := newFrameStack()
		active := frame{Left, 0, identity}
		next := ctx

		for {
			o := p.action(next)
			if !o.IsSuccess() {
				po := prefixOps.action(next)
				if !po.IsSuccess() {
					return Failed("expecting operand or prefix operator at "+source.PosOf(next).String(), o.Failure())
				}

				op := po.Value().Value.(Operator)
				stack.Push(active)
				active = frame{op.Assoc, op.Prec, op.Unary}
				next = po.Value().Context
				continue
			}

			operand := o.Value().Value
			next = o.Value().Context

			io := infixOps.action(next)
			if !io.IsSuccess() {
				value := active.action(operand)
				for !stack.IsEmpty() {
					value = stack.Pop().action(value)
				}
				return Succeeded(value, next)
			}

			op := io.Value().Value.(Operator)
			if active.stacks(op.Prec) {
				stack.Push(active)
			} else {
				operand = active.action(operand)
				for !stack.IsEmpty() && !stack.Top().stacks(op.Prec) {
					operand = stack.Pop().action(operand)
				}
			}
			active = frame{op.Assoc, op.Prec, op.bind(operand)}
			next = io.Value().Context
		}
	})
}
