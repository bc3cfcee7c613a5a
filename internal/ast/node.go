// Package ast defines the expression tree built by the parser and walked by the evaluator.
// Every node exclusively owns its children, so a tree never shares or cycles.
package ast

import (
	"strconv"
	"strings"
)

// Node is implemented by every expression tree node.
type Node interface {
	String() string
	node()
}

// Op identifies a binary arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpMod Op = '%'
	OpPow Op = '^'
)

func (o Op) String() string {
	return string(o)
}

// Literal is a numeric literal. Hex and binary literals are already decoded.
type Literal struct {
	Value float64
}

// UnaryMinus negates its operand.
type UnaryMinus struct {
	Operand Node
}

// BinaryOp applies Op to Left and Right.
type BinaryOp struct {
	Op          Op
	Left, Right Node
}

// FunctionCall applies a named single-argument function.
type FunctionCall struct {
	Name string
	Arg  Node
}

// Constant is a named constant such as pi, resolved during evaluation.
type Constant struct {
	Name string
}

func (*Literal) node()      {}
func (*UnaryMinus) node()   {}
func (*BinaryOp) node()     {}
func (*FunctionCall) node() {}
func (*Constant) node()     {}

func (l *Literal) String() string {
	return strconv.FormatFloat(l.Value, 'g', -1, 64)
}

func (u *UnaryMinus) String() string {
	return "(-" + u.Operand.String() + ")"
}

func (b *BinaryOp) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.Left.String())
	sb.WriteByte(' ')
	sb.WriteByte(byte(b.Op))
	sb.WriteByte(' ')
	sb.WriteString(b.Right.String())
	sb.WriteByte(')')
	return sb.String()
}

func (f *FunctionCall) String() string {
	return f.Name + "(" + f.Arg.String() + ")"
}

func (c *Constant) String() string {
	return c.Name
}

// Depth returns the height of the tree rooted at n; a leaf has depth 1.
func Depth(n Node) int {
	switch n := n.(type) {
	case *UnaryMinus:
		return 1 + Depth(n.Operand)
	case *BinaryOp:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case *FunctionCall:
		return 1 + Depth(n.Arg)
	default:
		return 1
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n Node) int {
	switch n := n.(type) {
	case *UnaryMinus:
		return 1 + Count(n.Operand)
	case *BinaryOp:
		return 1 + Count(n.Left) + Count(n.Right)
	case *FunctionCall:
		return 1 + Count(n.Arg)
	default:
		return 1
	}
}
