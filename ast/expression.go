// Package ast defines the uniform binary expression tree shared by every
// syntactic construct the parser produces: binary/unary operators,
// parenthesization, named groupings (and their multi-argument parameter
// spines), and number/symbol leaves.
package ast

import "github.com/njchilds90/gocas/token"

// Expression is a binary tree node. Left and/or Right may be nil depending
// on the shape of Root — see the package doc comment for the mapping from
// token.Type to which children are populated.
type Expression struct {
	Root  token.Token
	Left  *Expression
	Right *Expression
}

// New builds a leaf expression from a token.
func New(root token.Token) *Expression {
	return &Expression{Root: root}
}

// NewBinary builds a binary operator/grouping node.
func NewBinary(root token.Token, left, right *Expression) *Expression {
	return &Expression{Root: root, Left: left, Right: right}
}

// NewUnary builds a unary prefix node (left is nil, operand is right).
func NewUnary(root token.Token, operand *Expression) *Expression {
	return &Expression{Root: root, Right: operand}
}

// Clone deep-copies e. Every rewrite that reuses a subtree under a new
// parent must clone it first — see the cloning discipline in SPEC_FULL.md
// §9; subtrees are never shared between two parents.
func Clone(e *Expression) *Expression {
	if e == nil {
		return nil
	}
	return &Expression{
		Root:  e.Root,
		Left:  Clone(e.Left),
		Right: Clone(e.Right),
	}
}

// IsLeaf reports whether e has no children.
func (e *Expression) IsLeaf() bool {
	return e != nil && e.Left == nil && e.Right == nil
}

// IsNumber reports whether e is a NUMBER leaf.
func (e *Expression) IsNumber() bool {
	return e != nil && e.Root.Type == token.NUMBER
}

// IsSymbol reports whether e is a SYMBOL leaf.
func (e *Expression) IsSymbol() bool {
	return e != nil && e.Root.Type == token.SYMBOL
}

// SymbolName returns the symbol name and true if e is a SYMBOL leaf.
func (e *Expression) SymbolName() (string, bool) {
	if !e.IsSymbol() {
		return "", false
	}
	s, ok := e.Root.Str()
	return s, ok
}

// IsOperator reports whether e is an OPERATOR node with the given
// character root.
func (e *Expression) IsOperator(op byte) bool {
	return e != nil && e.Root.Type == token.OPERATOR && e.Root.Char() == op
}

// IsGrouping reports whether e is a GROUPING node with the given name.
func (e *Expression) IsGrouping(name string) bool {
	if e == nil || e.Root.Type != token.GROUPING {
		return false
	}
	s, ok := e.Root.Str()
	return ok && s == name
}

// IsUnaryMinus reports whether e is a unary (left-absent) `-` node.
func (e *Expression) IsUnaryMinus() bool {
	return e.IsOperator('-') && e.Left == nil && e.Right != nil
}

// StructurallyEqual reports whether a and b have the same shape and the
// same token values at every node (numbers compared via numericEquals).
func StructurallyEqual(a, b *Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !token.Equal(a.Root, b.Root) {
		return false
	}
	return StructurallyEqual(a.Left, b.Left) && StructurallyEqual(a.Right, b.Right)
}

// Walk calls visit on e and every descendant, left then right, in
// pre-order. visit returning false stops descent into that node's
// children (e itself is still visited).
func Walk(e *Expression, visit func(*Expression) bool) {
	if e == nil {
		return
	}
	if !visit(e) {
		return
	}
	Walk(e.Left, visit)
	Walk(e.Right, visit)
}

// Spine walks a linked list of wrapper nodes built the way BuildSpine
// builds the parser's dd/int/integrate/rootsResult/factorResult chains:
// each wrapper's Left is its payload and Right is the next wrapper (or
// nil at the end).
func Spine(head *Expression) []*Expression {
	var out []*Expression
	for cur := head; cur != nil; cur = cur.Right {
		out = append(out, cur.Left)
	}
	return out
}

// BuildSpine constructs a linked chain of GROUPING(name) wrapper nodes,
// one per payload, terminated by a nil Right.
func BuildSpine(name string, payloads []*Expression) *Expression {
	var head *Expression
	var tail *Expression
	for _, p := range payloads {
		wrapper := &Expression{Root: token.New(token.GROUPING, name), Left: p}
		if head == nil {
			head = wrapper
		} else {
			tail.Right = wrapper
		}
		tail = wrapper
	}
	return head
}
