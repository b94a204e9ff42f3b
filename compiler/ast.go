package compiler

// In this file, we defined the ast of arithmetic expressions. The grammar only
// has two node shapes: a number leaf and a binary operator owning a left and a
// right child, so AstNode is a closed variant set and every consumer dispatches
// with an exhaustive type switch.

type AstNode interface {
	astNode()
}

type NumberNode struct {
	Value int
}

type BinaryOpNode struct {
	Op    string
	Left  AstNode
	Right AstNode
}

func (node *NumberNode) astNode() {}

func (node *BinaryOpNode) astNode() {}
