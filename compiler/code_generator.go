package compiler

import "fmt"

// CodeGenerator emits three-address code for one ast. The temporary counter is
// a field, so every generation owns its own numbering and concurrent
// compilations never share state.
type CodeGenerator struct {
	tables       *SemanticTables
	tempCount    int
	instructions []string
}

// generateCode walks ast bottom up and returns the instruction list plus the
// reference holding the whole expression: the last temporary, or the literal's
// table address when the ast is a single leaf.
func generateCode(ast AstNode, tables *SemanticTables) ([]string, string) {
	generator := &CodeGenerator{tables: tables}
	result := generator.generate(ast)
	return generator.instructions, result
}

// generate evaluates node's children before node, so instructions come out in
// post order. A leaf emits nothing and evaluates to its address.
func (generator *CodeGenerator) generate(node AstNode) string {
	switch node := node.(type) {
	case *NumberNode:
		return generator.tables.lookUpAddress(node.Value)
	case *BinaryOpNode:
		left := generator.generate(node.Left)
		right := generator.generate(node.Right)
		dest := generator.nextTemporary()
		generator.instructions = append(generator.instructions,
			fmt.Sprintf("%s = %s %s %s", dest, left, node.Op, right))
		return dest
	}
	return ""
}

func (generator *CodeGenerator) nextTemporary() string {
	generator.tempCount++
	return fmt.Sprintf("t%d", generator.tempCount)
}
