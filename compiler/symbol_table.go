package compiler

import "strconv"

// SymbolEntry maps one distinct literal to its synthetic address.
type SymbolEntry struct {
	Symbol  string
	Address string
}

// TypeEntry records the type tag of one distinct literal. The language has a
// single type, so Type is always "integer".
type TypeEntry struct {
	Symbol string
	Type   string
}

const integerTypeTag = "integer"

// SemanticTables holds the symbol and type tables of one compilation plus the
// value to address lookup consumed by code generation. Rows keep the
// left-to-right first-occurrence order of literals in the source; a literal
// appearing twice keeps its first address and adds no second row.
type SemanticTables struct {
	SymbolTable []*SymbolEntry
	TypeTable   []*TypeEntry
	addresses   map[int]string
}

func buildSemanticTables(ast AstNode) *SemanticTables {
	tables := &SemanticTables{addresses: map[int]string{}}
	tables.visit(ast)
	return tables
}

func (tables *SemanticTables) visit(node AstNode) {
	switch node := node.(type) {
	case *NumberNode:
		_, ok := tables.addresses[node.Value]
		if ok {
			return
		}
		symbol := strconv.Itoa(node.Value)
		address := "dir_" + strconv.Itoa(len(tables.addresses)+1)
		tables.addresses[node.Value] = address
		tables.SymbolTable = append(tables.SymbolTable, &SymbolEntry{Symbol: symbol, Address: address})
		tables.TypeTable = append(tables.TypeTable, &TypeEntry{Symbol: symbol, Type: integerTypeTag})
	case *BinaryOpNode:
		tables.visit(node.Left)
		tables.visit(node.Right)
	}
}

// lookUpAddress returns the address assigned to a literal value.
func (tables *SemanticTables) lookUpAddress(value int) string {
	return tables.addresses[value]
}
