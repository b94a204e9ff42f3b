package compiler

import (
	"fmt"
	"strings"
)

// Formatting helpers consumed by the console driver. The core phases never
// print; they only hand these renderers their artifacts.

// FormatTokens renders a token list as <NUMBER, 5> for numbers and <PLUS> and
// friends for symbols, space separated.
func FormatTokens(tokens []*Token) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token.tp == NumberTP {
			parts = append(parts, fmt.Sprintf("<%s, %s>", token.tp, token.content))
			continue
		}
		parts = append(parts, fmt.Sprintf("<%s>", token.tp))
	}
	return strings.Join(parts, " ")
}

// FormatAst renders the tree depth first, two spaces of indent per level,
// with Número(value) and Operador('op') labels.
func FormatAst(node AstNode) string {
	return formatAstLevel(node, 0)
}

func formatAstLevel(node AstNode, level int) string {
	indent := strings.Repeat("  ", level)
	switch node := node.(type) {
	case *NumberNode:
		return fmt.Sprintf("%sNúmero(%d)", indent, node.Value)
	case *BinaryOpNode:
		return fmt.Sprintf("%sOperador('%s')\n%s\n%s", indent, node.Op,
			formatAstLevel(node.Left, level+1), formatAstLevel(node.Right, level+1))
	}
	return indent
}

// FormatSymbolEntry renders one symbol table row.
func FormatSymbolEntry(entry *SymbolEntry) string {
	return fmt.Sprintf("Símbolo: %s, Dirección: %s", entry.Symbol, entry.Address)
}

// FormatTypeEntry renders one type table row.
func FormatTypeEntry(entry *TypeEntry) string {
	return fmt.Sprintf("Símbolo: %s, Tipo: %s", entry.Symbol, entry.Type)
}
