package compiler

// CompileResult bundles every artifact of one successful compilation.
type CompileResult struct {
	Tokens       []*Token
	Ast          AstNode
	SymbolTable  []*SymbolEntry
	TypeTable    []*TypeEntry
	Instructions []string
	Result       string
}

// Compile runs the whole pipeline over one expression: tokenize, parse, build
// the semantic tables, generate three-address code. The first *LexicalError or
// *SyntaxError aborts the compilation and is returned as is, with no partial
// result.
func Compile(source string) (*CompileResult, error) {
	tokenizer := &Tokenizer{}
	tokens, err := tokenizer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	parser := &Parser{}
	ast, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	tables := buildSemanticTables(ast)
	instructions, result := generateCode(ast, tables)
	return &CompileResult{
		Tokens:       tokens,
		Ast:          ast,
		SymbolTable:  tables.SymbolTable,
		TypeTable:    tables.TypeTable,
		Instructions: instructions,
		Result:       result,
	}, nil
}
