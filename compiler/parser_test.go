package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseExpressionForTest(t *testing.T, content string) (AstNode, error) {
	tokenizer := &Tokenizer{}
	tokens, err := tokenizer.Tokenize(content)
	assert.Nil(t, err)
	parser := &Parser{}
	return parser.Parse(tokens)
}

func TestParser_LeftAssociativity(t *testing.T) {
	ast, err := parseExpressionForTest(t, "8-3-2")
	assert.Nil(t, err)
	assert.Equal(t, &BinaryOpNode{
		Op: "-",
		Left: &BinaryOpNode{
			Op:    "-",
			Left:  &NumberNode{Value: 8},
			Right: &NumberNode{Value: 3},
		},
		Right: &NumberNode{Value: 2},
	}, ast)
}

func TestParser_Precedence(t *testing.T) {
	ast, err := parseExpressionForTest(t, "2+3*4")
	assert.Nil(t, err)
	assert.Equal(t, &BinaryOpNode{
		Op:   "+",
		Left: &NumberNode{Value: 2},
		Right: &BinaryOpNode{
			Op:    "*",
			Left:  &NumberNode{Value: 3},
			Right: &NumberNode{Value: 4},
		},
	}, ast)
}

func TestParser_Parentheses(t *testing.T) {
	ast, err := parseExpressionForTest(t, "(1+2)*3")
	assert.Nil(t, err)
	assert.Equal(t, &BinaryOpNode{
		Op: "*",
		Left: &BinaryOpNode{
			Op:    "+",
			Left:  &NumberNode{Value: 1},
			Right: &NumberNode{Value: 2},
		},
		Right: &NumberNode{Value: 3},
	}, ast)
}

func TestParser_SingleNumber(t *testing.T) {
	ast, err := parseExpressionForTest(t, " 42 ")
	assert.Nil(t, err)
	assert.Equal(t, &NumberNode{Value: 42}, ast)
}

func TestParser_EmptyExpression(t *testing.T) {
	parser := &Parser{}
	ast, err := parser.Parse(nil)
	assert.Nil(t, ast)
	assert.Equal(t, &SyntaxError{Message: "expression is empty"}, err)
}

func TestParser_SyntaxErrors(t *testing.T) {
	testData := []struct {
		content       string
		expectedError *SyntaxError
	}{
		// A factor start at end of input has no token to point at.
		{content: "2+", expectedError: &SyntaxError{Message: "invalid factor"}},
		{content: "+2", expectedError: &SyntaxError{Message: "invalid factor", Position: 0, HasPosition: true}},
		{content: "1*)", expectedError: &SyntaxError{Message: "invalid factor", Position: 2, HasPosition: true}},
		// A leftover token after a complete expression.
		{content: "1 2", expectedError: &SyntaxError{Message: "unexpected token", Position: 2, HasPosition: true}},
		{content: "(1+2)3", expectedError: &SyntaxError{Message: "unexpected token", Position: 5, HasPosition: true}},
		// A missing ')' at end of input reports one past the last token.
		{content: "(2+3", expectedError: &SyntaxError{Message: "expected ')'", Position: 4, HasPosition: true}},
		// A missing ')' with tokens left reports the token found instead.
		{content: "(2+3 4)", expectedError: &SyntaxError{Message: "expected ')'", Position: 5, HasPosition: true}},
	}
	for _, data := range testData {
		ast, err := parseExpressionForTest(t, data.content)
		assert.Nil(t, ast)
		assert.Equal(t, data.expectedError, err)
	}
}

func TestParser_NumberOutOfRange(t *testing.T) {
	ast, err := parseExpressionForTest(t, "1+99999999999999999999999999")
	assert.Nil(t, ast)
	assert.Equal(t, &SyntaxError{Message: "number literal out of range", Position: 2, HasPosition: true}, err)
}
