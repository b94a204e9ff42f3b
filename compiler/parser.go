package compiler

import (
	"fmt"
	"strconv"
)

// SyntaxError is a grammar violation. Position is only meaningful when
// HasPosition is set; a violation detected at end of input has no token to
// blame and carries no position.
type SyntaxError struct {
	Message     string
	Position    int
	HasPosition bool
}

func (err *SyntaxError) Error() string {
	if err.HasPosition {
		return fmt.Sprintf("%s at position %d", err.Message, err.Position)
	}
	return err.Message
}

type Parser struct {
	currentTokenPos int
	currentTokens   []*Token
}

// Parse builds the ast of tokens. The grammar, precedence low to high, all
// operators left-associative:
//
//   expression := term ( ('+'|'-') term )*
//   term       := factor ( ('*'|'/') factor )*
//   factor     := NUMBER | '(' expression ')'
//
// Parsing is a single forward pass with one token of lookahead. Every token
// must be consumed; a leftover token is a syntax error.
func (parser *Parser) Parse(tokens []*Token) (AstNode, error) {
	if len(tokens) == 0 {
		return nil, &SyntaxError{Message: "expression is empty"}
	}
	parser.currentTokens, parser.currentTokenPos = tokens, 0
	node, err := parser.parseExpression()
	if err != nil {
		return nil, err
	}
	if parser.hasRemainTokens() {
		token, _ := parser.getCurrentToken()
		return nil, parser.makeError("unexpected token", token.startPos)
	}
	return node, nil
}

func (parser *Parser) parseExpression() (AstNode, error) {
	node, err := parser.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		opToken, match := parser.expectOneOf(PlusTP, MinusTP)
		if !match {
			break
		}
		right, err := parser.parseTerm()
		if err != nil {
			return nil, err
		}
		// Left fold keeps chains left-associative: 1-2-3 is (1-2)-3.
		node = &BinaryOpNode{Op: opToken.content, Left: node, Right: right}
	}
	return node, nil
}

func (parser *Parser) parseTerm() (AstNode, error) {
	node, err := parser.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		opToken, match := parser.expectOneOf(MulTP, DivTP)
		if !match {
			break
		}
		right, err := parser.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &BinaryOpNode{Op: opToken.content, Left: node, Right: right}
	}
	return node, nil
}

func (parser *Parser) parseFactor() (AstNode, error) {
	numberToken, match := parser.expectToken(NumberTP, true)
	if match {
		value, err := strconv.Atoi(numberToken.content)
		if err != nil {
			return nil, parser.makeError("number literal out of range", numberToken.startPos)
		}
		return &NumberNode{Value: value}, nil
	}
	_, match = parser.expectToken(LeftParenTP, true)
	if match {
		node, err := parser.parseExpression()
		if err != nil {
			return nil, err
		}
		_, match = parser.expectToken(RightParenTP, true)
		if !match {
			return nil, parser.makeError("expected ')'", parser.closingParenPos())
		}
		return node, nil
	}
	token, ok := parser.getCurrentToken()
	if !ok {
		return nil, &SyntaxError{Message: "invalid factor"}
	}
	return nil, parser.makeError("invalid factor", token.startPos)
}

// closingParenPos is where a missing ')' gets reported: the position of
// whatever token is there instead, or one past the last consumed token when
// the input is exhausted.
func (parser *Parser) closingParenPos() int {
	if parser.hasRemainTokens() {
		return parser.currentTokens[parser.currentTokenPos].startPos
	}
	return parser.currentTokens[parser.currentTokenPos-1].startPos + 1
}

func (parser *Parser) getCurrentToken() (*Token, bool) {
	if !parser.hasRemainTokens() {
		return nil, false
	}
	return parser.currentTokens[parser.currentTokenPos], true
}

// expectOneOf consumes and returns the current token when its type is one of
// expectedTokenTPs.
func (parser *Parser) expectOneOf(expectedTokenTPs ...TokenType) (*Token, bool) {
	for _, tokenType := range expectedTokenTPs {
		token, match := parser.expectToken(tokenType, true)
		if match {
			return token, true
		}
	}
	return nil, false
}

func (parser *Parser) expectToken(expectedTokenTp TokenType, walk bool) (*Token, bool) {
	if parser.currentTokenPos >= len(parser.currentTokens) ||
		parser.currentTokens[parser.currentTokenPos].tp != expectedTokenTp {
		return nil, false
	}
	token := parser.currentTokens[parser.currentTokenPos]
	if walk {
		parser.currentTokenPos++
	}
	return token, true
}

func (parser *Parser) hasRemainTokens() bool {
	return parser.currentTokenPos < len(parser.currentTokens)
}

func (parser *Parser) makeError(message string, position int) error {
	return &SyntaxError{Message: message, Position: position, HasPosition: true}
}
