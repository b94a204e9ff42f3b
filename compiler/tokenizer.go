package compiler

import (
	"fmt"

	"simple_arithmetic_compiler/util"
)

// A simple Tokenizer for arithmetic expressions.

// The language has those elements:
// * Number: a run of decimal digits, like 42.
// * Symbol: +, -, *, /, (, ).
// Whitespace is skipped and produces no token.

type TokenType int

const (
	NumberTP     TokenType = iota // 42
	PlusTP                        // +
	MinusTP                       // -
	MulTP                         // *
	DivTP                         // /
	LeftParenTP                   // (
	RightParenTP                  // )
)

// tokenTypeNames is the mapping from TokenType to the name used when rendering tokens.
var tokenTypeNames = map[TokenType]string{
	NumberTP:     "NUMBER",
	PlusTP:       "PLUS",
	MinusTP:      "MINUS",
	MulTP:        "MUL",
	DivTP:        "DIV",
	LeftParenTP:  "LPAREN",
	RightParenTP: "RPAREN",
}

func (tp TokenType) String() string {
	return tokenTypeNames[tp]
}

// simpleSymbolTokenTPMap is the mapping from a single-character symbol to the
// corresponding TokenTP.
var simpleSymbolTokenTPMap = map[byte]TokenType{
	'+': PlusTP,
	'-': MinusTP,
	'*': MulTP,
	'/': DivTP,
	'(': LeftParenTP,
	')': RightParenTP,
}

type Token struct {
	content  string
	startPos int
	tp       TokenType
}

// LexicalError reports the first unrecognized character of an expression.
// Position is the 0-based offset of the character in the source string.
type LexicalError struct {
	Position  int
	Character byte
}

func (err *LexicalError) Error() string {
	return fmt.Sprintf("unrecognized character %q at position %d", err.Character, err.Position)
}

type Tokenizer struct {
	currentPos int
	tokens     []*Token
}

// Tokenize scans source left to right and returns its tokens in order. Scanning
// stops at the first unrecognized character with a *LexicalError.
func (tokenizer *Tokenizer) Tokenize(source string) ([]*Token, error) {
	line := []byte(source)
	for tokenizer.currentPos < len(line) {
		b := line[tokenizer.currentPos]
		switch {
		case util.IsNumber(b):
			tokenizer.tokens = append(tokenizer.tokens, tokenizer.tokenNumber(line))
		case util.IsSpace(b):
			tokenizer.currentPos++
		default:
			tp, ok := simpleSymbolTokenTPMap[b]
			if !ok {
				return nil, &LexicalError{Position: tokenizer.currentPos, Character: b}
			}
			tokenizer.tokens = append(tokenizer.tokens, tokenizer.tokenSimpleSymbol(line, tp))
		}
	}
	return tokenizer.tokens, nil
}

func (tokenizer *Tokenizer) tokenSimpleSymbol(line []byte, tp TokenType) *Token {
	token := &Token{
		content:  string(line[tokenizer.currentPos]),
		tp:       tp,
		startPos: tokenizer.currentPos,
	}
	tokenizer.currentPos++
	return token
}

func (tokenizer *Tokenizer) tokenNumber(line []byte) *Token {
	// Look forward to find a continuous number.
	startPos := tokenizer.currentPos
	tokenizer.currentPos++
	for tokenizer.currentPos < len(line) {
		if util.IsNumber(line[tokenizer.currentPos]) {
			tokenizer.currentPos++
			continue
		}
		break
	}
	return &Token{
		content:  string(line[startPos:tokenizer.currentPos]),
		tp:       NumberTP,
		startPos: startPos,
	}
}

func (tokenizer *Tokenizer) Reset() {
	tokenizer.currentPos, tokenizer.tokens = 0, nil
}
