package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sanity-io/litter"
	"github.com/urfave/cli/v2"

	"simple_arithmetic_compiler/compiler"
)

// An interactive front end for the arithmetic compiler: reads one expression,
// runs every phase and prints the artifacts of each one.

func main() {
	app := &cli.App{
		Name:      "simulator",
		Usage:     "run the phases of the arithmetic compiler over one expression",
		ArgsUsage: "[expression]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "tokens-only",
				Usage: "stop after lexical analysis and print the token list only",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "also dump the raw compilation result structure",
			},
		},
		Action: run,
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	expression := c.Args().First()
	if expression == "" {
		var err error
		expression, err = readExpression()
		if err != nil {
			return err
		}
	}
	if c.Bool("tokens-only") {
		return printTokens(expression)
	}
	result, err := compiler.Compile(expression)
	if err != nil {
		return describeError(err)
	}
	printResult(result)
	if c.Bool("dump") {
		litter.Dump(result)
	}
	return nil
}

func readExpression() (string, error) {
	fmt.Print("Introduce una expresión aritmética: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printTokens(expression string) error {
	tokenizer := &compiler.Tokenizer{}
	tokens, err := tokenizer.Tokenize(expression)
	if err != nil {
		return describeError(err)
	}
	fmt.Println("\n=== Tokens ===")
	fmt.Println(compiler.FormatTokens(tokens))
	return nil
}

// describeError labels the two error kinds the way the console reports them.
func describeError(err error) error {
	switch err.(type) {
	case *compiler.LexicalError:
		return fmt.Errorf("Error léxico: %v", err)
	case *compiler.SyntaxError:
		return fmt.Errorf("Error sintáctico: %v", err)
	}
	return err
}

func printResult(result *compiler.CompileResult) {
	fmt.Println("\n=== Tokens ===")
	fmt.Println(compiler.FormatTokens(result.Tokens))
	fmt.Println("\n=== AST ===")
	fmt.Println(compiler.FormatAst(result.Ast))
	fmt.Println("\n=== Tabla de símbolos ===")
	for _, entry := range result.SymbolTable {
		fmt.Println(compiler.FormatSymbolEntry(entry))
	}
	fmt.Println("\n=== Tabla de tipos ===")
	for _, entry := range result.TypeTable {
		fmt.Println(compiler.FormatTypeEntry(entry))
	}
	fmt.Println("\n=== Código de tres direcciones ===")
	for _, instruction := range result.Instructions {
		fmt.Println(instruction)
	}
	fmt.Printf("Resultado final en: %s\n", result.Result)
}
