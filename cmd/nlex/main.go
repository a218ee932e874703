package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/agenthands/nlex/pkg/format"
	"github.com/agenthands/nlex/pkg/lexer"
	"github.com/agenthands/nlex/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: nlex [scan|repl] ...")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "scan":
		runScan()
	case "repl":
		runRepl()
	default:
		fmt.Println("Unknown command:", os.Args[1])
		os.Exit(1)
	}
}

func runScan() {
	scanCmd := flag.NewFlagSet("scan", flag.ExitOnError)
	expr := scanCmd.String("e", "", "tokenize the given source instead of files")
	color := scanCmd.Bool("color", false, "styled token output")
	scanCmd.Parse(os.Args[2:])

	if *expr != "" {
		fmt.Print(render([]byte(*expr), *color))
		return
	}

	files := scanCmd.Args()
	if len(files) == 0 {
		fmt.Println("Usage: nlex scan [-color] [-e source] <file>...")
		os.Exit(1)
	}

	// Tokenize files in parallel; outputs stay in argument order.
	outputs := make([]string, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			outputs[i] = render(src, *color)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, path := range files {
		if len(files) > 1 {
			fmt.Printf("== %s\n", path)
		}
		fmt.Print(outputs[i])
	}
}

func runRepl() {
	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func render(src []byte, color bool) string {
	tokens := lexer.NewScanner(src).Tokenize()
	if color {
		return ui.NewHighlighter().Tokens(tokens)
	}
	var b strings.Builder
	format.Tokens(&b, tokens)
	return b.String()
}
