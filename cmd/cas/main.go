/*
File    : cas-go/cmd/cas/main.go
*/
package main

import (
	"os"
	"strings"

	"github.com/casforge/cas-go/algebra"
	"github.com/casforge/cas-go/parser"
	"github.com/casforge/cas-go/simplify"
	"github.com/fatih/color"
)

// VERSION is the current version of the cas CLI.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information shown in the banner.
var AUTHOR = "casforge"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "cas >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   ___  __ _ ___
  / __\/ _\ / __|
 / /  / \  \__ \
/_/   \_/  |___/
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColorMain    = color.New(color.FgRed)
	yellowColorMain = color.New(color.FgYellow)
	cyanColorMain   = color.New(color.FgCyan)
)

// main dispatches between REPL mode (no arguments) and file mode (a
// single path argument), mirroring the teacher's main/main.go.
func main() {
	if len(os.Args) > 1 {
		switch arg := os.Args[1]; arg {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		default:
			runFile(arg)
		}
		return
	}

	repler := NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdout)
}

func showHelp() {
	cyanColorMain.Println("cas - a computer algebra simplifier")
	cyanColorMain.Println("")
	cyanColorMain.Println("USAGE:")
	yellowColorMain.Println("  cas                     Start interactive REPL mode")
	yellowColorMain.Println("  cas <path-to-file>      Simplify each expression in a file, one per line")
	yellowColorMain.Println("  cas --help              Display this help message")
	yellowColorMain.Println("  cas --version           Display version information")
}

func showVersion() {
	cyanColorMain.Printf("cas %s (%s)\n", VERSION, LICENSE)
}

// runFile reads a file, parses and simplifies each non-blank line that
// does not start with '#' as an independent expression, and prints the
// result. A line with parse
// errors has them printed to stderr and is skipped; the process exits
// non-zero if any line failed.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColorMain.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	failed := false
	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		ast, errs := parser.Parse(trimmed)
		if len(errs) > 0 {
			failed = true
			for _, e := range errs {
				redColorMain.Fprintf(os.Stderr, "%s\n", e.Pretty(trimmed))
			}
			continue
		}

		expr := algebra.ToAlgebraic(ast)
		result := simplify.Simplify(expr)
		yellowColorMain.Fprintf(os.Stdout, "%s\n", renderExpr(result))
	}

	if failed {
		os.Exit(1)
	}
}
