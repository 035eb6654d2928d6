/*
File    : cas-go/cmd/cas/repl.go
*/

// Package main implements the cas REPL and file-mode CLI. It is ambient
// tooling around the parser/algebra/simplify packages, not a module
// spec.md describes itself.
package main

import (
	"io"
	"strings"

	"github.com/casforge/cas-go/algebra"
	"github.com/casforge/cas-go/parser"
	"github.com/casforge/cas-go/simplify"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output, matching the teacher's palette:
// blue for separators, yellow for results, red for errors, green for the
// banner, cyan for informational text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive read-simplify-print loop over cas expressions.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	Steps   bool // when true, print the fired rewrite steps after each result
}

// NewRepl creates a Repl with the given display fields.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and basic usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to cas!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter to simplify it")
	cyanColor.Fprintf(writer, "%s\n", "Type '.steps' to toggle the rewrite-step trace, '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main REPL loop until the user exits or EOF is reached.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == ".steps" {
			r.Steps = !r.Steps
			cyanColor.Fprintf(writer, "step trace: %v\n", r.Steps)
			continue
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line)
	}
}

// evalLine parses, converts, and simplifies a single line of input,
// printing every collected parse error and then the simplified result
// of the (possibly recovered) tree.
func (r *Repl) evalLine(writer io.Writer, line string) {
	ast, errs := parser.Parse(line)
	for _, e := range errs {
		redColor.Fprintf(writer, "%s\n", e.Pretty(line))
	}

	expr := algebra.ToAlgebraic(ast)

	if r.Steps {
		result, steps := simplify.SimplifyWithSteps(expr)
		yellowColor.Fprintf(writer, "%s\n", renderExpr(result))
		if len(steps) > 0 {
			names := make([]string, len(steps))
			for i, s := range steps {
				names[i] = s.String()
			}
			cyanColor.Fprintf(writer, "steps: %s\n", strings.Join(names, " -> "))
		}
		return
	}

	result := simplify.Simplify(expr)
	yellowColor.Fprintf(writer, "%s\n", renderExpr(result))
}
