/*
File    : cas-go/cmd/cas/render.go
*/
package main

import (
	"strings"

	"github.com/casforge/cas-go/algebra"
)

// renderExpr renders an algebraic expression back to infix notation for
// display. This is ambient CLI formatting, not a library concern — the
// algebra and simplify packages never format anything themselves.
func renderExpr(e algebra.Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func writeExpr(b *strings.Builder, e algebra.Expr) {
	switch e.Tag {
	case algebra.TagPrimary:
		writePrimary(b, e.Primary)
	case algebra.TagAdd:
		for i, t := range e.Terms {
			if i > 0 {
				b.WriteString(" + ")
			}
			writeExpr(b, t)
		}
	case algebra.TagMul:
		for i, f := range e.Factors {
			if i > 0 {
				b.WriteString(" * ")
			}
			writeFactor(b, f)
		}
	case algebra.TagExp:
		writeFactor(b, *e.Base)
		b.WriteString("^")
		writeFactor(b, *e.Power)
	}
}

// writeFactor parenthesizes a Mul factor or Exp base/power when it is
// itself an Add or Mul. Nothing else is parenthesized: a non-integer
// constant is written as "num/den" and an Exp base that is itself an
// Exp is written bare, and such text does not reparse to the same tree.
func writeFactor(b *strings.Builder, e algebra.Expr) {
	if e.Tag == algebra.TagAdd || e.Tag == algebra.TagMul {
		b.WriteString("(")
		writeExpr(b, e)
		b.WriteString(")")
		return
	}
	writeExpr(b, e)
}

func writePrimary(b *strings.Builder, p algebra.Primary) {
	switch p.Kind {
	case algebra.PrimaryNumber:
		b.WriteString(p.Number.String())
	case algebra.PrimarySymbol:
		b.WriteString(p.Symbol)
	case algebra.PrimaryCall:
		b.WriteString(p.Name)
		b.WriteString("(")
		for i, a := range p.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, a)
		}
		b.WriteString(")")
	}
}
