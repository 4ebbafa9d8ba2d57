//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package printer renders expression trees and runtime values back to
// surface syntax: a recursive-descent walk writing into a
// strings.Builder rather than building and concatenating substrings.
package printer

import (
	"fmt"
	"strings"

	"github.com/ferecci/Lambdora/ast"
	"github.com/ferecci/Lambdora/value"
)

// PrintExpr renders expr as Lambdora surface syntax.
func PrintExpr(expr ast.Expr) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func writeExpr(b *strings.Builder, expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		b.WriteString(e.Name)

	case *ast.Literal:
		b.WriteString(e.Text)

	case *ast.Abstraction:
		fmt.Fprintf(b, "(lambda %s . ", e.Param)
		writeExpr(b, e.Body)
		b.WriteByte(')')

	case *ast.Application:
		b.WriteByte('(')
		writeExpr(b, e.Head)
		for _, arg := range e.Args {
			b.WriteByte(' ')
			writeExpr(b, arg)
		}
		b.WriteByte(')')

	case *ast.IfExpr:
		b.WriteString("(if ")
		writeExpr(b, e.Cond)
		b.WriteByte(' ')
		writeExpr(b, e.Then)
		b.WriteByte(' ')
		writeExpr(b, e.Else)
		b.WriteByte(')')

	case *ast.DefineExpr:
		fmt.Fprintf(b, "(define %s ", e.Name)
		writeExpr(b, e.Value)
		b.WriteByte(')')

	case *ast.LetRec:
		b.WriteString("(letrec (")
		for i, bind := range e.Bindings {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "(%s ", bind.Name)
			writeExpr(b, bind.Expr)
			b.WriteByte(')')
		}
		b.WriteByte(')')
		for _, bodyExpr := range e.Body {
			b.WriteByte(' ')
			writeExpr(b, bodyExpr)
		}
		b.WriteByte(')')

	case *ast.DefMacroExpr:
		fmt.Fprintf(b, "(defmacro %s (%s) ", e.Name, strings.Join(e.Params, " "))
		writeExpr(b, e.Body)
		b.WriteByte(')')

	case *ast.QuoteExpr:
		b.WriteByte('\'')
		writeExpr(b, e.Inner)

	case *ast.QuasiQuoteExpr:
		b.WriteByte('`')
		writeExpr(b, e.Inner)

	case *ast.UnquoteExpr:
		b.WriteByte(',')
		writeExpr(b, e.Inner)

	case *ast.Embedded:
		b.WriteString(PrintValue(e.Value))

	default:
		fmt.Fprintf(b, "<unknown expression: %T>", expr)
	}
}

// PrintValue renders a runtime value the way print and the REPL's => line
// do: integers and strings as themselves, booleans as true/false
// literals, pairs as a parenthesized list (improper tails use a dotted
// "."  separator), and closures/primitives/macros as an opaque tag.
func PrintValue(val value.Value) string {
	switch v := val.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"

	case string:
		return v

	case *value.Closure:
		return fmt.Sprintf("<closure λ%s. …>", v.Param)

	case *value.Primitive:
		return fmt.Sprintf("<builtin %s>", v.Name)

	case *value.Macro:
		return "<macro>"

	case *value.Pair:
		var b strings.Builder
		b.WriteByte('(')
		first := true
		var cur value.Value = v
		for {
			pair, ok := cur.(*value.Pair)
			if !ok {
				break
			}
			if !first {
				b.WriteByte(' ')
			}
			first = false
			b.WriteString(PrintValue(pair.Head))
			cur = pair.Tail
		}
		if !value.IsNil(cur) {
			b.WriteString(" . ")
			b.WriteString(PrintValue(cur))
		}
		b.WriteByte(')')
		return b.String()

	case ast.Expr:
		return PrintExpr(v)

	default:
		if value.IsNil(val) {
			return "nil"
		}
		if value.IsInteger(val) {
			return fmt.Sprintf("%v", val)
		}
		return fmt.Sprintf("<unknown value: %v>", val)
	}
}
