//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package macro

import (
	"github.com/samber/lo"

	"github.com/ferecci/Lambdora/ast"
)

// substitute performs a capture-unaware tree walk, replacing every
// Variable whose name is a key of mapping with the corresponding
// expression. It is deliberately naive: a macro parameter named the same
// as an Abstraction's own parameter still gets substituted underneath it,
// matching the reference implementation's lack of hygiene.
func substitute(expr ast.Expr, mapping map[string]ast.Expr) ast.Expr {
	switch e := expr.(type) {
	case *ast.Variable:
		if repl, ok := mapping[e.Name]; ok {
			return repl
		}
		return e

	case *ast.Application:
		return &ast.Application{
			Head: substitute(e.Head, mapping),
			Args: substituteAll(e.Args, mapping),
		}

	case *ast.Abstraction:
		return &ast.Abstraction{Param: e.Param, Body: substitute(e.Body, mapping)}

	case *ast.IfExpr:
		return &ast.IfExpr{
			Cond: substitute(e.Cond, mapping),
			Then: substitute(e.Then, mapping),
			Else: substitute(e.Else, mapping),
		}

	case *ast.DefineExpr:
		return &ast.DefineExpr{Name: e.Name, Value: substitute(e.Value, mapping)}

	case *ast.DefMacroExpr:
		return &ast.DefMacroExpr{Name: e.Name, Params: e.Params, Body: substitute(e.Body, mapping)}

	case *ast.LetRec:
		bindings := make([]ast.Binding, len(e.Bindings))
		for i, b := range e.Bindings {
			bindings[i] = ast.Binding{Name: b.Name, Expr: substitute(b.Expr, mapping)}
		}
		return &ast.LetRec{Bindings: bindings, Body: substituteAll(e.Body, mapping)}

	case *ast.QuoteExpr:
		return &ast.QuoteExpr{Inner: substitute(e.Inner, mapping)}

	case *ast.QuasiQuoteExpr:
		return &ast.QuasiQuoteExpr{Inner: substitute(e.Inner, mapping)}

	case *ast.UnquoteExpr:
		return &ast.UnquoteExpr{Inner: substitute(e.Inner, mapping)}

	default:
		// Literal and Embedded carry no sub-expressions to rewrite.
		return expr
	}
}

func substituteAll(exprs []ast.Expr, mapping map[string]ast.Expr) []ast.Expr {
	return lo.Map(exprs, func(e ast.Expr, _ int) ast.Expr {
		return substitute(e, mapping)
	})
}
