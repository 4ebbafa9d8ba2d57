//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package quasiquote implements the two tree walks that quasiquote
// templates require: a macro-expansion-time walk that inlines expanded
// macro calls at unquote holes, and a runtime walk that embeds evaluated
// values at those same holes. Both walks take the expander/evaluator as
// a callback rather than importing the macro or eval packages directly,
// which keeps this package a leaf in the dependency graph.
package quasiquote

import "github.com/ferecci/Lambdora/ast"

// MacroWalk reproduces expr verbatim, except that an UnquoteExpr found at
// depth 0 has its inner expression macro-expanded (via expand) and
// inlined in its place. Nested quasiquote/unquote forms adjust depth.
func MacroWalk(expr ast.Expr, depth int, expand func(ast.Expr) (ast.Expr, error)) (ast.Expr, error) {
	switch e := expr.(type) {
	case *ast.UnquoteExpr:
		if depth == 0 {
			expanded, err := expand(e.Inner)
			if err != nil {
				return nil, err
			}
			if expanded == nil {
				expanded = e.Inner
			}
			return &ast.UnquoteExpr{Inner: expanded}, nil
		}
		inner, err := MacroWalk(e.Inner, depth-1, expand)
		if err != nil {
			return nil, err
		}
		return &ast.UnquoteExpr{Inner: inner}, nil

	case *ast.QuasiQuoteExpr:
		inner, err := MacroWalk(e.Inner, depth+1, expand)
		if err != nil {
			return nil, err
		}
		return &ast.QuasiQuoteExpr{Inner: inner}, nil

	case *ast.Application:
		head, err := MacroWalk(e.Head, depth, expand)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i], err = MacroWalk(a, depth, expand)
			if err != nil {
				return nil, err
			}
		}
		return &ast.Application{Head: head, Args: args}, nil

	case *ast.Abstraction:
		body, err := MacroWalk(e.Body, depth, expand)
		if err != nil {
			return nil, err
		}
		return &ast.Abstraction{Param: e.Param, Body: body}, nil

	case *ast.IfExpr:
		cond, err := MacroWalk(e.Cond, depth, expand)
		if err != nil {
			return nil, err
		}
		then, err := MacroWalk(e.Then, depth, expand)
		if err != nil {
			return nil, err
		}
		els, err := MacroWalk(e.Else, depth, expand)
		if err != nil {
			return nil, err
		}
		return &ast.IfExpr{Cond: cond, Then: then, Else: els}, nil

	case *ast.DefineExpr:
		val, err := MacroWalk(e.Value, depth, expand)
		if err != nil {
			return nil, err
		}
		return &ast.DefineExpr{Name: e.Name, Value: val}, nil

	case *ast.DefMacroExpr:
		body, err := MacroWalk(e.Body, depth, expand)
		if err != nil {
			return nil, err
		}
		return &ast.DefMacroExpr{Name: e.Name, Params: e.Params, Body: body}, nil

	case *ast.LetRec:
		bindings := make([]ast.Binding, len(e.Bindings))
		for i, b := range e.Bindings {
			rhs, err := MacroWalk(b.Expr, depth, expand)
			if err != nil {
				return nil, err
			}
			bindings[i] = ast.Binding{Name: b.Name, Expr: rhs}
		}
		body := make([]ast.Expr, len(e.Body))
		for i, b := range e.Body {
			var err error
			body[i], err = MacroWalk(b, depth, expand)
			if err != nil {
				return nil, err
			}
		}
		return &ast.LetRec{Bindings: bindings, Body: body}, nil

	default:
		// Variable, Literal, QuoteExpr, Embedded: pass through unchanged.
		return expr, nil
	}
}

// Runtime produces a new tree in which each UnquoteExpr found at depth 0
// is replaced by an *ast.Embedded wrapping the value of evaluating its
// inner expression via eval. Nested quasiquotes only reduce depth for the
// unquotes nested within them; a sibling quasiquote's own depth-0 holes
// are unaffected.
func Runtime(expr ast.Expr, depth int, eval func(ast.Expr) (interface{}, error)) (ast.Expr, error) {
	switch e := expr.(type) {
	case *ast.UnquoteExpr:
		if depth == 0 {
			val, err := eval(e.Inner)
			if err != nil {
				return nil, err
			}
			return &ast.Embedded{Value: val}, nil
		}
		inner, err := Runtime(e.Inner, depth-1, eval)
		if err != nil {
			return nil, err
		}
		return &ast.UnquoteExpr{Inner: inner}, nil

	case *ast.QuasiQuoteExpr:
		inner, err := Runtime(e.Inner, depth+1, eval)
		if err != nil {
			return nil, err
		}
		return &ast.QuasiQuoteExpr{Inner: inner}, nil

	case *ast.Application:
		head, err := Runtime(e.Head, depth, eval)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i], err = Runtime(a, depth, eval)
			if err != nil {
				return nil, err
			}
		}
		return &ast.Application{Head: head, Args: args}, nil

	case *ast.Abstraction:
		body, err := Runtime(e.Body, depth, eval)
		if err != nil {
			return nil, err
		}
		return &ast.Abstraction{Param: e.Param, Body: body}, nil

	case *ast.IfExpr:
		cond, err := Runtime(e.Cond, depth, eval)
		if err != nil {
			return nil, err
		}
		then, err := Runtime(e.Then, depth, eval)
		if err != nil {
			return nil, err
		}
		els, err := Runtime(e.Else, depth, eval)
		if err != nil {
			return nil, err
		}
		return &ast.IfExpr{Cond: cond, Then: then, Else: els}, nil

	case *ast.DefineExpr:
		val, err := Runtime(e.Value, depth, eval)
		if err != nil {
			return nil, err
		}
		return &ast.DefineExpr{Name: e.Name, Value: val}, nil

	case *ast.DefMacroExpr:
		body, err := Runtime(e.Body, depth, eval)
		if err != nil {
			return nil, err
		}
		return &ast.DefMacroExpr{Name: e.Name, Params: e.Params, Body: body}, nil

	case *ast.LetRec:
		bindings := make([]ast.Binding, len(e.Bindings))
		for i, b := range e.Bindings {
			rhs, err := Runtime(b.Expr, depth, eval)
			if err != nil {
				return nil, err
			}
			bindings[i] = ast.Binding{Name: b.Name, Expr: rhs}
		}
		body := make([]ast.Expr, len(e.Body))
		for i, b := range e.Body {
			var err error
			body[i], err = Runtime(b, depth, eval)
			if err != nil {
				return nil, err
			}
		}
		return &ast.LetRec{Bindings: bindings, Body: body}, nil

	default:
		// Variable, Literal, QuoteExpr, Embedded: pass through unchanged.
		return expr, nil
	}
}
