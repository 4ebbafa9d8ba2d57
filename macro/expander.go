//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package macro implements the macro expansion pass that runs between
// parsing and evaluation: it registers defmacro forms into the
// environment and rewrites every macro call site into its substituted,
// recursively re-expanded body.
package macro

import (
	"github.com/ferecci/Lambdora/ast"
	lerrors "github.com/ferecci/Lambdora/errors"
	"github.com/ferecci/Lambdora/quasiquote"
	"github.com/ferecci/Lambdora/value"
)

// Expand walks expr, registering macro definitions into env as it finds
// them and rewriting macro calls into their expanded form. A nil Expr
// with a nil error means expr was fully consumed (a DefMacroExpr
// registration) and has nothing to re-insert in its place; callers that
// recurse into sub-expressions must fall back to the original child when
// they see this.
func Expand(expr ast.Expr, env value.Environment) (ast.Expr, error) {
	switch e := expr.(type) {
	case *ast.DefMacroExpr:
		env[e.Name] = &value.Macro{Params: e.Params, Body: e.Body}
		return nil, nil

	case *ast.Application:
		if head, ok := e.Head.(*ast.Variable); ok {
			if m, ok := env[head.Name].(*value.Macro); ok {
				if len(e.Args) != len(m.Params) {
					return nil, lerrors.Newf(lerrors.KindMacroExpansion,
						"macro %q expects %d argument(s), got %d", head.Name, len(m.Params), len(e.Args))
				}
				mapping := make(map[string]ast.Expr, len(m.Params))
				for i, param := range m.Params {
					mapping[param] = e.Args[i]
				}
				return Expand(substitute(m.Body, mapping), env)
			}
		}
		head, err := expandOrKeep(e.Head, env)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i], err = expandOrKeep(a, env)
			if err != nil {
				return nil, err
			}
		}
		return &ast.Application{Head: head, Args: args}, nil

	case *ast.Abstraction:
		body, err := expandOrKeep(e.Body, env)
		if err != nil {
			return nil, err
		}
		return &ast.Abstraction{Param: e.Param, Body: body}, nil

	case *ast.IfExpr:
		cond, err := expandOrKeep(e.Cond, env)
		if err != nil {
			return nil, err
		}
		then, err := expandOrKeep(e.Then, env)
		if err != nil {
			return nil, err
		}
		els, err := expandOrKeep(e.Else, env)
		if err != nil {
			return nil, err
		}
		return &ast.IfExpr{Cond: cond, Then: then, Else: els}, nil

	case *ast.DefineExpr:
		val, err := expandOrKeep(e.Value, env)
		if err != nil {
			return nil, err
		}
		return &ast.DefineExpr{Name: e.Name, Value: val}, nil

	case *ast.LetRec:
		bindings := make([]ast.Binding, len(e.Bindings))
		for i, b := range e.Bindings {
			rhs, err := expandOrKeep(b.Expr, env)
			if err != nil {
				return nil, err
			}
			bindings[i] = ast.Binding{Name: b.Name, Expr: rhs}
		}
		body := make([]ast.Expr, len(e.Body))
		for i, b := range e.Body {
			var err error
			body[i], err = expandOrKeep(b, env)
			if err != nil {
				return nil, err
			}
		}
		return &ast.LetRec{Bindings: bindings, Body: body}, nil

	case *ast.QuasiQuoteExpr:
		inner, err := quasiquote.MacroWalk(e.Inner, 0, func(x ast.Expr) (ast.Expr, error) {
			return expandOrKeep(x, env)
		})
		if err != nil {
			return nil, err
		}
		return &ast.QuasiQuoteExpr{Inner: inner}, nil

	case *ast.UnquoteExpr:
		inner, err := expandOrKeep(e.Inner, env)
		if err != nil {
			return nil, err
		}
		return &ast.UnquoteExpr{Inner: inner}, nil

	default:
		// Variable, Literal, QuoteExpr, Embedded: leaves pass through.
		return expr, nil
	}
}

// expandOrKeep expands a sub-expression, substituting the original back in
// when Expand reports the node was absorbed (only meaningful for
// DefMacroExpr, but sub-expressions can legally contain one, e.g. inside
// a LetRec body).
func expandOrKeep(expr ast.Expr, env value.Environment) (ast.Expr, error) {
	expanded, err := Expand(expr, env)
	if err != nil {
		return nil, err
	}
	if expanded == nil {
		return expr, nil
	}
	return expanded, nil
}

// ExpandProgram expands every top-level expression in order, threading a
// single environment through so earlier defmacro forms are visible to
// later ones. Expressions fully absorbed by expansion (defmacro forms)
// are omitted from the result.
func ExpandProgram(exprs []ast.Expr, env value.Environment) ([]ast.Expr, error) {
	var out []ast.Expr
	for _, expr := range exprs {
		expanded, err := Expand(expr, env)
		if err != nil {
			return nil, err
		}
		if expanded != nil {
			out = append(out, expanded)
		}
	}
	return out, nil
}
