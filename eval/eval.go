//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package eval implements the tree-walking evaluator: Eval turns an
// already macro-expanded ast.Expr into a value.Value, trampolining tail
// calls through value.Thunk so that deep tail recursion costs O(1) host
// stack.
package eval

import (
	"fmt"
	"math/big"

	"github.com/ferecci/Lambdora/ast"
	lerrors "github.com/ferecci/Lambdora/errors"
	"github.com/ferecci/Lambdora/quasiquote"
	"github.com/ferecci/Lambdora/value"
)

// Run evaluates expr to completion: it starts the walk in tail position
// (so a top-level recursive call benefits from trampolining immediately)
// and drives the trampoline until a non-Thunk value settles out.
func Run(expr ast.Expr, env value.Environment) (value.Value, error) {
	return Trampoline(Eval(expr, env, true))
}

// Eval evaluates expr in env. When isTail is true and expr is an
// Application, Eval returns a *value.Thunk instead of recursing directly;
// the caller (ultimately Trampoline) is responsible for forcing it.
func Eval(expr ast.Expr, env value.Environment, isTail bool) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Variable:
		val, ok := env[e.Name]
		if !ok {
			return nil, lerrors.Newf(lerrors.KindEval, "unbound variable: %s", e.Name)
		}
		if value.IsRecursionPlaceholder(val) {
			return nil, lerrors.Newf(lerrors.KindRecursionInit,
				"recursive binding %q accessed before initialization", e.Name)
		}
		return val, nil

	case *ast.Literal:
		if isDigits(e.Text) {
			n, ok := new(big.Int).SetString(e.Text, 10)
			if !ok {
				return nil, lerrors.Newf(lerrors.KindEval, "malformed integer literal: %s", e.Text)
			}
			return n, nil
		}
		return e.Text, nil

	case *ast.Abstraction:
		return &value.Closure{Param: e.Param, Body: e.Body, Env: env.Copy()}, nil

	case *ast.Application:
		retire := func() (value.Value, error) {
			fn, err := Eval(e.Head, env, false)
			if err != nil {
				return nil, err
			}
			args := make([]value.Value, len(e.Args))
			for i, a := range e.Args {
				args[i], err = Eval(a, env, false)
				if err != nil {
					return nil, err
				}
			}
			return applyFunc(fn, args, isTail)
		}
		if isTail {
			return &value.Thunk{Force: retire}, nil
		}
		return retire()

	case *ast.IfExpr:
		cond, err := Eval(e.Cond, env, false)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(bool)
		if !ok {
			return nil, lerrors.New(lerrors.KindEval, "condition in 'if' must be a boolean")
		}
		if b {
			return Eval(e.Then, env, isTail)
		}
		return Eval(e.Else, env, isTail)

	case *ast.DefineExpr:
		env[e.Name] = value.RecursionPlaceholder
		val, err := Eval(e.Value, env, false)
		if err != nil {
			return nil, err
		}
		if clos, ok := val.(*value.Closure); ok {
			clos.Env[e.Name] = clos
		}
		env[e.Name] = val
		return fmt.Sprintf("<defined %s>", e.Name), nil

	case *ast.LetRec:
		newEnv := env.Copy()
		for _, b := range e.Bindings {
			newEnv[b.Name] = value.RecursionPlaceholder
		}
		for _, b := range e.Bindings {
			val, err := Eval(b.Expr, newEnv, false)
			if err != nil {
				return nil, err
			}
			newEnv[b.Name] = val
			if clos, ok := val.(*value.Closure); ok {
				clos.Env[b.Name] = val
			}
		}
		// Patch every closure produced by a binding so that mutually
		// recursive bindings resolve to each other's final values, not
		// just their own.
		for _, v := range newEnv {
			if clos, ok := v.(*value.Closure); ok {
				for _, b := range e.Bindings {
					clos.Env[b.Name] = newEnv[b.Name]
				}
			}
		}
		var result value.Value = value.Nil
		for i, bodyExpr := range e.Body {
			isLast := i == len(e.Body)-1
			var err error
			result, err = Eval(bodyExpr, newEnv, isTail && isLast)
			if err != nil {
				return nil, err
			}
		}
		return result, nil

	case *ast.DefMacroExpr:
		return nil, lerrors.New(lerrors.KindEval, "macro definition reached the evaluator unexpanded")

	case *ast.QuoteExpr:
		return e.Inner, nil

	case *ast.QuasiQuoteExpr:
		rewritten, err := quasiquote.Runtime(e.Inner, 0, func(x ast.Expr) (interface{}, error) {
			return Eval(x, env, false)
		})
		if err != nil {
			return nil, err
		}
		// The rewritten tree is data, not code: quasiquote yields a value,
		// it does not run it. A bare top-level Embedded (the whole
		// template was a single unquote) unwraps to its carried value;
		// anything else is handed back as a first-class expression tree.
		if embedded, ok := rewritten.(*ast.Embedded); ok {
			return embedded.Value, nil
		}
		return rewritten, nil

	case *ast.UnquoteExpr:
		return nil, lerrors.New(lerrors.KindEval, "unquote only inside quasiquote")

	case *ast.Embedded:
		return e.Value, nil

	default:
		return nil, lerrors.Newf(lerrors.KindEval, "unknown expression type: %T", expr)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
