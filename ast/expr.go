//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package ast defines the expression tree produced by the parser and
// consumed by the macro expander and evaluator.
package ast

// Expr is the tagged sum of expression node kinds. Each concrete type
// below implements it purely as a marker; dispatch is by type switch in
// the parser, macro expander, quasiquote walker, and evaluator, in the
// teacher's one-case-class-per-node style rather than a visitor
// interface with virtual methods per node.
type Expr interface {
	exprNode()
}

// Binding is a single (name, expr) pair in a LetRec form.
type Binding struct {
	Name string
	Expr Expr
}

// Variable is a reference to a bound name.
type Variable struct {
	Name string
}

// Literal is either an integer (when every character is a decimal digit)
// or a string, decided at evaluation time.
type Literal struct {
	Text string
}

// Abstraction is a single-parameter lambda; multi-argument functions are
// curried at the surface by nesting abstractions.
type Abstraction struct {
	Param string
	Body  Expr
}

// Application is an n-ary function call; zero-arg calls are allowed.
type Application struct {
	Head Expr
	Args []Expr
}

// IfExpr is a three-armed conditional.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// DefineExpr binds Name to the value of Value in the current environment,
// top-level or local.
type DefineExpr struct {
	Name  string
	Value Expr
}

// LetRec introduces mutually recursive bindings visible to each other's
// initializers and to the body.
type LetRec struct {
	Bindings []Binding
	Body     []Expr
}

// DefMacroExpr registers a tree-rewriting macro.
type DefMacroExpr struct {
	Name   string
	Params []string
	Body   Expr
}

// QuoteExpr carries Inner as data; it is never evaluated.
type QuoteExpr struct {
	Inner Expr
}

// QuasiQuoteExpr is a template whose Inner may contain UnquoteExpr holes.
type QuasiQuoteExpr struct {
	Inner Expr
}

// UnquoteExpr is only meaningful inside a QuasiQuoteExpr; encountering one
// at quasiquote-depth zero during evaluation is an error.
type UnquoteExpr struct {
	Inner Expr
}

// Embedded wraps an already-computed runtime value (a value.Value, held
// here as interface{} to avoid an import cycle with package value) sitting
// directly in an expression tree. Runtime quasiquote produces these at the
// unquote holes it fills in; the evaluator treats one as self-evaluating.
type Embedded struct {
	Value interface{}
}

func (*Variable) exprNode()       {}
func (*Literal) exprNode()        {}
func (*Abstraction) exprNode()    {}
func (*Application) exprNode()    {}
func (*IfExpr) exprNode()         {}
func (*DefineExpr) exprNode()     {}
func (*LetRec) exprNode()         {}
func (*DefMacroExpr) exprNode()   {}
func (*QuoteExpr) exprNode()      {}
func (*QuasiQuoteExpr) exprNode() {}
func (*UnquoteExpr) exprNode()    {}
func (*Embedded) exprNode()       {}
