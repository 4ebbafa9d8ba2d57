//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package value defines the runtime value universe of Lambdora: integers,
// booleans, strings, pairs, nil, closures, primitives, macros, thunks,
// and first-class expressions.
package value

import (
	"math/big"

	"github.com/ferecci/Lambdora/ast"
)

// Value is any runtime datum. Lambdora is dynamically typed, so — in the
// same spirit as the Scheme and Tcl interpreters this tree grew out of,
// which dispatch on interface{}/Symbol/Pair with a type switch rather
// than a closed sum-type hierarchy — Value is simply interface{}, and
// every package that consumes one does so with a type switch over the
// concrete Go types below.
type Value = interface{}

// Closure is a function value carrying the environment it closed over at
// the point the Abstraction was evaluated.
type Closure struct {
	Param string
	Body  ast.Expr
	Env   Environment
}

// PrimitiveFunc is a single-argument built-in function. Curried
// multi-argument primitives return another *Primitive awaiting the next
// argument.
type PrimitiveFunc func(Value) (Value, error)

// Primitive is a built-in function value.
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

// Macro is a registered tree-rewriting rule: defmacro binds a name to one
// of these in the environment, and the macro expander consumes it.
type Macro struct {
	Params []string
	Body   ast.Expr
}

// Thunk is an unevaluated continuation used to make tail calls stackless.
// The trampoline repeatedly forces thunks until a non-Thunk value
// appears; a Thunk must never itself be returned to user-visible output.
type Thunk struct {
	Force func() (Value, error)
}

// Pair is a cons cell: a singly linked list node with Nil as terminator.
type Pair struct {
	Head Value
	Tail Value
}

// Cons builds a new pair.
func Cons(head, tail Value) *Pair {
	return &Pair{Head: head, Tail: tail}
}

// nilType is the unique sentinel marking the empty list, distinct from
// the boolean false.
type nilType struct{}

// Nil is the singleton empty-list value.
var Nil Value = nilType{}

// IsNil reports whether v is the Nil sentinel.
func IsNil(v Value) bool {
	_, ok := v.(nilType)
	return ok
}

// recursionPlaceholder is written into an environment while a letrec or
// top-level define's right-hand side is being evaluated, so that a read
// of the name before its initializer completes can be distinguished from
// a genuinely unbound variable.
type recursionPlaceholder struct{}

// RecursionPlaceholder is the sentinel value bound to a letrec/define
// name until its initializer finishes evaluating.
var RecursionPlaceholder Value = recursionPlaceholder{}

// IsRecursionPlaceholder reports whether v is the placeholder sentinel.
func IsRecursionPlaceholder(v Value) bool {
	_, ok := v.(recursionPlaceholder)
	return ok
}

// NewInteger wraps an int64 as an arbitrary-precision Integer value.
func NewInteger(i int64) *big.Int {
	return big.NewInt(i)
}

// IsInteger reports whether v is an Integer value.
func IsInteger(v Value) bool {
	_, ok := v.(*big.Int)
	return ok
}

// IsExpression reports whether v is a first-class expression tree, as
// produced by quote and quasiquote.
func IsExpression(v Value) bool {
	_, ok := v.(ast.Expr)
	return ok
}
