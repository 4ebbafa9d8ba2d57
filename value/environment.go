//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package value

import "maps"

// Environment maps identifiers to values with lexical nesting achieved
// through copy-on-capture rather than a parent-frame chain: Abstraction
// evaluation snapshots the current environment into the closure, and
// applying a closure extends a fresh copy of that snapshot with the
// parameter binding, so sibling calls never see each other's bindings.
//
// define and defmacro are the only operations that mutate the current
// Environment in place; define and letrec also write into a Closure's
// captured Env in place to patch in recursive bindings. Because Go maps are reference types, a Closure's Env field
// shares the very same underlying map until the next copy-on-capture —
// which is exactly what lets the recursive self-reference patch in the
// evaluator (writing a closure's own name into its captured environment
// after the fact) become visible to subsequent calls.
type Environment map[string]Value

// NewEnvironment returns an empty, ready-to-use environment.
func NewEnvironment() Environment {
	return make(Environment)
}

// Copy returns a shallow copy of env: a new map with the same bindings.
// The bound values themselves (including any Closures) are shared by
// reference, not deep-copied.
func (env Environment) Copy() Environment {
	return maps.Clone(env)
}

// Extend returns a copy of env with name bound to val, used when a
// closure consumes one more argument.
func (env Environment) Extend(name string, val Value) Environment {
	next := env.Copy()
	next[name] = val
	return next
}
