//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package builtins constructs the top-level environment: the curried
// primitive functions every Lambdora program starts with, plus the true,
// false, and nil constants.
package builtins

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"

	lerrors "github.com/ferecci/Lambdora/errors"
	"github.com/ferecci/Lambdora/printer"
	"github.com/ferecci/Lambdora/value"
)

// NewTopEnv returns a fresh top-level environment populated with every
// built-in primitive and constant.
func NewTopEnv() value.Environment {
	env := value.NewEnvironment()

	env["true"] = true
	env["false"] = false
	env["nil"] = value.Nil

	env["+"] = curriedIntOp("+", func(x, y *big.Int) value.Value { return new(big.Int).Add(x, y) })
	env["-"] = curriedIntOp("-", func(x, y *big.Int) value.Value { return new(big.Int).Sub(x, y) })
	env["*"] = curriedIntOp("*", func(x, y *big.Int) value.Value { return new(big.Int).Mul(x, y) })
	env["/"] = curriedIntOpErr("/", func(x, y *big.Int) (value.Value, error) {
		if y.Sign() == 0 {
			return nil, lerrors.New(lerrors.KindBuiltin, "division by zero")
		}
		q, m := new(big.Int).QuoRem(x, y, new(big.Int))
		// Floor division: when the remainder is non-zero and signs
		// differ, the truncating quotient rounds toward zero, so step
		// it down by one to round toward negative infinity instead.
		if m.Sign() != 0 && (m.Sign() < 0) != (y.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		}
		return q, nil
	})
	env["%"] = curriedIntOpErr("%", func(x, y *big.Int) (value.Value, error) {
		if y.Sign() == 0 {
			return nil, lerrors.New(lerrors.KindBuiltin, "modulo by zero")
		}
		m := new(big.Int).Mod(x, y)
		// big.Int.Mod is Euclidean (never negative); shift a non-zero
		// result by the divisor so it takes the divisor's sign, matching
		// the floor division above.
		if m.Sign() != 0 && y.Sign() < 0 {
			m.Add(m, y)
		}
		return m, nil
	})

	env["="] = curriedIntPredicate("=", func(x, y *big.Int) bool { return x.Cmp(y) == 0 })
	env["<"] = curriedIntPredicate("<", func(x, y *big.Int) bool { return x.Cmp(y) < 0 })

	env["not"] = primitive("not", func(x value.Value) (value.Value, error) {
		b, err := requireBool("not", x)
		if err != nil {
			return nil, err
		}
		return !b, nil
	})
	env["and"] = curriedBoolOp("and", func(x, y bool) bool { return x && y })
	env["or"] = curriedBoolOp("or", func(x, y bool) bool { return x || y })

	env["print"] = primitive("print", func(x value.Value) (value.Value, error) {
		fmt.Println(printer.PrintValue(x))
		return value.Nil, nil
	})

	env["cons"] = primitive("cons", func(head value.Value) (value.Value, error) {
		return primitive("cons-curried", func(tail value.Value) (value.Value, error) {
			return value.Cons(head, tail), nil
		}), nil
	})
	env["head"] = primitive("head", func(p value.Value) (value.Value, error) {
		pair, ok := p.(*value.Pair)
		if !ok {
			return nil, lerrors.New(lerrors.KindBuiltin, "head expects a pair")
		}
		return pair.Head, nil
	})
	env["tail"] = primitive("tail", func(p value.Value) (value.Value, error) {
		pair, ok := p.(*value.Pair)
		if !ok {
			return nil, lerrors.New(lerrors.KindBuiltin, "tail expects a pair")
		}
		return pair.Tail, nil
	})
	env["isNil"] = primitive("isNil", func(p value.Value) (value.Value, error) {
		return value.IsNil(p), nil
	})

	// gensym produces a fresh, never-before-seen identifier for macro
	// hygiene, backed by a random UUID rather than the reference
	// interpreter's process-global counter, so it stays safe for
	// concurrent REPL sessions without any shared mutable state.
	env["gensym"] = primitive("gensym", func(value.Value) (value.Value, error) {
		return fmt.Sprintf("__gensym_%s", uuid.New().String()), nil
	})

	return env
}

func primitive(name string, fn value.PrimitiveFunc) *value.Primitive {
	return &value.Primitive{Name: name, Fn: fn}
}

func requireInt(name string, v value.Value) (*big.Int, error) {
	n, ok := v.(*big.Int)
	if !ok {
		return nil, lerrors.Newf(lerrors.KindBuiltin, "%s expects an integer argument", name)
	}
	return n, nil
}

func requireBool(name string, v value.Value) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, lerrors.Newf(lerrors.KindBuiltin, "%s expects a boolean argument", name)
	}
	return b, nil
}

func curriedIntOp(name string, op func(x, y *big.Int) value.Value) *value.Primitive {
	return primitive(name, func(xv value.Value) (value.Value, error) {
		x, err := requireInt(name, xv)
		if err != nil {
			return nil, err
		}
		return primitive(name+"-curried", func(yv value.Value) (value.Value, error) {
			y, err := requireInt(name, yv)
			if err != nil {
				return nil, err
			}
			return op(x, y), nil
		}), nil
	})
}

func curriedIntOpErr(name string, op func(x, y *big.Int) (value.Value, error)) *value.Primitive {
	return primitive(name, func(xv value.Value) (value.Value, error) {
		x, err := requireInt(name, xv)
		if err != nil {
			return nil, err
		}
		return primitive(name+"-curried", func(yv value.Value) (value.Value, error) {
			y, err := requireInt(name, yv)
			if err != nil {
				return nil, err
			}
			return op(x, y)
		}), nil
	})
}

func curriedIntPredicate(name string, pred func(x, y *big.Int) bool) *value.Primitive {
	return primitive(name, func(xv value.Value) (value.Value, error) {
		x, err := requireInt(name, xv)
		if err != nil {
			return nil, err
		}
		return primitive(name+"-curried", func(yv value.Value) (value.Value, error) {
			y, err := requireInt(name, yv)
			if err != nil {
				return nil, err
			}
			return pred(x, y), nil
		}), nil
	})
}

func curriedBoolOp(name string, op func(x, y bool) bool) *value.Primitive {
	return primitive(name, func(xv value.Value) (value.Value, error) {
		x, err := requireBool(name, xv)
		if err != nil {
			return nil, err
		}
		return primitive(name+"-curried", func(yv value.Value) (value.Value, error) {
			y, err := requireBool(name, yv)
			if err != nil {
				return nil, err
			}
			return op(x, y), nil
		}), nil
	})
}
