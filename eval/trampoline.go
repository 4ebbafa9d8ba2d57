//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package eval

import (
	lerrors "github.com/ferecci/Lambdora/errors"
	"github.com/ferecci/Lambdora/value"
)

// Trampoline forces val (and any error already in hand) until a non-Thunk
// value settles out. This is what bounds host stack growth for a chain of
// tail calls to O(1): each Force call returns before the next one begins,
// rather than nesting inside it.
func Trampoline(val value.Value, err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	for {
		t, ok := val.(*value.Thunk)
		if !ok {
			return val, nil
		}
		val, err = t.Force()
		if err != nil {
			return nil, err
		}
	}
}

// applyFunc applies funcVal to args one at a time, curried style. A
// Closure or Primitive that still expects more arguments than were given
// is returned partially applied; extras beyond what a fully-applied
// Closure/Primitive chain accepts are never reached by well-typed callers,
// mirroring the reference evaluator's behavior of simply stopping once the
// callee is no longer callable.
func applyFunc(funcVal value.Value, args []value.Value, isTail bool) (value.Value, error) {
	switch fv := funcVal.(type) {
	case *value.Closure:
		var result value.Value = fv
		for i, arg := range args {
			clos, ok := result.(*value.Closure)
			if !ok {
				return result, nil
			}
			newEnv := clos.Env.Extend(clos.Param, arg)
			isLastArg := i == len(args)-1
			next, err := Eval(clos.Body, newEnv, isTail && isLastArg)
			if err != nil {
				return nil, err
			}
			result = next
		}
		return result, nil

	case *value.Primitive:
		var result value.Value = fv
		for _, arg := range args {
			prim, ok := result.(*value.Primitive)
			if !ok {
				return result, nil
			}
			next, err := prim.Fn(arg)
			if err != nil {
				return nil, err
			}
			result = next
		}
		if len(args) == 0 {
			if prim, ok := result.(*value.Primitive); ok {
				return prim.Fn(value.Nil)
			}
		}
		return result, nil

	default:
		return nil, lerrors.New(lerrors.KindEval, "tried to apply a non-function value")
	}
}
