//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package builtins

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferecci/Lambdora/eval"
	"github.com/ferecci/Lambdora/macro"
	"github.com/ferecci/Lambdora/parser"
	"github.com/ferecci/Lambdora/value"
)

func evalWithBuiltins(t *testing.T, src string) value.Value {
	t.Helper()
	env := NewTopEnv()
	exprs, err := parser.ParseAll("t", src)
	require.NoError(t, err)
	expanded, err := macro.ExpandProgram(exprs, env)
	require.NoError(t, err)
	var result value.Value
	for _, e := range expanded {
		result, err = eval.Run(e, env)
		require.NoError(t, err)
	}
	return result
}

func TestArithmeticPrimitives(t *testing.T) {
	assert.Equal(t, big.NewInt(3), evalWithBuiltins(t, "(+ 1 2)"))
	assert.Equal(t, big.NewInt(-1), evalWithBuiltins(t, "(- 1 2)"))
	assert.Equal(t, big.NewInt(6), evalWithBuiltins(t, "(* 2 3)"))
}

func TestFloorDivision(t *testing.T) {
	assert.Equal(t, big.NewInt(-2), evalWithBuiltins(t, "(/ (- 0 3) 2)"))
	assert.Equal(t, big.NewInt(1), evalWithBuiltins(t, "(% (- 0 3) 2)"))
}

func TestComparisonPrimitives(t *testing.T) {
	assert.Equal(t, true, evalWithBuiltins(t, "(= 2 2)"))
	assert.Equal(t, true, evalWithBuiltins(t, "(< 1 2)"))
	assert.Equal(t, false, evalWithBuiltins(t, "(< 2 1)"))
}

func TestBooleanPrimitives(t *testing.T) {
	assert.Equal(t, false, evalWithBuiltins(t, "(not true)"))
	assert.Equal(t, true, evalWithBuiltins(t, "(and true true)"))
	assert.Equal(t, false, evalWithBuiltins(t, "(or false false)"))
}

func TestListPrimitives(t *testing.T) {
	result := evalWithBuiltins(t, "(head (cons 1 2))")
	assert.Equal(t, big.NewInt(1), result)

	result = evalWithBuiltins(t, "(isNil nil)")
	assert.Equal(t, true, result)

	result = evalWithBuiltins(t, "(isNil (cons 1 nil))")
	assert.Equal(t, false, result)
}

func TestDivisionByZeroIsError(t *testing.T) {
	env := NewTopEnv()
	exprs, err := parser.ParseAll("t", "(/ 1 0)")
	require.NoError(t, err)
	expanded, err := macro.ExpandProgram(exprs, env)
	require.NoError(t, err)
	_, err = eval.Run(expanded[0], env)
	require.Error(t, err)
}

func TestGensymProducesDistinctNames(t *testing.T) {
	env := NewTopEnv()
	exprs, err := parser.ParseAll("t", "(gensym nil)")
	require.NoError(t, err)
	expanded, err := macro.ExpandProgram(exprs, env)
	require.NoError(t, err)
	a, err := eval.Run(expanded[0], env)
	require.NoError(t, err)
	b, err := eval.Run(expanded[0], env)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
