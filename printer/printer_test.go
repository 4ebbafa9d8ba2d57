//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferecci/Lambdora/parser"
	"github.com/ferecci/Lambdora/value"
)

func TestPrintExprRoundTripsApplication(t *testing.T) {
	expr, err := parser.ParseOne("t", "(+ 1 2)")
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2)", PrintExpr(expr))
}

func TestPrintExprLambda(t *testing.T) {
	expr, err := parser.ParseOne("t", "(lambda x . (* x x))")
	require.NoError(t, err)
	assert.Equal(t, "(lambda x . (* x x))", PrintExpr(expr))
}

func TestPrintValueBooleans(t *testing.T) {
	assert.Equal(t, "true", PrintValue(true))
	assert.Equal(t, "false", PrintValue(false))
}

func TestPrintValueInteger(t *testing.T) {
	assert.Equal(t, "42", PrintValue(value.NewInteger(42)))
}

func TestPrintValueNil(t *testing.T) {
	assert.Equal(t, "nil", PrintValue(value.Nil))
}

func TestPrintValuePair(t *testing.T) {
	list := value.Cons(value.NewInteger(1), value.Cons(value.NewInteger(2), value.Nil))
	assert.Equal(t, "(1 2)", PrintValue(list))
}

func TestPrintValueImproperPair(t *testing.T) {
	pair := value.Cons(value.NewInteger(1), value.NewInteger(2))
	assert.Equal(t, "(1 . 2)", PrintValue(pair))
}

func TestPrintValueClosure(t *testing.T) {
	clos := &value.Closure{Param: "x", Env: value.NewEnvironment()}
	assert.Contains(t, PrintValue(clos), "closure")
}
