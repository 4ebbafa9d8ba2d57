//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferecci/Lambdora/ast"
)

func TestParseApplication(t *testing.T) {
	expr, err := ParseOne("t", "(+ 1 2)")
	require.NoError(t, err)
	app, ok := expr.(*ast.Application)
	require.True(t, ok)
	head, ok := app.Head.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "+", head.Name)
	require.Len(t, app.Args, 2)
}

func TestParseLambda(t *testing.T) {
	expr, err := ParseOne("t", "(lambda x . (* x x))")
	require.NoError(t, err)
	abs, ok := expr.(*ast.Abstraction)
	require.True(t, ok)
	assert.Equal(t, "x", abs.Param)
}

func TestParseLambdaSymbol(t *testing.T) {
	expr, err := ParseOne("t", "(λ x . x)")
	require.NoError(t, err)
	_, ok := expr.(*ast.Abstraction)
	require.True(t, ok)
}

func TestParseLet(t *testing.T) {
	expr, err := ParseOne("t", "(let x 5 (* x x))")
	require.NoError(t, err)
	app, ok := expr.(*ast.Application)
	require.True(t, ok)
	abs, ok := app.Head.(*ast.Abstraction)
	require.True(t, ok)
	assert.Equal(t, "x", abs.Param)
	require.Len(t, app.Args, 1)
}

func TestParseLetrec(t *testing.T) {
	expr, err := ParseOne("t", "(letrec ((x 1) (y 2)) x y)")
	require.NoError(t, err)
	lr, ok := expr.(*ast.LetRec)
	require.True(t, ok)
	require.Len(t, lr.Bindings, 2)
	assert.Equal(t, "x", lr.Bindings[0].Name)
	require.Len(t, lr.Body, 2)
}

func TestParseLetrecEmptyBodyIsError(t *testing.T) {
	_, err := ParseOne("t", "(letrec ((x 1)))")
	require.Error(t, err)
}

func TestParseDefine(t *testing.T) {
	expr, err := ParseOne("t", "(define sq (lambda x . (* x x)))")
	require.NoError(t, err)
	def, ok := expr.(*ast.DefineExpr)
	require.True(t, ok)
	assert.Equal(t, "sq", def.Name)
}

func TestParseIf(t *testing.T) {
	expr, err := ParseOne("t", "(if true 1 2)")
	require.NoError(t, err)
	ifx, ok := expr.(*ast.IfExpr)
	require.True(t, ok)
	assert.NotNil(t, ifx.Cond)
}

func TestParseDefMacro(t *testing.T) {
	expr, err := ParseOne("t", "(defmacro when (c b) (if c b nil))")
	require.NoError(t, err)
	m, ok := expr.(*ast.DefMacroExpr)
	require.True(t, ok)
	assert.Equal(t, "when", m.Name)
	assert.Equal(t, []string{"c", "b"}, m.Params)
}

func TestParseQuoteForms(t *testing.T) {
	expr, err := ParseOne("t", "(quote (a b))")
	require.NoError(t, err)
	_, ok := expr.(*ast.QuoteExpr)
	require.True(t, ok)

	expr, err = ParseOne("t", "'(a b)")
	require.NoError(t, err)
	_, ok = expr.(*ast.QuoteExpr)
	require.True(t, ok)
}

func TestParseQuasiQuoteAndUnquote(t *testing.T) {
	expr, err := ParseOne("t", "`(a ,b)")
	require.NoError(t, err)
	qq, ok := expr.(*ast.QuasiQuoteExpr)
	require.True(t, ok)
	app, ok := qq.Inner.(*ast.Application)
	require.True(t, ok)
	_, ok = app.Args[0].(*ast.UnquoteExpr)
	require.True(t, ok)
}

func TestParseStringLiteralStripsQuotes(t *testing.T) {
	expr, err := ParseOne("t", `"hello"`)
	require.NoError(t, err)
	lit, ok := expr.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "hello", lit.Text)
}

func TestParseTrailingTokensIsError(t *testing.T) {
	_, err := ParseOne("t", "1 2")
	require.Error(t, err)
}

func TestParseAllSequence(t *testing.T) {
	exprs, err := ParseAll("t", "(define x 1) (define y 2) (+ x y)")
	require.NoError(t, err)
	require.Len(t, exprs, 3)
}

func TestParseUnmatchedParenIsError(t *testing.T) {
	_, err := ParseOne("t", "(+ 1 2")
	require.Error(t, err)
}

func TestParseUnexpectedCloseParenIsError(t *testing.T) {
	_, err := ParseOne("t", ")")
	require.Error(t, err)
}

func TestParseZeroArgApplication(t *testing.T) {
	expr, err := ParseOne("t", "(f)")
	require.NoError(t, err)
	app, ok := expr.(*ast.Application)
	require.True(t, ok)
	assert.Empty(t, app.Args)
}
