//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package prelude embeds the standard library source and loads it into a
// top-level environment before user code runs, in either the REPL or the
// file runner.
package prelude

import (
	_ "embed"

	"github.com/ferecci/Lambdora/eval"
	"github.com/ferecci/Lambdora/macro"
	"github.com/ferecci/Lambdora/parser"
	"github.com/ferecci/Lambdora/value"
)

//go:embed std.lamb
var source string

// Source returns the embedded prelude text, mainly for tests that want to
// exercise it directly through the parser/macro/eval pipeline.
func Source() string {
	return source
}

// Load parses, macro-expands, and evaluates the prelude into env.
func Load(env value.Environment) error {
	exprs, err := parser.ParseAll("<prelude>", source)
	if err != nil {
		return err
	}
	expanded, err := macro.ExpandProgram(exprs, env)
	if err != nil {
		return err
	}
	for _, e := range expanded {
		if _, err := eval.Run(e, env); err != nil {
			return err
		}
	}
	return nil
}
