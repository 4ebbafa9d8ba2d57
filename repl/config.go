//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package repl

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
)

const defaultHistorySize = 500

// Config controls the REPL's optional, best-effort persisted history.
type Config struct {
	HistoryFile string
	HistorySize int
}

// ConfigFromEnv reads LAMBDORA_HISTORY_FILE and LAMBDORA_HISTORY_SIZE,
// falling back to ~/.lambdora_history and 500 entries respectively. A
// malformed LAMBDORA_HISTORY_SIZE is not fatal: cast.ToIntE's error is
// discarded and the default size is kept, since history is explicitly a
// UX feature, not a core contract.
func ConfigFromEnv() Config {
	cfg := Config{HistorySize: defaultHistorySize}

	if path := os.Getenv("LAMBDORA_HISTORY_FILE"); path != "" {
		cfg.HistoryFile = path
	} else if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".lambdora_history")
	}

	if raw := os.Getenv("LAMBDORA_HISTORY_SIZE"); raw != "" {
		if n, err := cast.ToIntE(raw); err == nil && n > 0 {
			cfg.HistorySize = n
		}
	}

	return cfg
}
