//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package repl

import (
	"bufio"
	"os"

	"github.com/gammazero/deque"
)

// History is a fixed-capacity ring of recently entered lines, backed by a
// deque so pushing past capacity drops the oldest entry in O(1) rather
// than shifting a slice.
type History struct {
	lines    deque.Deque[string]
	capacity int
	path     string
}

// NewHistory returns an empty history capped at cfg.HistorySize entries
// and persisted (best-effort) to cfg.HistoryFile.
func NewHistory(cfg Config) *History {
	h := &History{capacity: cfg.HistorySize, path: cfg.HistoryFile}
	if h.capacity <= 0 {
		h.capacity = defaultHistorySize
	}
	return h
}

// Add appends line to the history, evicting the oldest entry if the
// history is already at capacity.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	h.lines.PushBack(line)
	for h.lines.Len() > h.capacity {
		h.lines.PopFront()
	}
}

// Load reads previously persisted history from disk. A missing file or
// read error is silently ignored — history is a convenience, not a
// contract.
func (h *History) Load() {
	if h.path == "" {
		return
	}
	f, err := os.Open(h.path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		h.Add(scanner.Text())
	}
}

// Save persists the current history to disk. Failures are ignored for the
// same reason Load's are.
func (h *History) Save() {
	if h.path == "" {
		return
	}
	f, err := os.Create(h.path)
	if err != nil {
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()
	for i := 0; i < h.lines.Len(); i++ {
		w.WriteString(h.lines.At(i))
		w.WriteByte('\n')
	}
}
