// Package replio provides the channel plumbing that wires stdin to the
// reader for the repl subcommand: a single worker goroutine scans lines
// off an io.Reader and publishes them on a channel, closing it at EOF.
// Grounded on the single-goroutine, channel-based lexer in
// _examples/other_examples/...cespare-goclj__parse-lex.go.go (lex(name,
// input) spawning `go l.run()` and emitting onto l.tokens), adapted here
// from a token channel to a line channel — the repl's unit of incremental
// input is a line, not a token, since each line is handed to a fresh
// reader over the accumulated chunk (spec.md §5).
package replio

import (
	"bufio"
	"io"
)

// Line is one line read from the input, or a terminal error.
type Line struct {
	Text string
	Err  error
}

// LineSource runs a single background goroutine scanning lines from an
// io.Reader onto a channel.
type LineSource struct {
	lines chan Line
}

// NewLineSource starts the worker goroutine and returns immediately.
func NewLineSource(r io.Reader) *LineSource {
	ls := &LineSource{lines: make(chan Line)}
	go ls.run(r)
	return ls
}

// Lines returns the channel lines are published on. It is closed once the
// input is exhausted or a scan error occurs.
func (ls *LineSource) Lines() <-chan Line {
	return ls.lines
}

func (ls *LineSource) run(r io.Reader) {
	defer close(ls.lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ls.lines <- Line{Text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		ls.lines <- Line{Err: err}
	}
}
