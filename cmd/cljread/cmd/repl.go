package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cljread/cljread/internal/replio"
	"github.com/cljread/cljread/read"
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/value"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read forms interactively from stdin, one line at a time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd.OutOrStdout(), os.Stdin)
	},
}

// runRepl accumulates lines from in into a growing chunk and re-reads the
// unconsumed suffix after every line, per spec.md §5: a chunk ending
// mid-form yields InsufficientInput, and the caller (here) reassembles by
// waiting for the next line rather than treating it as fatal. Line
// plumbing lives in internal/replio.
func runRepl(out io.Writer, in io.Reader) error {
	lines := replio.NewLineSource(in)

	var pending string
	var consumed int

	for line := range lines.Lines() {
		if line.Err != nil {
			return fmt.Errorf("cljread: repl: %w", line.Err)
		}

		if pending == "" {
			pending = line.Text
		} else {
			pending += "\n" + line.Text
		}

		consumed = drainPending(out, pending, consumed)
	}
	return nil
}

// drainPending reads as many complete forms as possible out of
// pending[consumed:], printing each, and returns the new consumed offset.
// It stops at the first InsufficientInput, leaving that partial form for
// the next line to complete.
func drainPending(out io.Writer, pending string, consumed int) int {
	for {
		remaining := pending[consumed:]
		rdr, ok := read.Open(remaining)
		if !ok {
			return len(pending)
		}

		sv, err := rdr.TryReadOne()
		if err != nil {
			re, ok := err.(readerr.ReadError)
			if !ok {
				logrus.WithError(err).Error("repl: unexpected error")
				return len(pending)
			}
			if readerr.IsInsufficientInput(re) {
				return consumed
			}
			fmt.Fprintln(out, readerr.Annotate(re, remaining))
			consumed += re.Span().End + 1
			continue
		}
		if sv == nil {
			return len(pending)
		}

		if debug {
			fmt.Fprintln(out, value.ReprSpanValue(*sv))
		} else {
			fmt.Fprintln(out, sv.Value.String())
		}
		consumed += sv.Span.End + 1
	}
}
