package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cljread/cljread/read"
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/value"
)

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Read a file or stdin to completion, printing each value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src []byte
		var err error
		if len(args) == 1 {
			src, err = os.ReadFile(args[0])
		} else {
			src, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return fmt.Errorf("cljread: %w", err)
		}
		return readAllAndPrint(cmd.OutOrStdout(), string(src))
	},
}

// readAllAndPrint drives try_read_one to exhaustion over source, printing
// each value (or reporting each error against the source substring per
// spec.md §7) and continuing past errors rather than aborting the pass.
func readAllAndPrint(out io.Writer, source string) error {
	rdr, ok := read.Open(source)
	if !ok {
		logrus.Debug("cljread: empty source, nothing to read")
		return nil
	}

	for {
		sv, err := rdr.TryReadOne()
		if err != nil {
			if re, ok := err.(readerr.ReadError); ok {
				fmt.Fprintln(out, readerr.Annotate(re, source))
				logrus.WithField("span", re.Span()).Debug("read error")
				continue
			}
			return err
		}
		if sv == nil {
			return nil
		}
		if debug {
			fmt.Fprintln(out, value.ReprSpanValue(*sv))
		} else {
			fmt.Fprintln(out, sv.Value.String())
		}
	}
}
