// Package cmd implements the cljread CLI: a thin cobra front-end over the
// reader, grounded on vippsas-sqlcode's cli/cmd package layout (root.go
// plus one file per subcommand) and logging style
// (logrus.StandardLogger() threaded into RunE).
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "cljread",
		Short:        "cljread",
		SilenceUsage: true,
		Long:         "Reads Clojure-flavored s-expressions from a file, stdin, or an interactive REPL and prints the resulting values.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	debug bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print values with the Go-syntax debug representation instead of Clojure syntax")
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(replCmd)
}
