package main

import (
	"os"

	"github.com/cljread/cljread/cmd/cljread/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
