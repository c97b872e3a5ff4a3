package main

import (
	"os"

	"github.com/arthur-debert/dotools/cmd/dotools"
)

func main() {
	rootCmd := dotools.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		dotools.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
