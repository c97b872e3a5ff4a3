package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotools/cmd/dotools"
	"github.com/arthur-debert/dotools/internal/version"
)

func main() {
	rootCmd := dotools.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DOTOOLS",
		Section: "1",
		Source:  "dotools " + version.Version,
		Manual:  "dotools manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
