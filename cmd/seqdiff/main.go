package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seqdiff/seqdiff/internal/log"
)

// exitStatus is set to 1 when the compared inputs differ, following the diff
// tool convention of exit status 0 for identical inputs.
var exitStatus int

func main() {
	log.Init()

	rootCmd := &cobra.Command{
		Use:          "seqdiff [command]",
		Short:        "Positional, element-by-element diff between two files",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitStatus)
}
