package main

import (
	"fmt"
	"os"

	"github.com/trebuchet-org/nounsgov/internal/cli"
	"github.com/trebuchet-org/nounsgov/internal/cli/render"
	"github.com/trebuchet-org/nounsgov/internal/config"
)

// Set via -ldflags at release time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatCommandError(err))
		os.Exit(1)
	}
}
