package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "golfscript",
	Short: "GolfScript interpreter",
	Long: `golfscript-go is a Go implementation of the GolfScript golfing
language: a stack-based, concatenative language where every value is
one of an integer, an array, a byte string, or a code block, and
almost every operator is overloaded across those four kinds.

Programs run sandboxed by default: stack underflow, runaway loops, and
oversized exponents are repaired rather than aborting. Pass --strict
to abort with an error on stack underflow or an incomplete program
instead; in strict mode loops have no iteration cap and powers are
computed exactly.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML run configuration file (default: .golfscriptrc.yaml)")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
