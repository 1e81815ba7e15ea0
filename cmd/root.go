// Package cmd implements the while CLI: a cobra command tree with one
// real action (parse a While program, run it under one or more domains,
// print each resulting state), plus the -a/--ast Graphviz export and the
// --config/WHILE_*/flag layered configuration from internal/config.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/whilelang/interp/internal/logging"
)

var (
	cfgFile    string
	astPath    string
	domainFlag []string
	modulus    int64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "while [file]",
	Short: "while analyzes programs written in the While language by abstract interpretation",
	Long: `while parses a program written in the While language and interprets it
under one or more abstract domains (sign, interval, sinterval, modulo,
blackhole) as well as concretely, printing the resulting state for each.

With no file argument, or with "-", the program is read from stdin.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	fs := rootCmd.Flags()
	fs.StringVarP(&astPath, "ast", "a", "", "write the program's AST as Graphviz DOT to FILE")
	fs.StringSliceVarP(&domainFlag, "domain", "d", nil, "domain to interpret under (repeatable): sign, interval, sinterval, modulo, blackhole, concrete")
	fs.Int64VarP(&modulus, "modulus", "n", 3, "modulus N for the modulo domain")
	fs.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVar(&cfgFile, "config", "", "configuration file (default: ./while.yaml or ./while.json)")
}

// Execute runs the while command tree.
func Execute() error {
	return rootCmd.Execute()
}

func bindFlagSet() *pflag.FlagSet { return rootCmd.Flags() }

// newLogger builds the CLI's logger at the resolved verbosity. Callers
// pass cfg.Verbose (defaults<file<env<flags layered by internal/config),
// not the raw --verbose flag var, so a while.yaml or WHILE_VERBOSE
// setting take effect the same as the flag does.
func newLogger(verbose bool) *zap.Logger {
	l, err := logging.New(verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "while: failed to initialize logger: %v\n", err)
		return logging.Nop()
	}
	return l
}
