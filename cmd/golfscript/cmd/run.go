package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/golfscript-go/golfscript/internal/config"
	"github.com/golfscript-go/golfscript/internal/eval"
	"github.com/golfscript-go/golfscript/internal/value"
)

var (
	evalExpr   string
	traceFlag  bool
	strictFlag bool
	seedFlag   uint64
	maxLoops   uint64
	configPath string
)

var runCmd = &cobra.Command{
	Use:   "run [code]",
	Short: "Run a GolfScript program",
	Long: `Execute a GolfScript program from a positional argument or an
inline expression, wrap the resulting stack in a single array, and
print its bracketed rendering.

Examples:
  # Run a program given on the command line
  golfscript run '5 6 +'

  # Equivalent, via -e
  golfscript run -e '5 6 +'

  # Abort instead of repairing on stack underflow and similar
  golfscript run --strict '+'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading the positional argument")
	runCmd.Flags().BoolVar(&traceFlag, "trace", false, "emit a JSON Lines execution trace to stderr")
	runCmd.Flags().BoolVar(&strictFlag, "strict", false, "abort on the first fatal condition instead of repairing it")
	runCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "override the LCG's initial seed (0 means use the config/default)")
	runCmd.Flags().Uint64Var(&maxLoops, "max-loops", 0, "override the loop-iteration cap (0 means use the config/default)")
}

func runScript(_ *cobra.Command, args []string) error {
	code, err := resolveInput(evalExpr, args)
	if err != nil {
		return err
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	e := config.Apply(cfg, strictFlag, seedFlag, maxLoops)

	if traceFlag {
		opCount := 0
		e.Trace = func(ev eval.TraceEvent) {
			opCount++
			line, _ := sjson.Set("", "op", opCount)
			line, _ = sjson.Set(line, "token", string(ev.Token.Lexeme()))
			line, _ = sjson.Set(line, "kind", ev.Token.Kind.String())
			line, _ = sjson.Set(line, "depth", len(ev.Stack))
			fmt.Fprintln(os.Stderr, line)
		}
	}

	if err := e.Execute([]byte(code)); err != nil {
		return err
	}

	wrapped := value.Arr(append([]value.Value(nil), e.Stack...))
	e.Output = append(e.Output, value.Render(wrapped)...)
	e.Output = append(e.Output, '\n')
	os.Stdout.Write(e.Output)
	return nil
}

// resolveInput picks the program source from -e or the single
// positional argument, matching the teacher's run command's
// either/or input resolution.
func resolveInput(evalExpr string, args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("either provide a code argument or use -e for inline code")
}
