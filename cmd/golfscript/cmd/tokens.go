package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golfscript-go/golfscript/internal/token"
)

var (
	showPos    bool
	onlyErrors bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [code]",
	Short: "Tokenize a GolfScript program and print the resulting tokens",
	Long: `Tokenize a GolfScript program and print the resulting tokens, one
per line, without evaluating it. Useful for debugging the tokenizer
and for understanding how a program is split into literals, symbols,
and blocks.

A non-empty remainder (an incomplete literal, an unterminated string
or block) is reported as an error, matching the evaluator's own
refusal to run such a program.

Examples:
  golfscript tokens '5 6 +'
  golfscript tokens -e '[1 2 3]{.*}%'
  golfscript tokens --show-pos '5,'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading the positional argument")
	tokensCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	tokensCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "report only whether a trailing unparsed remainder exists")
}

func runTokens(_ *cobra.Command, args []string) error {
	code, err := resolveInput(evalExpr, args)
	if err != nil {
		return err
	}

	rest, toks := token.Scan([]byte(code))

	if !onlyErrors {
		for _, tok := range toks {
			printToken(tok)
		}
	}

	if len(rest) > 0 {
		return fmt.Errorf("trailing unparsed remainder: %q", rest)
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-18s] %q", tok.Kind.String(), tok.Body)
	if showPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Fprintln(os.Stdout, out)
}
