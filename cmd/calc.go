package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/parsec/calc"
	"github.com/gnolang/parsec/formatter"
	"github.com/gnolang/parsec/result"
)

var calcCmd = &cobra.Command{
	Use:   "calc <lhs> <op> <rhs>",
	Short: "Evaluate a two-operand integer expression",
	Long: `Evaluates <lhs> <op> <rhs> where the operands are integers and <op> is one of + - * /.
Example) parsec calc 12 '*' 3
         parsec calc -5 + 3`,
	Args: cobra.ArbitraryArgs,
	// operands such as -5 are not flags
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := calc.EvaluateArgs(args)
		return result.Fold(r,
			func(e result.Error) error {
				fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatFailure(e))
				return fmt.Errorf("%w: %w", errReported, e)
			},
			func(v int) error {
				fmt.Fprintln(cmd.OutOrStdout(), v)
				return nil
			},
		)
	},
}
