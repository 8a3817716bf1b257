package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/asciimath"
	"github.com/gnolang/asciimath/convert"
	"github.com/gnolang/asciimath/formatter"
)

func newRenderCmd(o *options) *cobra.Command {
	var (
		display string
		wrap    bool
	)

	cmd := &cobra.Command{
		Use:   "render [expression]",
		Short: "Render an expression as MathML",
		Long: `Renders the expression given as arguments, or every formula read from
standard input, as MathML. Example) asciimath render "sum_(i=1)^n i"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := o.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("display") {
				config.Display = display
			}
			if cmd.Flags().Changed("wrap") {
				config.Wrap = wrap
			}
			// the format only matters for files
			config.Format = convert.FormatMathML
			if err := config.Validate(); err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			for _, f := range asciimath.NewSourceCode(input).Formulas() {
				fmt.Fprintln(cmd.OutOrStdout(), asciimath.ToMathML(f.Text, config.Options()...))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&display, "display", "inline", "Display mode: inline or block")
	cmd.Flags().BoolVar(&wrap, "wrap", false, "Wrap the output in a <math> element")
	return cmd
}

func newTokensCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [expression]",
		Short: "Print the tokens of an expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTokens(asciimath.Tokenize(input)))
			return nil
		},
	}
}

func newTreeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [expression]",
		Short: "Print the expression tree of an expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTree(asciimath.Parse(input)))
			return nil
		},
	}
}
