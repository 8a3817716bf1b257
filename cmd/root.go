package cmd

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/asciimath/convert"
)

const defaultTimeout = 5 * time.Minute

// ErrIssuesFound is returned by the check command when a formula has
// issues, so the process can exit with a failure status.
var ErrIssuesFound = errors.New("issues found")

// options are the flags shared by every command.
type options struct {
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}
	renderCmd := newRenderCmd(o)

	rootCmd := &cobra.Command{
		Use:              "asciimath [expression]",
		Short:            "asciimath - convert AsciiMath markup to MathML",
		TraverseChildren: true, // Prioritize subcommands
		Args:             cobra.ArbitraryArgs,
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.logger != nil {
				_ = o.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// display help when only 'asciimath' is entered
				return cmd.Help()
			}
			// asciimath <expression> behaves like the render subcommand
			return renderCmd.RunE(renderCmd, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", convert.DefaultConfigFile, "Path to the configuration file (.yaml or .toml)")
	flags.DurationVar(&o.timeout, "timeout", defaultTimeout, "Timeout for file conversions")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		renderCmd,
		newTokensCmd(o),
		newTreeCmd(o),
		newCheckCmd(o),
		newConvertCmd(o),
		newWatchCmd(o),
		newInitCmd(o),
	)
	return rootCmd
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) setupLogger() error {
	if o.logger != nil {
		return nil
	}
	var err error
	if o.verbose {
		o.logger, err = zap.NewDevelopment()
	} else {
		o.logger, err = zap.NewProduction()
	}
	return err
}

func (o *options) loadConfig() (convert.Config, error) {
	config, err := convert.LoadConfig(o.cfgFile)
	if err != nil {
		return config, err
	}
	o.logger.Debug("Loaded configuration",
		zap.String("path", o.cfgFile),
		zap.String("format", config.Format),
		zap.String("display", config.Display))
	return config, nil
}

// readInput returns the expression given as arguments, or standard input
// when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(content), "\r\n"), nil
}
