package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/asciimath"
	"github.com/gnolang/asciimath/convert"
	"github.com/gnolang/asciimath/formatter"
)

// conversionFlags override configuration values for one run.
type conversionFlags struct {
	format    string
	display   string
	outputDir string
	noCache   bool
}

func (f *conversionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Output format: mathml or html")
	cmd.Flags().StringVar(&f.display, "display", "", "Display mode: inline or block")
	cmd.Flags().StringVar(&f.outputDir, "output-dir", "", "Directory for the converted documents")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Discard cached results and convert every file")
}

func (f *conversionFlags) engine(o *options) (*convert.Engine, error) {
	config, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	if f.format != "" {
		config.Format = f.format
	}
	if f.display != "" {
		config.Display = f.display
	}
	if f.outputDir != "" {
		config.OutputDir = f.outputDir
	}
	engine, err := convert.New(config)
	if err != nil {
		return nil, err
	}
	if f.noCache {
		if err := engine.ResetCache(); err != nil {
			return nil, err
		}
		o.logger.Debug("Cache cleared", zap.String("dir", config.CacheDir))
	}
	return engine, nil
}

func newConvertCmd(o *options) *cobra.Command {
	var flags conversionFlags

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert AsciiMath files to MathML or HTML documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("please provide file or directory paths")
			}
			engine, err := flags.engine(o)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
			defer cancel()

			processor := &convert.Processor{
				Logger:     o.logger,
				Converter:  engine,
				Extensions: engine.Config().Extensions,
				Progress:   cmd.ErrOrStderr(),
			}
			results, err := processor.ProcessFiles(ctx, args)
			for _, r := range results {
				printResult(cmd, o.logger, r)
			}
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newWatchCmd(o *options) *cobra.Command {
	var flags conversionFlags

	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Convert AsciiMath files again whenever they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("please provide file or directory paths")
			}
			engine, err := flags.engine(o)
			if err != nil {
				return err
			}

			watcher, err := convert.NewWatcher(o.logger, engine, engine.Config())
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := watcher.Add(path); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			o.logger.Info("Watching for changes", zap.Strings("paths", args))
			return watcher.Run(ctx, func(r convert.Result, err error) {
				if err == nil {
					printResult(cmd, o.logger, r)
				}
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func printResult(cmd *cobra.Command, logger *zap.Logger, r convert.Result) {
	status := ""
	if r.Cached {
		status = ", unchanged"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d formulas, %d issues%s)\n",
		r.Source, r.Output, r.Formulas, len(r.Issues), status)

	if len(r.Issues) == 0 {
		return
	}
	src, err := asciimath.ReadSourceCode(r.Source)
	if err != nil {
		logger.Error("Error reading source file", zap.String("file", r.Source), zap.Error(err))
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIssues(r.Issues, src))
}
