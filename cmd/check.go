package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/asciimath"
	"github.com/gnolang/asciimath/check"
	"github.com/gnolang/asciimath/convert"
	"github.com/gnolang/asciimath/formatter"
)

func newCheckCmd(o *options) *cobra.Command {
	var (
		jsonOutput bool
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report formulas the parser has to repair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("please provide file or directory paths")
			}
			config, err := o.loadConfig()
			if err != nil {
				return err
			}

			files, err := sourceFiles(config, args)
			if err != nil {
				return err
			}

			checker := check.New()
			issuesByFile := make(map[string][]check.Issue)
			sources := make(map[string]*asciimath.SourceCode)
			for _, file := range files {
				src, err := asciimath.ReadSourceCode(file)
				if err != nil {
					o.logger.Error("Error reading source file", zap.String("file", file), zap.Error(err))
					continue
				}
				if issues := checker.Source(file, src); len(issues) > 0 {
					issuesByFile[file] = issues
					sources[file] = src
				}
			}

			if err := printIssues(cmd, issuesByFile, sources, jsonOutput, outPath); err != nil {
				return err
			}
			if len(issuesByFile) > 0 {
				return ErrIssuesFound
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output issues in JSON format")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	return cmd
}

// sourceFiles expands directories into the files with a configured
// extension. Files named explicitly are always included.
func sourceFiles(config convert.Config, paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && config.HasExtension(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking %s: %w", path, err)
		}
	}
	return files, nil
}

func printIssues(
	cmd *cobra.Command,
	issuesByFile map[string][]check.Issue,
	sources map[string]*asciimath.SourceCode,
	isJSON bool,
	jsonOutput string,
) error {
	if isJSON {
		d, err := json.Marshal(issuesByFile)
		if err != nil {
			return fmt.Errorf("error marshalling issues to JSON: %w", err)
		}
		if jsonOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), string(d))
			return nil
		}
		return os.WriteFile(jsonOutput, d, 0o644)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatIssues(issuesByFile[filename], sources[filename]))
	}
	return nil
}
