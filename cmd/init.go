package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gnolang/asciimath/convert"
)

func newInitCmd(o *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfigurationFile(o.cfgFile, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", o.cfgFile)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}

func initConfigurationFile(path string, force bool) error {
	if path == "" {
		path = convert.DefaultConfigFile
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("configuration file %s already exists", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return convert.WriteConfig(path, convert.DefaultConfig())
}
