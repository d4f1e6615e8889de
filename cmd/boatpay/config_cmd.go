package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexNT-maker/auto-payroll-system/internal/cliconfig"
)

func configCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the boatpay config file",
	}
	cmd.AddCommand(configInitCmd(flags))
	return cmd
}

// configInitCmd writes the defaults, overridden by the global flags, to
// --config or the user config path.
func configInitCmd(flags *globalFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.configPath
			if path == "" {
				path = cliconfig.UserConfigPath()
			}
			if path == "" {
				return errors.New("no config path: pass --config")
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force)", path)
			}

			cfg := cliconfig.DefaultConfig()
			cfg.Merge(&cliconfig.Config{
				BaseURL:    flags.baseURL,
				LogLevel:   flags.logLevel,
				SubmitMode: flags.submitMode,
			})
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
