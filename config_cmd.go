package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vscode2helix/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage vscode2helix configuration files.",
	}
	cmd.AddCommand(newConfigGenerateCmd())
	return cmd
}

func newConfigGenerateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a default configuration file",
		Long:  "Generate a default " + config.DefaultPath + " file (in the current directory unless --path is given).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if _, err := os.Stat(cfgPath); err == nil {
				return fmt.Errorf("config file already exists: %s", cfgPath)
			}

			if err := config.Save(cfgPath, config.Default()); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated default config file: %s\n", cfgPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", config.DefaultPath, "Where to write the config file")

	return cmd
}
