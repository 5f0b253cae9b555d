// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dimmat/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage matcalc config files",
	}
	configCmd.AddCommand(newConfigInitCmd(a))

	return configCmd
}

// newConfigInitCmd writes the resolved settings (defaults, --config file and
// flags) to PATH.
func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init PATH",
		Short: "write the current settings to a YAML config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s: %w (use --force to overwrite)", path, os.ErrExist)
				}
			}
			if err := config.Save(path, a.cfg); err != nil {
				return err
			}
			a.log.Debug("config written", zap.String("path", path))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)

			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
