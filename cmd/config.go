// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"

	"helmbridge/cli/internal/config"
	"helmbridge/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or persist the effective settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings after config file, environment and flags are applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		pterm.Println(logging.Mask(string(b)))
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective settings to the config file",
	Long: `Write the effective settings to the config file, so flags given to this
command become the defaults of later runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flags.configPath != "" {
			if err := config.SaveTo(flags.configPath, cfg); err != nil {
				return err
			}
			pterm.Success.Printf("Saved settings to %s\n", flags.configPath)
			return nil
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		p, _ := config.Path()
		pterm.Success.Printf("Saved settings to %s\n", p)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSaveCmd)
	rootCmd.AddCommand(configCmd)
}
