// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"

	"helmbridge/cli/internal/keychain"
	"helmbridge/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tokenStdin bool

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage credentials stored in the OS keychain",
}

var tokenSetCmd = &cobra.Command{
	Use:       "set kube|bridge",
	Short:     "Store the Kubernetes API token or the bridge token",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"kube", "bridge"},
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		if kind != "kube" && kind != "bridge" {
			return fmt.Errorf("unknown token %q (want kube or bridge)", kind)
		}

		var (
			token string
			err   error
		)
		if tokenStdin {
			token, err = terminal.ReadAll(os.Stdin)
		} else {
			token, err = terminal.ReadSecret(fmt.Sprintf("%s token: ", kind))
		}
		if err != nil {
			return err
		}
		if token == "" {
			return fmt.Errorf("empty token")
		}

		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		if kind == "kube" {
			err = km.SaveKubeToken(token)
		} else {
			err = km.SaveBridgeToken(token)
		}
		if err != nil {
			return err
		}
		pterm.Success.Printf("Stored %s token in the keychain\n", kind)
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every helmbridge credential from the keychain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		if err := km.ClearAll(); err != nil {
			return err
		}
		pterm.Success.Println("Cleared stored credentials")
		return nil
	},
}

func init() {
	tokenSetCmd.Flags().BoolVar(&tokenStdin, "stdin", false, "read the token from stdin")
	tokenCmd.AddCommand(tokenSetCmd, tokenClearCmd)
	rootCmd.AddCommand(tokenCmd)
}
