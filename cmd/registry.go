// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/helm"
	"helmbridge/cli/internal/keychain"
	"helmbridge/cli/internal/logging"
	"helmbridge/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Log in to OCI registries",
}

var registryLoginOpts struct {
	req           helm.RegistryLogin
	passwordStdin bool
	save          bool
}

var registryLoginCmd = &cobra.Command{
	Use:   "login HOST",
	Short: "Log in to an OCI registry",
	Long: `Log in to an OCI registry. The password is taken from --password-stdin, from
credentials saved earlier with --save, or from an interactive prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := registryLoginOpts.req
		req.Hostname = args[0]

		if err := resolveRegistryCredentials(&req); err != nil {
			return err
		}

		err := runOperation(cmd, bridge.OpRegistryLogin, req.Hostname, func(ctx context.Context, s *session) error {
			req.Env = s.env
			return s.client.RegistryLogin(ctx, req)
		})
		if err != nil {
			return err
		}

		if registryLoginOpts.save {
			km, kerr := keychain.GetManager()
			if kerr == nil {
				kerr = km.SaveRegistryCredentials(req.Hostname, keychain.RegistryCredentials{Username: req.Username, Password: req.Password})
			}
			if kerr != nil {
				pterm.Warning.Println(logging.PresentError("Login succeeded but credentials were not saved", kerr))
			}
		}
		pterm.Success.Println("Login Succeeded")
		return nil
	},
}

// resolveRegistryCredentials fills in the username and password from stdin,
// the keychain or a prompt, in that order.
func resolveRegistryCredentials(req *helm.RegistryLogin) error {
	if registryLoginOpts.passwordStdin {
		pw, err := terminal.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read password from stdin: %w", err)
		}
		req.Password = pw
		return nil
	}
	if req.Password != "" {
		return nil
	}

	if km, err := keychain.GetManager(); err == nil {
		creds, err := km.LoadRegistryCredentials(req.Hostname)
		if err == nil && (req.Username == "" || req.Username == creds.Username) {
			req.Username, req.Password = creds.Username, creds.Password
			return nil
		}
		if err != nil && !errors.Is(err, keychain.ErrNotFound) {
			logger.Debug("registry credential lookup failed", logger.Args("host", req.Hostname, "error", err.Error()))
		}
	}

	if !terminal.IsInteractive() {
		return fmt.Errorf("no password for %s: use --password-stdin or log in once with --save", req.Hostname)
	}
	if req.Username == "" {
		u, err := terminal.ReadLine("Username: ")
		if err != nil {
			return err
		}
		req.Username = u
	}
	pw, err := terminal.ReadSecret("Password: ")
	if err != nil {
		return err
	}
	req.Password = pw
	return nil
}

var registryLogoutCmd = &cobra.Command{
	Use:   "logout HOST",
	Short: "Forget credentials saved for a registry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		if err := km.ClearRegistryCredentials(args[0]); err != nil && !errors.Is(err, keychain.ErrNotFound) {
			return err
		}
		pterm.Success.Printf("Removed saved credentials for %s\n", args[0])
		return nil
	},
}

var registryHostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List registries with saved credentials",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		hosts, err := km.RegistryHosts()
		if err != nil {
			return err
		}
		if len(hosts) == 0 {
			pterm.Info.Println("No saved registry credentials")
			return nil
		}
		for _, h := range hosts {
			pterm.Println(h)
		}
		return nil
	},
}

func init() {
	f := registryLoginCmd.Flags()
	r := &registryLoginOpts.req
	f.StringVarP(&r.Username, "username", "u", "", "registry username")
	f.StringVarP(&r.Password, "password", "p", "", "registry password or identity token (prefer --password-stdin)")
	f.BoolVar(&registryLoginOpts.passwordStdin, "password-stdin", false, "read the password or identity token from stdin")
	f.BoolVar(&registryLoginOpts.save, "save", false, "save the credentials in the OS keychain")
	f.StringVar(&r.CertFile, "cert-file", "", "client certificate file")
	f.StringVar(&r.KeyFile, "key-file", "", "client key file")
	f.StringVar(&r.CAFile, "ca-file", "", "certificate authority bundle")
	f.BoolVar(&r.Insecure, "insecure", false, "allow connections to registries without certificate checks")
	f.BoolVar(&r.PlainHTTP, "plain-http", false, "use plain HTTP to reach the registry")

	registryCmd.AddCommand(registryLoginCmd, registryLogoutCmd, registryHostsCmd)
	rootCmd.AddCommand(registryCmd)
}
