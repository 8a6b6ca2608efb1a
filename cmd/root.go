// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the helmbridge CLI.
// It implements one subcommand per bridged helm operation, plus a demo
// driver, a bridge server and the operation journal, using the Cobra CLI
// framework. The package resolves settings from flags, config and the OS
// keychain, builds the selected bridge transport, and renders results with
// pterm.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"helmbridge/cli/internal/config"
	"helmbridge/cli/internal/keychain"
	"helmbridge/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	transport  string
	address    string
	helmBinary string
	plaintext  bool
	bridgeCA   string

	kubeConfig   string
	kubeContext  string
	kubeToken    string
	kubeCAFile   string
	kubeInsecure bool
}

var (
	flags  globalFlags
	cfg    config.Config
	logger = logging.Discard()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "helmbridge",
	Short: "Run helm operations through a typed bridge",
	Long: `helmbridge runs helm operations (install, upgrade, uninstall, list, repo add,
repo search, registry login) through a typed request/response bridge. The bridge
either executes the local helm binary or calls a remote helmbridge server over gRPC.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
// An interrupt cancels the running operation's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		pterm.Error.Println(logging.FormatTransportError(err.Error()))
		if diag := logging.Diagnostic(err); diag != "" {
			pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint(diag))
		}
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/helmbridge/config.json)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&flags.transport, "transport", "", "bridge transport: exec or grpc")
	pf.StringVar(&flags.address, "address", "", "gRPC bridge address (host[:port])")
	pf.StringVar(&flags.helmBinary, "helm-binary", "", "helm executable for the exec transport")
	pf.BoolVar(&flags.plaintext, "plaintext", false, "disable TLS for the gRPC transport")
	pf.StringVar(&flags.bridgeCA, "bridge-ca-file", "", "PEM bundle trusted for the gRPC bridge certificate")

	pf.StringVar(&flags.kubeConfig, "kubeconfig", "", "path to the kubeconfig file")
	pf.StringVar(&flags.kubeContext, "kube-context", "", "name of the kubeconfig context to use")
	pf.StringVar(&flags.kubeToken, "kube-token", "", "bearer token used for authentication")
	pf.StringVar(&flags.kubeCAFile, "kube-ca-file", "", "certificate authority file for the API server")
	pf.BoolVar(&flags.kubeInsecure, "kube-insecure-skip-tls-verify", false, "skip API server certificate validation")
}

// setup loads configuration and applies persistent flags on top of it.
func setup(cmd *cobra.Command) error {
	var err error
	if flags.configPath != "" {
		cfg, err = config.LoadFrom(flags.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("transport") {
		cfg.Bridge.Transport = flags.transport
	}
	if pf.Changed("address") {
		cfg.Bridge.Address = flags.address
	}
	if pf.Changed("helm-binary") {
		cfg.Bridge.HelmBinary = flags.helmBinary
	}
	if pf.Changed("plaintext") {
		cfg.Bridge.Plaintext = flags.plaintext
	}
	if pf.Changed("bridge-ca-file") {
		cfg.Bridge.CAFile = flags.bridgeCA
	}
	if pf.Changed("kubeconfig") {
		cfg.Env.KubeConfig = flags.kubeConfig
	}
	if pf.Changed("kube-context") {
		cfg.Env.KubeContext = flags.kubeContext
	}
	if pf.Changed("kube-ca-file") {
		cfg.Env.KubeCAFile = flags.kubeCAFile
	}
	if pf.Changed("kube-insecure-skip-tls-verify") {
		cfg.Env.KubeInsecureSkipTLSVerify = flags.kubeInsecure
	}

	logger = logging.NewLogger(cfg.LogLevel, os.Stderr)
	keychain.SetLogger(logger)
	return nil
}
