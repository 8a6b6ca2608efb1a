// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"crypto/tls"
	"fmt"
	"net"
	"strings"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/bridge/grpcserver"
	"helmbridge/cli/internal/bridge/helmexec"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var serveOpts struct {
	listen  string
	token   string
	tlsCert string
	tlsKey  string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the helm bridge over gRPC",
	Long: `Serve the HelmCall gRPC service backed by the local helm binary. Clients
connect with --transport grpc --address HOST:PORT. When a token is configured
(--token, HELMBRIDGE_TOKEN or the keychain) every call must present it as a
bearer token.

With --tls-cert and --tls-key the server accepts TLS only. Without them it
speaks plaintext, and clients must pass --plaintext (the gRPC transport
defaults to TLS). Clients trusting a private CA pass --bridge-ca-file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := serveOpts.token
		if token == "" {
			token = serverToken()
		}
		if token == "" {
			pterm.Warning.Println("Serving without authentication; any client may run helm operations")
		}

		var tlsConfig *tls.Config
		switch {
		case serveOpts.tlsCert != "" && serveOpts.tlsKey != "":
			cert, err := tls.LoadX509KeyPair(serveOpts.tlsCert, serveOpts.tlsKey)
			if err != nil {
				return fmt.Errorf("load TLS key pair: %w", err)
			}
			tlsConfig = &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}
		case serveOpts.tlsCert != "" || serveOpts.tlsKey != "":
			return fmt.Errorf("--tls-cert and --tls-key must be given together")
		default:
			pterm.Warning.Println("Serving plaintext; clients must connect with --plaintext")
		}

		lis, err := net.Listen("tcp", serveOpts.listen)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", serveOpts.listen, err)
		}

		exec := helmexec.New(cfg.Bridge.HelmBinary, helmexec.WithLogger(logger))
		srv := grpcserver.New(exec, grpcserver.Options{
			Token:     token,
			TLSConfig: tlsConfig,
			Logger:    logger,
		})

		go func() {
			<-cmd.Context().Done()
			pterm.Info.Println("Shutting down, waiting for in-flight calls")
			srv.GracefulStop()
		}()

		ops := make([]string, 0, len(bridge.Ops()))
		for _, op := range bridge.Ops() {
			ops = append(ops, op.String())
		}
		pterm.Info.Printf("Bridge listening on %s (%s)\n", lis.Addr(), strings.Join(ops, ", "))
		return srv.Serve(lis)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.listen, "listen", "127.0.0.1:50051", "address to listen on")
	serveCmd.Flags().StringVar(&serveOpts.token, "token", "", "bearer token clients must present")
	serveCmd.Flags().StringVar(&serveOpts.tlsCert, "tls-cert", "", "PEM certificate served to clients")
	serveCmd.Flags().StringVar(&serveOpts.tlsKey, "tls-key", "", "PEM private key for --tls-cert")
	rootCmd.AddCommand(serveCmd)
}
