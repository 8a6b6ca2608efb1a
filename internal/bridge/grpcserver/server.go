// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package grpcserver exposes a bridge.Caller over gRPC. It is the remote side
// of the grpcclient transport: every HelmCall method decodes one request,
// hands it to the caller, and encodes the single response it gets back.
package grpcserver

import (
	"context"
	"crypto/subtle"
	"crypto/tls"
	"net"
	"strings"

	"helmbridge/cli/internal/bridge"
	helmcallpb "helmbridge/cli/internal/bridge/proto"
	"helmbridge/cli/internal/logging"

	"github.com/pterm/pterm"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Options configures a Server.
type Options struct {
	// Token, when set, must be presented by clients as a bearer token.
	Token string
	// TLSConfig, when set, makes the server accept TLS only. Without it the
	// server speaks plaintext and clients must dial with Plaintext.
	TLSConfig *tls.Config
	Logger    *pterm.Logger
}

// Server serves HelmCall over gRPC.
type Server struct {
	grpc   *grpc.Server
	token  string
	tls    bool
	logger *pterm.Logger
}

// New builds a server dispatching to caller.
func New(caller bridge.Caller, opts Options) *Server {
	s := &Server{token: opts.Token, tls: opts.TLSConfig != nil, logger: opts.Logger}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	serverOpts := []grpc.ServerOption{grpc.UnaryInterceptor(s.authenticate)}
	if opts.TLSConfig != nil {
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(opts.TLSConfig)))
	}
	s.grpc = grpc.NewServer(serverOpts...)
	helmcallpb.RegisterHelmCallServer(s.grpc, &helmCallService{caller: caller, logger: s.logger})
	return s
}

// Serve accepts connections on lis until Stop or GracefulStop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("bridge server listening", s.logger.Args(
		"address", lis.Addr().String(),
		"auth", s.token != "",
		"tls", s.tls,
	))
	return s.grpc.Serve(lis)
}

// GracefulStop waits for in-flight calls before stopping.
func (s *Server) GracefulStop() { s.grpc.GracefulStop() }

// Stop closes all connections immediately.
func (s *Server) Stop() { s.grpc.Stop() }

func (s *Server) authenticate(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.token == "" {
		return handler(ctx, req)
	}
	md, _ := metadata.FromIncomingContext(ctx)
	for _, v := range md.Get("authorization") {
		got, ok := strings.CutPrefix(v, "Bearer ")
		if ok && subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) == 1 {
			return handler(ctx, req)
		}
	}
	s.logger.Warn("rejected unauthenticated call", s.logger.Args("method", info.FullMethod))
	return nil, status.Error(codes.Unauthenticated, "invalid bridge token")
}
