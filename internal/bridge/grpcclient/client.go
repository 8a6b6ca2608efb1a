// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package grpcclient provides a gRPC-backed implementation of the bridge.
// Each operation is a single unary call to the HelmCall service; requests and
// responses are converted between the model types and the generated protobuf
// messages by the rpc package.
//
// The package manages connection lifecycle and folds every transport failure
// into the response's error list, so callers see one uniform failure shape
// whether the chart operation or the connection failed.
package grpcclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"

	"helmbridge/cli/internal/bridge/model"
	helmcallpb "helmbridge/cli/internal/bridge/proto"
	"helmbridge/cli/internal/bridge/rpc"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Options configures the connection to a bridge server.
type Options struct {
	// Token is sent as "authorization: Bearer <token>" with every call.
	Token string
	// Plaintext disables TLS.
	Plaintext bool
	// ServerName overrides the TLS server name (SNI).
	ServerName string
	// RootCAs replaces the system roots when verifying the server.
	RootCAs *x509.CertPool
	// Dialer replaces the network dialer, e.g. with an in-memory listener in tests.
	Dialer func(ctx context.Context, addr string) (net.Conn, error)
}

// Client implements bridge.Bridge over a gRPC connection.
type Client struct {
	conn  *grpc.ClientConn
	rpc   helmcallpb.HelmCallClient
	token string
}

// Dial prepares a connection to addr. The connection is established lazily on
// the first call; a missing port defaults to 443.
func Dial(ctx context.Context, addr string, opts Options) (*Client, error) {
	// Derive SNI and ensure default port if missing
	host := addr
	if h, _, err := net.SplitHostPort(addr); err == nil {
		host = h
	}
	target := addr
	if _, _, err := net.SplitHostPort(addr); err != nil && opts.Dialer == nil {
		target = net.JoinHostPort(addr, "443")
	}

	var creds credentials.TransportCredentials
	if opts.Plaintext {
		creds = insecure.NewCredentials()
	} else {
		serverName := host
		if opts.ServerName != "" {
			serverName = opts.ServerName
		}
		creds = credentials.NewTLS(&tls.Config{
			ServerName: serverName,
			RootCAs:    opts.RootCAs,
			MinVersion: tls.VersionTLS12,
		})
	}

	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if opts.Dialer != nil {
		dialOpts = append(dialOpts, grpc.WithContextDialer(opts.Dialer))
		target = "passthrough:///" + target
	}

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client for %s: %w", addr, err)
	}
	return &Client{conn: conn, rpc: helmcallpb.NewHelmCallClient(conn), token: opts.Token}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	c.token = ""
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) outgoing(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

// transportErr reports a failed call in the shape the bridge reports
// failures: a single message.
func transportErr(err error) []string {
	if st, ok := status.FromError(err); ok {
		return []string{st.Code().String() + ": " + st.Message()}
	}
	return []string{err.Error()}
}

func (c *Client) Install(ctx context.Context, req *model.InstallRequest) model.InstallResponse {
	resp, err := c.rpc.Install(c.outgoing(ctx), rpc.InstallRequestToProto(req))
	if err != nil {
		return model.InstallResponse{Err: transportErr(err)}
	}
	return rpc.InstallResponseFromProto(resp)
}

func (c *Client) Upgrade(ctx context.Context, req *model.UpgradeRequest) model.UpgradeResponse {
	resp, err := c.rpc.Upgrade(c.outgoing(ctx), rpc.UpgradeRequestToProto(req))
	if err != nil {
		return model.UpgradeResponse{Err: transportErr(err)}
	}
	return rpc.UpgradeResponseFromProto(resp)
}

func (c *Client) Uninstall(ctx context.Context, req *model.UninstallRequest) model.UninstallResponse {
	resp, err := c.rpc.Uninstall(c.outgoing(ctx), rpc.UninstallRequestToProto(req))
	if err != nil {
		return model.UninstallResponse{Err: transportErr(err)}
	}
	return rpc.UninstallResponseFromProto(resp)
}

func (c *Client) List(ctx context.Context, req *model.ListRequest) model.ListResponse {
	resp, err := c.rpc.List(c.outgoing(ctx), rpc.ListRequestToProto(req))
	if err != nil {
		return model.ListResponse{Err: transportErr(err)}
	}
	return rpc.ListResponseFromProto(resp)
}

func (c *Client) RepoAdd(ctx context.Context, req *model.RepoAddRequest) model.RepoAddResponse {
	resp, err := c.rpc.RepoAdd(c.outgoing(ctx), rpc.RepoAddRequestToProto(req))
	if err != nil {
		return model.RepoAddResponse{Err: transportErr(err)}
	}
	return rpc.RepoAddResponseFromProto(resp)
}

func (c *Client) RepoSearch(ctx context.Context, req *model.RepoSearchRequest) model.RepoSearchResponse {
	resp, err := c.rpc.RepoSearch(c.outgoing(ctx), rpc.RepoSearchRequestToProto(req))
	if err != nil {
		return model.RepoSearchResponse{Err: transportErr(err)}
	}
	return rpc.RepoSearchResponseFromProto(resp)
}

func (c *Client) RegistryLogin(ctx context.Context, req *model.RegistryLoginRequest) model.RegistryLoginResponse {
	resp, err := c.rpc.RegistryLogin(c.outgoing(ctx), rpc.RegistryLoginRequestToProto(req))
	if err != nil {
		return model.RegistryLoginResponse{Err: transportErr(err)}
	}
	return rpc.RegistryLoginResponseFromProto(resp)
}
