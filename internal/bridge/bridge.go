// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bridge defines the invocation contract between the CLI and the
// runtime that actually executes chart operations. It provides abstractions for
// different transport mechanisms (subprocess, gRPC) while maintaining a
// consistent interface: one wire request in, one wire response out.
//
// The package enables pluggable transport implementations while the typed
// layer in internal/helm stays unaware of how a call crosses the boundary.
package bridge

import (
	"context"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"helmbridge/cli/internal/bridge/grpcclient"
	"helmbridge/cli/internal/bridge/helmexec"
	"helmbridge/cli/internal/bridge/model"

	"github.com/pterm/pterm"
)

// Op identifies one of the bridged operations.
type Op int

const (
	OpInstall Op = iota + 1
	OpUpgrade
	OpUninstall
	OpList
	OpRepoAdd
	OpRepoSearch
	OpRegistryLogin
)

var opNames = map[Op]string{
	OpInstall:       "install",
	OpUpgrade:       "upgrade",
	OpUninstall:     "uninstall",
	OpList:          "list",
	OpRepoAdd:       "repo_add",
	OpRepoSearch:    "repo_search",
	OpRegistryLogin: "registry_login",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Ops lists every operation in declaration order.
func Ops() []Op {
	return []Op{OpInstall, OpUpgrade, OpUninstall, OpList, OpRepoAdd, OpRepoSearch, OpRegistryLogin}
}

// Caller crosses the boundary exactly once per call. Implementations never
// return an out-of-band error: a failed crossing is reported as a response
// with a non-empty Err list.
type Caller interface {
	Install(ctx context.Context, req *model.InstallRequest) model.InstallResponse
	Upgrade(ctx context.Context, req *model.UpgradeRequest) model.UpgradeResponse
	Uninstall(ctx context.Context, req *model.UninstallRequest) model.UninstallResponse
	List(ctx context.Context, req *model.ListRequest) model.ListResponse
	RepoAdd(ctx context.Context, req *model.RepoAddRequest) model.RepoAddResponse
	RepoSearch(ctx context.Context, req *model.RepoSearchRequest) model.RepoSearchResponse
	RegistryLogin(ctx context.Context, req *model.RegistryLoginRequest) model.RegistryLoginResponse
}

// Bridge is a Caller owning transport resources.
type Bridge interface {
	Caller
	Close() error
}

var (
	_ Bridge = (*helmexec.Executor)(nil)
	_ Bridge = (*grpcclient.Client)(nil)
)

// Transport names accepted by New.
const (
	TransportExec = "exec"
	TransportGRPC = "grpc"
)

// Options selects and configures a transport.
type Options struct {
	// Transport is TransportExec (default) or TransportGRPC.
	Transport string
	// HelmBinary is the helm executable used by the exec transport.
	HelmBinary string
	// Address is the gRPC bridge address (host[:port]).
	Address string
	// Token is sent as a bearer token to the gRPC bridge.
	Token string
	// Plaintext disables TLS for the gRPC transport.
	Plaintext bool
	// CAFile, when set, replaces the system roots for verifying the server.
	CAFile string
	Logger *pterm.Logger
}

// New creates a bridge for the selected transport.
func New(ctx context.Context, opts Options) (Bridge, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Transport)) {
	case "", TransportExec:
		var execOpts []helmexec.Option
		if opts.Logger != nil {
			execOpts = append(execOpts, helmexec.WithLogger(opts.Logger))
		}
		return helmexec.New(opts.HelmBinary, execOpts...), nil
	case TransportGRPC:
		if strings.TrimSpace(opts.Address) == "" {
			return nil, fmt.Errorf("grpc transport requires an address")
		}
		clientOpts := grpcclient.Options{Token: opts.Token, Plaintext: opts.Plaintext}
		if opts.CAFile != "" && !opts.Plaintext {
			pool, err := loadRoots(opts.CAFile)
			if err != nil {
				return nil, err
			}
			clientOpts.RootCAs = pool
		}
		return grpcclient.Dial(ctx, opts.Address, clientOpts)
	default:
		return nil, fmt.Errorf("unknown transport %q (want %q or %q)", opts.Transport, TransportExec, TransportGRPC)
	}
}

func loadRoots(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bridge CA file: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("bridge CA file %s holds no PEM certificates", path)
	}
	return pool, nil
}
