// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package helm

import (
	"context"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/errors"
	"helmbridge/cli/internal/logging"

	"github.com/pterm/pterm"
)

// Client invokes operations across a bridge. It holds no mutable state and
// is safe for concurrent use.
type Client struct {
	caller bridge.Caller
	logger *pterm.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger for debug output.
func WithLogger(l *pterm.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a client calling through caller.
func New(caller bridge.Caller, opts ...Option) *Client {
	c := &Client{caller: caller, logger: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Install installs a chart and returns the remote side's release report.
func (c *Client) Install(ctx context.Context, r Install) (string, error) {
	req := r.Request()
	resp := c.caller.Install(ctx, &req)
	return classifyData(c.logger, errors.InstallFailed, resp.Err, resp.Data)
}

// Upgrade upgrades a release and returns the remote side's release report.
func (c *Client) Upgrade(ctx context.Context, r Upgrade) (string, error) {
	req := r.Request()
	resp := c.caller.Upgrade(ctx, &req)
	return classifyData(c.logger, errors.UpgradeFailed, resp.Err, resp.Data)
}

// Uninstall removes a release and returns the remote side's report.
func (c *Client) Uninstall(ctx context.Context, r Uninstall) (string, error) {
	req := r.Request()
	resp := c.caller.Uninstall(ctx, &req)
	return classifyData(c.logger, errors.UninstallFailed, resp.Err, resp.Data)
}

// List returns the serialized release list; "" means no releases.
func (c *Client) List(ctx context.Context, r List) (string, error) {
	req := r.Request()
	resp := c.caller.List(ctx, &req)
	return classifyData(c.logger, errors.ListFailed, resp.Err, resp.Data)
}

// RepoAdd registers a chart repository.
func (c *Client) RepoAdd(ctx context.Context, r RepoAdd) error {
	req := r.Request()
	resp := c.caller.RepoAdd(ctx, &req)
	return classifyEffect(c.logger, errors.RepoAddFailed, resp.Err)
}

// RepoSearch returns the serialized search results; "" means no match.
func (c *Client) RepoSearch(ctx context.Context, r RepoSearch) (string, error) {
	req := r.Request()
	resp := c.caller.RepoSearch(ctx, &req)
	return classifyData(c.logger, errors.RepoSearchFailed, resp.Err, resp.Data)
}

// RegistryLogin logs in to an OCI registry.
func (c *Client) RegistryLogin(ctx context.Context, r RegistryLogin) error {
	req := r.Request()
	resp := c.caller.RegistryLogin(ctx, &req)
	return classifyEffect(c.logger, errors.RegistryLoginFailed, resp.Err)
}
