// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package grpcserver

import (
	"context"
	"time"

	"helmbridge/cli/internal/bridge"
	helmcallpb "helmbridge/cli/internal/bridge/proto"
	"helmbridge/cli/internal/bridge/rpc"

	"github.com/pterm/pterm"
)

// helmCallService implements the generated HelmCall server on top of a
// bridge.Caller. Chart failures travel in the response, never as a status.
type helmCallService struct {
	helmcallpb.UnimplementedHelmCallServer

	caller bridge.Caller
	logger *pterm.Logger
}

func (s *helmCallService) logCall(method string, start time.Time, errs []string) {
	s.logger.Debug("bridge call", s.logger.Args(
		"method", method,
		"duration", time.Since(start).String(),
		"failed", len(errs) > 0,
	))
}

func (s *helmCallService) Install(ctx context.Context, req *helmcallpb.InstallRequest) (*helmcallpb.InstallResponse, error) {
	start := time.Now()
	resp := s.caller.Install(ctx, rpc.InstallRequestFromProto(req))
	s.logCall("Install", start, resp.Err)
	return rpc.InstallResponseToProto(resp), nil
}

func (s *helmCallService) Upgrade(ctx context.Context, req *helmcallpb.UpgradeRequest) (*helmcallpb.UpgradeResponse, error) {
	start := time.Now()
	resp := s.caller.Upgrade(ctx, rpc.UpgradeRequestFromProto(req))
	s.logCall("Upgrade", start, resp.Err)
	return rpc.UpgradeResponseToProto(resp), nil
}

func (s *helmCallService) Uninstall(ctx context.Context, req *helmcallpb.UninstallRequest) (*helmcallpb.UninstallResponse, error) {
	start := time.Now()
	resp := s.caller.Uninstall(ctx, rpc.UninstallRequestFromProto(req))
	s.logCall("Uninstall", start, resp.Err)
	return rpc.UninstallResponseToProto(resp), nil
}

func (s *helmCallService) List(ctx context.Context, req *helmcallpb.ListRequest) (*helmcallpb.ListResponse, error) {
	start := time.Now()
	resp := s.caller.List(ctx, rpc.ListRequestFromProto(req))
	s.logCall("List", start, resp.Err)
	return rpc.ListResponseToProto(resp), nil
}

func (s *helmCallService) RepoAdd(ctx context.Context, req *helmcallpb.RepoAddRequest) (*helmcallpb.RepoAddResponse, error) {
	start := time.Now()
	resp := s.caller.RepoAdd(ctx, rpc.RepoAddRequestFromProto(req))
	s.logCall("RepoAdd", start, resp.Err)
	return rpc.RepoAddResponseToProto(resp), nil
}

func (s *helmCallService) RepoSearch(ctx context.Context, req *helmcallpb.RepoSearchRequest) (*helmcallpb.RepoSearchResponse, error) {
	start := time.Now()
	resp := s.caller.RepoSearch(ctx, rpc.RepoSearchRequestFromProto(req))
	s.logCall("RepoSearch", start, resp.Err)
	return rpc.RepoSearchResponseToProto(resp), nil
}

func (s *helmCallService) RegistryLogin(ctx context.Context, req *helmcallpb.RegistryLoginRequest) (*helmcallpb.RegistryLoginResponse, error) {
	start := time.Now()
	resp := s.caller.RegistryLogin(ctx, rpc.RegistryLoginRequestFromProto(req))
	s.logCall("RegistryLogin", start, resp.Err)
	return rpc.RegistryLoginResponseToProto(resp), nil
}
