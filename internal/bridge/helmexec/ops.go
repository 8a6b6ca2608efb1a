// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package helmexec

import (
	"context"
	"strings"

	"helmbridge/cli/internal/bridge/model"
)

func (e *Executor) Install(ctx context.Context, req *model.InstallRequest) model.InstallResponse {
	inv, err := installInvocation(req)
	if err != nil {
		return model.InstallResponse{Err: []string{err.Error()}}
	}
	errs, out := e.run(ctx, "install", inv)
	return model.InstallResponse{Err: errs, Data: out}
}

func (e *Executor) Upgrade(ctx context.Context, req *model.UpgradeRequest) model.UpgradeResponse {
	inv, err := upgradeInvocation(req)
	if err != nil {
		return model.UpgradeResponse{Err: []string{err.Error()}}
	}
	errs, out := e.run(ctx, "upgrade", inv)
	return model.UpgradeResponse{Err: errs, Data: out}
}

func (e *Executor) Uninstall(ctx context.Context, req *model.UninstallRequest) model.UninstallResponse {
	errs, out := e.run(ctx, "uninstall", uninstallInvocation(req))
	if errs == nil {
		out = strings.TrimSpace(out)
	}
	return model.UninstallResponse{Err: errs, Data: out}
}

func (e *Executor) List(ctx context.Context, req *model.ListRequest) model.ListResponse {
	errs, out := e.run(ctx, "list", listInvocation(req))
	if errs == nil {
		out = emptyList(out)
	}
	return model.ListResponse{Err: errs, Data: out}
}

func (e *Executor) RepoAdd(ctx context.Context, req *model.RepoAddRequest) model.RepoAddResponse {
	errs, _ := e.run(ctx, "repo_add", repoAddInvocation(req))
	return model.RepoAddResponse{Err: errs}
}

func (e *Executor) RepoSearch(ctx context.Context, req *model.RepoSearchRequest) model.RepoSearchResponse {
	errs, out := e.run(ctx, "repo_search", repoSearchInvocation(req))
	if errs == nil {
		out = emptyList(out)
	}
	return model.RepoSearchResponse{Err: errs, Data: out}
}

func (e *Executor) RegistryLogin(ctx context.Context, req *model.RegistryLoginRequest) model.RegistryLoginResponse {
	errs, _ := e.run(ctx, "registry_login", registryLoginInvocation(req))
	return model.RegistryLoginResponse{Err: errs}
}
