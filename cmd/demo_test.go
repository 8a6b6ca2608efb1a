package cmd

import (
	"context"
	"testing"

	"helmbridge/cli/internal/bridge/model"
	helmerrors "helmbridge/cli/internal/errors"
	"helmbridge/cli/internal/helm"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCaller records the order of calls and fails the ones listed.
type recordingCaller struct {
	calls []string
	fail  map[string]string

	install *model.InstallRequest
	upgrade *model.UpgradeRequest
}

func (r *recordingCaller) errs(op string) []string {
	r.calls = append(r.calls, op)
	if msg, ok := r.fail[op]; ok {
		return []string{msg}
	}
	return nil
}

func (r *recordingCaller) Install(_ context.Context, req *model.InstallRequest) model.InstallResponse {
	r.install = req
	return model.InstallResponse{Err: r.errs("install"), Data: `{"name":"helm-sdk-example"}`}
}

func (r *recordingCaller) Upgrade(_ context.Context, req *model.UpgradeRequest) model.UpgradeResponse {
	r.upgrade = req
	return model.UpgradeResponse{Err: r.errs("upgrade")}
}

func (r *recordingCaller) Uninstall(_ context.Context, _ *model.UninstallRequest) model.UninstallResponse {
	return model.UninstallResponse{Err: r.errs("uninstall")}
}

func (r *recordingCaller) List(_ context.Context, _ *model.ListRequest) model.ListResponse {
	return model.ListResponse{Err: r.errs("list")}
}

func (r *recordingCaller) RepoAdd(_ context.Context, _ *model.RepoAddRequest) model.RepoAddResponse {
	return model.RepoAddResponse{Err: r.errs("repo_add")}
}

func (r *recordingCaller) RepoSearch(_ context.Context, _ *model.RepoSearchRequest) model.RepoSearchResponse {
	return model.RepoSearchResponse{Err: r.errs("repo_search")}
}

func (r *recordingCaller) RegistryLogin(_ context.Context, _ *model.RegistryLoginRequest) model.RegistryLoginResponse {
	return model.RegistryLoginResponse{Err: r.errs("registry_login")}
}

func quietOutput(t *testing.T) {
	t.Helper()
	pterm.DisableOutput()
	t.Cleanup(pterm.EnableOutput)
}

func TestRunDemoOrder(t *testing.T) {
	quietOutput(t)
	caller := &recordingCaller{}

	err := runDemo(context.Background(), helm.New(caller), helm.Env{}, "octocat", "secret")
	require.NoError(t, err)

	assert.Equal(t, []string{"registry_login", "install", "list", "upgrade", "list", "uninstall"}, caller.calls)
	require.NotNil(t, caller.install)
	assert.JSONEq(t, `{"replicaCount":"2"}`, string(caller.install.Values))
	assert.True(t, caller.install.Wait)
	require.NotNil(t, caller.upgrade)
	assert.Equal(t, "6.5.4", caller.upgrade.Version)
	assert.JSONEq(t, `{"replicaCount":"3"}`, string(caller.upgrade.Values))
}

func TestRunDemoContinuesAfterLoginFailure(t *testing.T) {
	quietOutput(t)
	caller := &recordingCaller{fail: map[string]string{"registry_login": "unauthorized"}}

	err := runDemo(context.Background(), helm.New(caller), helm.Env{}, "", "")
	require.NoError(t, err)
	assert.Len(t, caller.calls, 6)
}

func TestRunDemoStopsOnInstallFailure(t *testing.T) {
	quietOutput(t)
	caller := &recordingCaller{fail: map[string]string{"install": "chart not found"}}

	err := runDemo(context.Background(), helm.New(caller), helm.Env{}, "", "")
	require.Error(t, err)

	kind, ok := helmerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, helmerrors.InstallFailed, kind)
	assert.Equal(t, []string{"registry_login", "install"}, caller.calls)
}
