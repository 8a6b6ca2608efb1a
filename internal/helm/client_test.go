package helm

import (
	"context"
	"testing"
	"time"

	"helmbridge/cli/internal/bridge/model"
	"helmbridge/cli/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCaller answers every operation with a fixed error list and payload,
// and records the wire requests it receives.
type stubCaller struct {
	errs  []string
	data  string
	calls int

	install *model.InstallRequest
	search  *model.RepoSearchRequest
}

func (s *stubCaller) Install(_ context.Context, req *model.InstallRequest) model.InstallResponse {
	s.calls++
	s.install = req
	return model.InstallResponse{Err: s.errs, Data: s.data}
}

func (s *stubCaller) Upgrade(context.Context, *model.UpgradeRequest) model.UpgradeResponse {
	s.calls++
	return model.UpgradeResponse{Err: s.errs, Data: s.data}
}

func (s *stubCaller) Uninstall(context.Context, *model.UninstallRequest) model.UninstallResponse {
	s.calls++
	return model.UninstallResponse{Err: s.errs, Data: s.data}
}

func (s *stubCaller) List(context.Context, *model.ListRequest) model.ListResponse {
	s.calls++
	return model.ListResponse{Err: s.errs, Data: s.data}
}

func (s *stubCaller) RepoAdd(context.Context, *model.RepoAddRequest) model.RepoAddResponse {
	s.calls++
	return model.RepoAddResponse{Err: s.errs}
}

func (s *stubCaller) RepoSearch(_ context.Context, req *model.RepoSearchRequest) model.RepoSearchResponse {
	s.calls++
	s.search = req
	return model.RepoSearchResponse{Err: s.errs, Data: s.data}
}

func (s *stubCaller) RegistryLogin(context.Context, *model.RegistryLoginRequest) model.RegistryLoginResponse {
	s.calls++
	return model.RegistryLoginResponse{Err: s.errs}
}

func TestInstallSuccess(t *testing.T) {
	caller := &stubCaller{data: "release-json"}
	client := New(caller)

	got, err := client.Install(context.Background(), Install{ReleaseName: "demo", Chart: "demo"})

	require.NoError(t, err)
	assert.Equal(t, "release-json", got)
	assert.Equal(t, 1, caller.calls)
	require.NotNil(t, caller.install)
	assert.Equal(t, []int64{300}, caller.install.Timeout)
}

func TestInstallFailureWithDiagnostic(t *testing.T) {
	caller := &stubCaller{errs: []string{"chart not found", "ignored"}, data: "partial"}
	client := New(caller)

	got, err := client.Install(context.Background(), Install{ReleaseName: "demo", Chart: "missing"})

	assert.Empty(t, got)
	var e *errors.E
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.InstallFailed, e.Kind)
	assert.Equal(t, "chart not found", e.Message)
	require.NotNil(t, e.Response)
	assert.Equal(t, "partial", *e.Response)
	assert.Equal(t, "install error: chart not found", err.Error())
}

func TestEffectOnlySuccess(t *testing.T) {
	caller := &stubCaller{data: "ignored by effect-only operations"}
	client := New(caller)

	assert.NoError(t, client.RepoAdd(context.Background(), RepoAdd{Name: "acme", URL: "https://charts.acme.dev"}))
	assert.NoError(t, client.RegistryLogin(context.Background(), RegistryLogin{Hostname: "ghcr.io"}))
	assert.Equal(t, 2, caller.calls)
}

func TestEmptyTermsSearch(t *testing.T) {
	caller := &stubCaller{}
	client := New(caller)

	got, err := client.RepoSearch(context.Background(), RepoSearch{})

	require.NoError(t, err)
	assert.Equal(t, "", got)
	require.NotNil(t, caller.search)
	assert.NotNil(t, caller.search.Terms)
	assert.Empty(t, caller.search.Terms)
}

func TestFailureKindPerOperation(t *testing.T) {
	caller := &stubCaller{errs: []string{"boom"}}
	client := New(caller)
	ctx := context.Background()

	_, errUpgrade := client.Upgrade(ctx, Upgrade{Timeout: time.Minute})
	_, errUninstall := client.Uninstall(ctx, Uninstall{})
	_, errList := client.List(ctx, List{})
	_, errSearch := client.RepoSearch(ctx, RepoSearch{Terms: []string{"x"}})
	errAdd := client.RepoAdd(ctx, RepoAdd{})
	errLogin := client.RegistryLogin(ctx, RegistryLogin{})

	tests := []struct {
		err  error
		kind errors.Kind
		text string
	}{
		{errUpgrade, errors.UpgradeFailed, "upgrade error: boom"},
		{errUninstall, errors.UninstallFailed, "uninstall error: boom"},
		{errList, errors.ListFailed, "list error: boom"},
		{errSearch, errors.RepoSearchFailed, "repo search error: boom"},
		{errAdd, errors.RepoAddFailed, "repo add error: boom"},
		{errLogin, errors.RegistryLoginFailed, "registry login error: boom"},
	}
	for _, tt := range tests {
		kind, ok := errors.KindOf(tt.err)
		assert.True(t, ok)
		assert.Equal(t, tt.kind, kind)
		assert.EqualError(t, tt.err, tt.text)
	}
}

func TestListSuccessWithEmptyData(t *testing.T) {
	caller := &stubCaller{data: ""}
	client := New(caller)

	got, err := client.List(context.Background(), List{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
