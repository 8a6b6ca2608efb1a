package helmexec

import (
	"context"
	"errors"
	"testing"

	"helmbridge/cli/internal/bridge/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	got    []Invocation
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, inv Invocation) ([]byte, []byte, error) {
	f.got = append(f.got, inv)
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func newExecutor(r *fakeRunner) *Executor {
	return New("", WithRunner(r))
}

func TestInstallArgs(t *testing.T) {
	r := &fakeRunner{stdout: `{"name":"demo"}`}
	e := newExecutor(r)

	resp := e.Install(context.Background(), &model.InstallRequest{
		ReleaseName:     "demo",
		Chart:           "oci://ghcr.io/acme/charts/demo",
		Version:         "1.2.0",
		Namespace:       "apps",
		Wait:            true,
		Timeout:         []int64{300},
		CreateNamespace: true,
		Values:          []byte(`{"replicas":2}`),
		DryRun:          []string{"server"},
		Env: model.HelmEnv{
			KubeConfig:  []string{"/home/dev/.kube/config"},
			KubeContext: []string{"kind-dev"},
			KubeToken:   []string{"tok"},
			KubeCAFile:  []string{},
		},
	})

	assert.Empty(t, resp.Err)
	assert.Equal(t, `{"name":"demo"}`, resp.Data)
	require.Len(t, r.got, 1)
	inv := r.got[0]
	assert.Equal(t, []string{
		"install", "demo", "oci://ghcr.io/acme/charts/demo",
		"--version", "1.2.0",
		"--namespace", "apps",
		"--wait",
		"--timeout", "300s",
		"--create-namespace",
		"--dry-run=server",
		"--values", "-",
		"--kubeconfig", "/home/dev/.kube/config",
		"--kube-context", "kind-dev",
		"--output", "json",
	}, inv.Args)
	assert.Equal(t, []byte(`{"replicas":2}`), inv.Stdin)
	assert.Equal(t, []string{"HELM_KUBETOKEN=tok"}, inv.Env)
	assert.NotContains(t, inv.Args, "tok")
}

func TestInstallRejectsNonObjectValues(t *testing.T) {
	r := &fakeRunner{}
	e := newExecutor(r)

	resp := e.Install(context.Background(), &model.InstallRequest{
		ReleaseName: "demo",
		Chart:       "demo",
		Values:      []byte(`[1,2]`),
	})

	require.Len(t, resp.Err, 1)
	assert.Contains(t, resp.Err[0], "values must be a JSON object")
	assert.Empty(t, r.got, "helm must not run with invalid values")
}

func TestUpgradeArgs(t *testing.T) {
	r := &fakeRunner{stdout: "{}"}
	e := newExecutor(r)

	e.Upgrade(context.Background(), &model.UpgradeRequest{
		ReleaseName: "demo",
		Chart:       "demo",
		Timeout:     []int64{60},
		DryRun:      []string{""},
		ReuseValues: true,
	})

	require.Len(t, r.got, 1)
	assert.Equal(t, []string{
		"upgrade", "demo", "demo",
		"--timeout", "60s",
		"--reuse-values",
		"--output", "json",
	}, r.got[0].Args)
	assert.Nil(t, r.got[0].Stdin)
	assert.Nil(t, r.got[0].Env)
}

func TestUninstallTrimsReport(t *testing.T) {
	r := &fakeRunner{stdout: "release \"demo\" uninstalled\n"}
	e := newExecutor(r)

	resp := e.Uninstall(context.Background(), &model.UninstallRequest{
		ReleaseName:         "demo",
		KeepHistory:         true,
		DeletionPropagation: "foreground",
		Timeout:             []int64{300},
	})

	assert.Empty(t, resp.Err)
	assert.Equal(t, `release "demo" uninstalled`, resp.Data)
	assert.Equal(t, []string{
		"uninstall", "demo",
		"--keep-history",
		"--cascade", "foreground",
		"--timeout", "300s",
	}, r.got[0].Args)
}

func TestListArgs(t *testing.T) {
	tests := []struct {
		name string
		req  model.ListRequest
		want []string
	}{
		{
			name: "defaults",
			req:  model.ListRequest{},
			want: []string{"list", "--output", "json"},
		},
		{
			name: "sort by date descending",
			req:  model.ListRequest{Sort: SortByDateDesc},
			want: []string{"list", "--date", "--reverse", "--output", "json"},
		},
		{
			name: "name descending",
			req:  model.ListRequest{Sort: SortByNameDesc},
			want: []string{"list", "--reverse", "--output", "json"},
		},
		{
			name: "state mask",
			req:  model.ListRequest{StateMask: StateDeployed | StatePendingUpgrade | StateFailed},
			want: []string{"list", "--deployed", "--pending", "--failed", "--output", "json"},
		},
		{
			name: "all states",
			req:  model.ListRequest{StateMask: StateAll, AllNamespaces: true},
			want: []string{
				"list", "--all-namespaces", "--all",
				"--deployed", "--uninstalled", "--uninstalling", "--pending", "--superseded", "--failed",
				"--output", "json",
			},
		},
		{
			name: "paging and filters",
			req:  model.ListRequest{Namespace: "apps", Limit: 10, Offset: 5, Filter: "^web", Selector: "team=a"},
			want: []string{
				"list", "--namespace", "apps",
				"--max", "10", "--offset", "5",
				"--filter", "^web", "--selector", "team=a",
				"--output", "json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{stdout: "[]"}
			newExecutor(r).List(context.Background(), &tt.req)
			require.Len(t, r.got, 1)
			assert.Equal(t, tt.want, r.got[0].Args)
		})
	}
}

func TestListEmptyResultHasNoPayload(t *testing.T) {
	r := &fakeRunner{stdout: "[]\n"}
	resp := newExecutor(r).List(context.Background(), &model.ListRequest{})
	assert.Empty(t, resp.Err)
	assert.Equal(t, "", resp.Data)
}

func TestRepoSearchArgs(t *testing.T) {
	tests := []struct {
		name string
		req  model.RepoSearchRequest
		want []string
	}{
		{
			name: "no terms lists everything",
			req:  model.RepoSearchRequest{Terms: []string{}},
			want: []string{"search", "repo", "--output", "json"},
		},
		{
			name: "literal terms",
			req:  model.RepoSearchRequest{Terms: []string{"nginx", "ingress"}, Versions: true},
			want: []string{"search", "repo", "nginx", "ingress", "--versions", "--output", "json"},
		},
		{
			name: "regexp wins over terms",
			req:  model.RepoSearchRequest{Terms: []string{"x"}, Regexp: "^bitnami/", Version: ">=1.0.0"},
			want: []string{"search", "repo", "^bitnami/", "--regexp", "--version", ">=1.0.0", "--output", "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{stdout: "[]"}
			resp := newExecutor(r).RepoSearch(context.Background(), &tt.req)
			assert.Empty(t, resp.Data)
			require.Len(t, r.got, 1)
			assert.Equal(t, tt.want, r.got[0].Args)
		})
	}
}

func TestPasswordsGoToStdin(t *testing.T) {
	r := &fakeRunner{}
	e := newExecutor(r)

	e.RepoAdd(context.Background(), &model.RepoAddRequest{
		Name:     "acme",
		URL:      "https://charts.acme.dev",
		Username: "bot",
		Password: "hunter2",
	})
	e.RegistryLogin(context.Background(), &model.RegistryLoginRequest{
		Hostname:  "ghcr.io",
		Username:  "bot",
		Password:  "hunter2",
		PlainHTTP: true,
	})

	require.Len(t, r.got, 2)
	assert.Equal(t, []string{"repo", "add", "acme", "https://charts.acme.dev", "--username", "bot", "--password-stdin"}, r.got[0].Args)
	assert.Equal(t, []byte("hunter2"), r.got[0].Stdin)
	assert.Equal(t, []string{"registry", "login", "ghcr.io", "--username", "bot", "--password-stdin", "--plain-http"}, r.got[1].Args)
	assert.Equal(t, []byte("hunter2"), r.got[1].Stdin)
	for _, inv := range r.got {
		assert.NotContains(t, inv.Args, "hunter2")
	}
}

func TestFailureMapping(t *testing.T) {
	tests := []struct {
		name   string
		runner *fakeRunner
		want   []string
		data   string
	}{
		{
			name: "error line wins, warnings follow",
			runner: &fakeRunner{
				stdout: "partial",
				stderr: "WARNING: kubeconfig is group-readable\nError: INSTALLATION FAILED: chart not found\n",
				err:    errors.New("exit status 1"),
			},
			want: []string{"INSTALLATION FAILED: chart not found", "WARNING: kubeconfig is group-readable"},
			data: "partial",
		},
		{
			name:   "no stderr uses process error",
			runner: &fakeRunner{err: errors.New(`exec: "helm": executable file not found in $PATH`)},
			want:   []string{`exec: "helm": executable file not found in $PATH`},
		},
		{
			name:   "unprefixed stderr kept whole",
			runner: &fakeRunner{stderr: "  something odd\n", err: errors.New("exit status 2")},
			want:   []string{"something odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newExecutor(tt.runner).Install(context.Background(), &model.InstallRequest{ReleaseName: "demo", Chart: "demo"})
			assert.Equal(t, tt.want, resp.Err)
			assert.Equal(t, tt.data, resp.Data)
		})
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &fakeRunner{err: errors.New("signal: killed")}

	resp := newExecutor(r).RegistryLogin(ctx, &model.RegistryLoginRequest{Hostname: "ghcr.io"})

	assert.Equal(t, []string{context.Canceled.Error()}, resp.Err)
}

func TestCloseIsNoop(t *testing.T) {
	assert.NoError(t, New("helm").Close())
}
