package helm

import (
	"errors"
	"testing"
	"time"

	"helmbridge/cli/internal/bridge/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func ptr[T any](v T) *T { return &v }

func TestTimeoutSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want int64
	}{
		{"unset", 0, 300},
		{"negative", -time.Second, 300},
		{"whole seconds", 45 * time.Second, 45},
		{"rounds up", 1500 * time.Millisecond, 2},
		{"sub-second", time.Millisecond, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timeoutSeconds(tt.in)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("timeoutSeconds(%v) = %v, want [%d]", tt.in, got, tt.want)
			}
		})
	}
}

func TestInstallRequest(t *testing.T) {
	req := Install{
		ReleaseName: "demo",
		Chart:       "oci://ghcr.io/acme/charts/demo",
		Namespace:   "apps",
		Values:      []byte(`{"a":1}`),
		Env:         Env{KubeContext: ptr("kind-dev")},
	}.Request()

	if req.ReleaseName != "demo" || req.Chart != "oci://ghcr.io/acme/charts/demo" || req.Namespace != "apps" {
		t.Errorf("scalar fields not copied: %+v", req)
	}
	if len(req.Timeout) != 1 || req.Timeout[0] != 300 {
		t.Errorf("Timeout = %v, want [300]", req.Timeout)
	}
	if req.DryRun == nil || len(req.DryRun) != 0 {
		t.Errorf("DryRun = %#v, want empty non-nil slice", req.DryRun)
	}
	if string(req.Values) != `{"a":1}` {
		t.Errorf("Values = %q, want passthrough", req.Values)
	}
	if len(req.Env.KubeContext) != 1 || req.Env.KubeContext[0] != "kind-dev" {
		t.Errorf("Env.KubeContext = %v, want [kind-dev]", req.Env.KubeContext)
	}
	if len(req.Env.KubeConfig) != 0 || len(req.Env.KubeToken) != 0 || len(req.Env.KubeCAFile) != 0 {
		t.Errorf("absent env fields not empty: %+v", req.Env)
	}
}

func TestUpgradeRequestDryRun(t *testing.T) {
	req := Upgrade{ReleaseName: "demo", DryRun: ptr("server"), Timeout: 10 * time.Second}.Request()
	if len(req.DryRun) != 1 || req.DryRun[0] != "server" {
		t.Errorf("DryRun = %v, want [server]", req.DryRun)
	}
	if req.Timeout[0] != 10 {
		t.Errorf("Timeout = %v, want [10]", req.Timeout)
	}
}

func TestUninstallRequestDefaultTimeout(t *testing.T) {
	req := Uninstall{ReleaseName: "demo", KeepHistory: true}.Request()
	if len(req.Timeout) != 1 || req.Timeout[0] != 300 {
		t.Errorf("Timeout = %v, want [300]", req.Timeout)
	}
	if !req.KeepHistory {
		t.Error("KeepHistory not copied")
	}
}

func TestListRequestStates(t *testing.T) {
	req := List{Sort: ByDateDesc, StateMask: StateDeployed | StateFailed}.Request()
	if req.Sort != 3 {
		t.Errorf("Sort = %d, want 3", req.Sort)
	}
	if req.StateMask != 129 {
		t.Errorf("StateMask = %d, want 129", req.StateMask)
	}
	if StateAll != 511 {
		t.Errorf("StateAll = %d, want 511", StateAll)
	}
}

func TestRepoSearchEmptyTerms(t *testing.T) {
	req := RepoSearch{}.Request()
	if req.Terms == nil || len(req.Terms) != 0 {
		t.Errorf("Terms = %#v, want empty non-nil slice", req.Terms)
	}

	terms := []string{"nginx", "ingress"}
	req = RepoSearch{Terms: terms}.Request()
	if len(req.Terms) != 2 || req.Terms[0] != "nginx" || req.Terms[1] != "ingress" {
		t.Errorf("Terms = %v, want passthrough", req.Terms)
	}
}

func TestEnvFromBridgeRejectsMalformed(t *testing.T) {
	_, err := EnvFromBridge(model.HelmEnv{KubeToken: []string{"a", "b"}})
	if !errors.Is(err, model.ErrMalformedOptional) {
		t.Fatalf("EnvFromBridge() error = %v, want ErrMalformedOptional", err)
	}
}

func TestDefaultMaterialization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("unset timeout becomes [300] for every timed operation", prop.ForAll(
		func(name string) bool {
			ins := Install{ReleaseName: name}.Request()
			upg := Upgrade{ReleaseName: name}.Request()
			uni := Uninstall{ReleaseName: name}.Request()
			for _, got := range [][]int64{ins.Timeout, upg.Timeout, uni.Timeout} {
				if len(got) != 1 || got[0] != 300 {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("explicit whole-second timeout is sent as [t]", prop.ForAll(
		func(secs int64) bool {
			d := time.Duration(secs) * time.Second
			ins := Install{Timeout: d}.Request()
			upg := Upgrade{Timeout: d}.Request()
			uni := Uninstall{Timeout: d}.Request()
			for _, got := range [][]int64{ins.Timeout, upg.Timeout, uni.Timeout} {
				if len(got) != 1 || got[0] != secs {
					return false
				}
			}
			return true
		},
		gen.Int64Range(1, 1<<32),
	))

	properties.TestingRun(t)
}

func TestEnvRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("EnvFromBridge(e.Bridge()) == e", prop.ForAll(
		func(cfg, kctx, token, ca *string, insecure bool) bool {
			in := Env{KubeConfig: cfg, KubeContext: kctx, KubeToken: token, KubeCAFile: ca, KubeInsecureSkipTLSVerify: insecure}
			w := in.Bridge()
			for _, s := range [][]string{w.KubeConfig, w.KubeContext, w.KubeToken, w.KubeCAFile} {
				if len(s) > 1 {
					return false
				}
			}
			out, err := EnvFromBridge(w)
			if err != nil {
				return false
			}
			return sameStr(in.KubeConfig, out.KubeConfig) &&
				sameStr(in.KubeContext, out.KubeContext) &&
				sameStr(in.KubeToken, out.KubeToken) &&
				sameStr(in.KubeCAFile, out.KubeCAFile) &&
				in.KubeInsecureSkipTLSVerify == out.KubeInsecureSkipTLSVerify
		},
		gen.PtrOf(gen.AnyString()),
		gen.PtrOf(gen.AnyString()),
		gen.PtrOf(gen.AnyString()),
		gen.PtrOf(gen.AnyString()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func sameStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
