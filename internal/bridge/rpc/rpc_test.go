package rpc

import (
	"testing"

	"helmbridge/cli/internal/bridge/model"
	helmcallpb "helmbridge/cli/internal/bridge/proto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestInstallRequestSurvivesWireEncoding(t *testing.T) {
	in := &model.InstallRequest{
		ReleaseName:     "demo",
		Chart:           "oci://ghcr.io/acme/charts/demo",
		Version:         "1.2.3",
		Namespace:       "apps",
		Wait:            true,
		Timeout:         []int64{300},
		CreateNamespace: true,
		Values:          []byte(`{"replicas":2}`),
		Env: model.HelmEnv{
			KubeConfig:                []string{"/home/dev/.kube/config"},
			KubeContext:               []string{"kind-dev"},
			KubeToken:                 []string{},
			KubeCAFile:                []string{},
			KubeInsecureSkipTLSVerify: true,
		},
		DryRun: []string{"server"},
	}

	raw, err := proto.Marshal(InstallRequestToProto(in))
	require.NoError(t, err)
	var decoded helmcallpb.InstallRequest
	require.NoError(t, proto.Unmarshal(raw, &decoded))

	assert.Equal(t, in, InstallRequestFromProto(&decoded))
}

func TestAbsentOptionalsDecodeAsEmptySequences(t *testing.T) {
	raw, err := proto.Marshal(UpgradeRequestToProto(&model.UpgradeRequest{ReleaseName: "demo"}))
	require.NoError(t, err)
	var decoded helmcallpb.UpgradeRequest
	require.NoError(t, proto.Unmarshal(raw, &decoded))

	got := UpgradeRequestFromProto(&decoded)
	assert.NotNil(t, got.Timeout)
	assert.Empty(t, got.Timeout)
	assert.NotNil(t, got.DryRun)
	assert.Empty(t, got.DryRun)
	assert.NotNil(t, got.Env.KubeContext)
	assert.Empty(t, got.Env.KubeContext)
}

func TestNilEnvDecodesAsEmptyEnvironment(t *testing.T) {
	got := ListRequestFromProto(&helmcallpb.ListRequest{Ns: "apps"})

	assert.Equal(t, "apps", got.Namespace)
	assert.Equal(t, model.HelmEnv{
		KubeConfig:  []string{},
		KubeContext: []string{},
		KubeToken:   []string{},
		KubeCAFile:  []string{},
	}, got.Env)
}

func TestListRequestKeepsFilters(t *testing.T) {
	in := &model.ListRequest{
		Namespace:     "apps",
		AllNamespaces: true,
		Sort:          2,
		SortReverse:   true,
		StateMask:     0x3f,
		Limit:         256,
		Offset:        10,
		Filter:        "^web",
		TimeFormat:    "2006-01-02",
		Deployed:      true,
		Failed:        true,
		Selector:      "team=core",
		Env:           EnvFromProto(nil),
	}

	raw, err := proto.Marshal(ListRequestToProto(in))
	require.NoError(t, err)
	var decoded helmcallpb.ListRequest
	require.NoError(t, proto.Unmarshal(raw, &decoded))

	assert.Equal(t, in, ListRequestFromProto(&decoded))
}

func TestRepoAndRegistryRequests(t *testing.T) {
	add := &model.RepoAddRequest{
		Name:                  "bitnami",
		URL:                   "https://charts.bitnami.com/bitnami",
		Username:              "bot",
		Password:              "pw",
		ForceUpdate:           true,
		CAFile:                "/etc/ssl/ca.pem",
		InsecureSkipTLSVerify: true,
		Env:                   EnvFromProto(nil),
	}
	assert.Equal(t, add, RepoAddRequestFromProto(RepoAddRequestToProto(add)))

	search := &model.RepoSearchRequest{Regexp: "nginx", Devel: true, Terms: []string{"web"}, Env: EnvFromProto(nil)}
	assert.Equal(t, search, RepoSearchRequestFromProto(RepoSearchRequestToProto(search)))

	login := &model.RegistryLoginRequest{Hostname: "ghcr.io", Username: "bot", Password: "pw", PlainHTTP: true, Env: EnvFromProto(nil)}
	assert.Equal(t, login, RegistryLoginRequestFromProto(RegistryLoginRequestToProto(login)))

	uninstall := &model.UninstallRequest{
		ReleaseName:         "demo",
		KeepHistory:         true,
		DeletionPropagation: "foreground",
		Timeout:             []int64{60},
		Description:         "cleanup",
		Env:                 EnvFromProto(nil),
	}
	assert.Equal(t, uninstall, UninstallRequestFromProto(UninstallRequestToProto(uninstall)))
}

func TestResponsesKeepErrorsAndPayload(t *testing.T) {
	raw, err := proto.Marshal(ListResponseToProto(model.ListResponse{Err: []string{"cluster unreachable", "second"}, Data: "partial"}))
	require.NoError(t, err)
	var decoded helmcallpb.ListResponse
	require.NoError(t, proto.Unmarshal(raw, &decoded))

	got := ListResponseFromProto(&decoded)
	assert.Equal(t, []string{"cluster unreachable", "second"}, got.Err)
	assert.Equal(t, "partial", got.Data)

	login := RegistryLoginResponseFromProto(RegistryLoginResponseToProto(model.RegistryLoginResponse{}))
	assert.Empty(t, login.Err)
}
