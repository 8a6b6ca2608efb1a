// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package rpc maps the transport-agnostic model types to the HelmCall
// protobuf messages and back. The gRPC client and server both go through
// these functions, so the model package never depends on generated code.
//
// Optional values travel as repeated fields. Protobuf cannot tell an empty
// list from an absent one, so decoding restores the empty, non-nil slice
// that model.Flatten produces for an absent value.
package rpc

import (
	"helmbridge/cli/internal/bridge/model"
	helmcallpb "helmbridge/cli/internal/bridge/proto"
)

// seq returns s, or an empty slice when s is nil.
func seq[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func EnvToProto(e model.HelmEnv) *helmcallpb.HelmEnv {
	return &helmcallpb.HelmEnv{
		KubeConfig:                e.KubeConfig,
		KubeContext:               e.KubeContext,
		KubeToken:                 e.KubeToken,
		KubeCaFile:                e.KubeCAFile,
		KubeInsecureSkipTlsVerify: e.KubeInsecureSkipTLSVerify,
	}
}

// EnvFromProto accepts a nil env as the empty environment.
func EnvFromProto(e *helmcallpb.HelmEnv) model.HelmEnv {
	return model.HelmEnv{
		KubeConfig:                seq(e.GetKubeConfig()),
		KubeContext:               seq(e.GetKubeContext()),
		KubeToken:                 seq(e.GetKubeToken()),
		KubeCAFile:                seq(e.GetKubeCaFile()),
		KubeInsecureSkipTLSVerify: e.GetKubeInsecureSkipTlsVerify(),
	}
}

func InstallRequestToProto(r *model.InstallRequest) *helmcallpb.InstallRequest {
	return &helmcallpb.InstallRequest{
		ReleaseName:     r.ReleaseName,
		Chart:           r.Chart,
		Version:         r.Version,
		Ns:              r.Namespace,
		Wait:            r.Wait,
		Timeout:         r.Timeout,
		CreateNamespace: r.CreateNamespace,
		Values:          r.Values,
		Env:             EnvToProto(r.Env),
		DryRun:          r.DryRun,
	}
}

func InstallRequestFromProto(r *helmcallpb.InstallRequest) *model.InstallRequest {
	return &model.InstallRequest{
		ReleaseName:     r.GetReleaseName(),
		Chart:           r.GetChart(),
		Version:         r.GetVersion(),
		Namespace:       r.GetNs(),
		Wait:            r.GetWait(),
		Timeout:         seq(r.GetTimeout()),
		CreateNamespace: r.GetCreateNamespace(),
		Values:          r.GetValues(),
		Env:             EnvFromProto(r.GetEnv()),
		DryRun:          seq(r.GetDryRun()),
	}
}

func InstallResponseToProto(r model.InstallResponse) *helmcallpb.InstallResponse {
	return &helmcallpb.InstallResponse{Err: r.Err, Data: r.Data}
}

func InstallResponseFromProto(r *helmcallpb.InstallResponse) model.InstallResponse {
	return model.InstallResponse{Err: r.GetErr(), Data: r.GetData()}
}

func UpgradeRequestToProto(r *model.UpgradeRequest) *helmcallpb.UpgradeRequest {
	return &helmcallpb.UpgradeRequest{
		ReleaseName: r.ReleaseName,
		Chart:       r.Chart,
		Version:     r.Version,
		Ns:          r.Namespace,
		Wait:        r.Wait,
		Timeout:     r.Timeout,
		DryRun:      r.DryRun,
		ReuseValues: r.ReuseValues,
		ResetValues: r.ResetValues,
		Values:      r.Values,
		Env:         EnvToProto(r.Env),
	}
}

func UpgradeRequestFromProto(r *helmcallpb.UpgradeRequest) *model.UpgradeRequest {
	return &model.UpgradeRequest{
		ReleaseName: r.GetReleaseName(),
		Chart:       r.GetChart(),
		Version:     r.GetVersion(),
		Namespace:   r.GetNs(),
		Wait:        r.GetWait(),
		Timeout:     seq(r.GetTimeout()),
		DryRun:      seq(r.GetDryRun()),
		ReuseValues: r.GetReuseValues(),
		ResetValues: r.GetResetValues(),
		Values:      r.GetValues(),
		Env:         EnvFromProto(r.GetEnv()),
	}
}

func UpgradeResponseToProto(r model.UpgradeResponse) *helmcallpb.UpgradeResponse {
	return &helmcallpb.UpgradeResponse{Err: r.Err, Data: r.Data}
}

func UpgradeResponseFromProto(r *helmcallpb.UpgradeResponse) model.UpgradeResponse {
	return model.UpgradeResponse{Err: r.GetErr(), Data: r.GetData()}
}

func UninstallRequestToProto(r *model.UninstallRequest) *helmcallpb.UninstallRequest {
	return &helmcallpb.UninstallRequest{
		ReleaseName:         r.ReleaseName,
		Ns:                  r.Namespace,
		DisableHooks:        r.DisableHooks,
		DryRun:              r.DryRun,
		IgnoreNotFound:      r.IgnoreNotFound,
		KeepHistory:         r.KeepHistory,
		Wait:                r.Wait,
		DeletionPropagation: r.DeletionPropagation,
		Timeout:             r.Timeout,
		Description:         r.Description,
		Env:                 EnvToProto(r.Env),
	}
}

func UninstallRequestFromProto(r *helmcallpb.UninstallRequest) *model.UninstallRequest {
	return &model.UninstallRequest{
		ReleaseName:         r.GetReleaseName(),
		Namespace:           r.GetNs(),
		DisableHooks:        r.GetDisableHooks(),
		DryRun:              r.GetDryRun(),
		IgnoreNotFound:      r.GetIgnoreNotFound(),
		KeepHistory:         r.GetKeepHistory(),
		Wait:                r.GetWait(),
		DeletionPropagation: r.GetDeletionPropagation(),
		Timeout:             seq(r.GetTimeout()),
		Description:         r.GetDescription(),
		Env:                 EnvFromProto(r.GetEnv()),
	}
}

func UninstallResponseToProto(r model.UninstallResponse) *helmcallpb.UninstallResponse {
	return &helmcallpb.UninstallResponse{Err: r.Err, Data: r.Data}
}

func UninstallResponseFromProto(r *helmcallpb.UninstallResponse) model.UninstallResponse {
	return model.UninstallResponse{Err: r.GetErr(), Data: r.GetData()}
}

func ListRequestToProto(r *model.ListRequest) *helmcallpb.ListRequest {
	return &helmcallpb.ListRequest{
		Ns:            r.Namespace,
		Env:           EnvToProto(r.Env),
		All:           r.All,
		AllNamespaces: r.AllNamespaces,
		Sort:          r.Sort,
		ByDate:        r.ByDate,
		SortReverse:   r.SortReverse,
		StateMask:     r.StateMask,
		Limit:         r.Limit,
		Offset:        r.Offset,
		Filter:        r.Filter,
		NoHeaders:     r.NoHeaders,
		TimeFormat:    r.TimeFormat,
		Uninstalled:   r.Uninstalled,
		Superseded:    r.Superseded,
		Uninstalling:  r.Uninstalling,
		Deployed:      r.Deployed,
		Failed:        r.Failed,
		Pending:       r.Pending,
		Selector:      r.Selector,
	}
}

func ListRequestFromProto(r *helmcallpb.ListRequest) *model.ListRequest {
	return &model.ListRequest{
		Namespace:     r.GetNs(),
		Env:           EnvFromProto(r.GetEnv()),
		All:           r.GetAll(),
		AllNamespaces: r.GetAllNamespaces(),
		Sort:          r.GetSort(),
		ByDate:        r.GetByDate(),
		SortReverse:   r.GetSortReverse(),
		StateMask:     r.GetStateMask(),
		Limit:         r.GetLimit(),
		Offset:        r.GetOffset(),
		Filter:        r.GetFilter(),
		NoHeaders:     r.GetNoHeaders(),
		TimeFormat:    r.GetTimeFormat(),
		Uninstalled:   r.GetUninstalled(),
		Superseded:    r.GetSuperseded(),
		Uninstalling:  r.GetUninstalling(),
		Deployed:      r.GetDeployed(),
		Failed:        r.GetFailed(),
		Pending:       r.GetPending(),
		Selector:      r.GetSelector(),
	}
}

func ListResponseToProto(r model.ListResponse) *helmcallpb.ListResponse {
	return &helmcallpb.ListResponse{Err: r.Err, Data: r.Data}
}

func ListResponseFromProto(r *helmcallpb.ListResponse) model.ListResponse {
	return model.ListResponse{Err: r.GetErr(), Data: r.GetData()}
}

func RepoAddRequestToProto(r *model.RepoAddRequest) *helmcallpb.RepoAddRequest {
	return &helmcallpb.RepoAddRequest{
		Name:                  r.Name,
		Url:                   r.URL,
		Username:              r.Username,
		Password:              r.Password,
		PasswordFromStdin:     r.PasswordFromStdin,
		PassCredentialsAll:    r.PassCredentialsAll,
		ForceUpdate:           r.ForceUpdate,
		AllowDeprecatedRepos:  r.AllowDeprecatedRepos,
		CertFile:              r.CertFile,
		KeyFile:               r.KeyFile,
		CaFile:                r.CAFile,
		InsecureSkipTlsVerify: r.InsecureSkipTLSVerify,
		Env:                   EnvToProto(r.Env),
	}
}

func RepoAddRequestFromProto(r *helmcallpb.RepoAddRequest) *model.RepoAddRequest {
	return &model.RepoAddRequest{
		Name:                  r.GetName(),
		URL:                   r.GetUrl(),
		Username:              r.GetUsername(),
		Password:              r.GetPassword(),
		PasswordFromStdin:     r.GetPasswordFromStdin(),
		PassCredentialsAll:    r.GetPassCredentialsAll(),
		ForceUpdate:           r.GetForceUpdate(),
		AllowDeprecatedRepos:  r.GetAllowDeprecatedRepos(),
		CertFile:              r.GetCertFile(),
		KeyFile:               r.GetKeyFile(),
		CAFile:                r.GetCaFile(),
		InsecureSkipTLSVerify: r.GetInsecureSkipTlsVerify(),
		Env:                   EnvFromProto(r.GetEnv()),
	}
}

func RepoAddResponseToProto(r model.RepoAddResponse) *helmcallpb.RepoAddResponse {
	return &helmcallpb.RepoAddResponse{Err: r.Err}
}

func RepoAddResponseFromProto(r *helmcallpb.RepoAddResponse) model.RepoAddResponse {
	return model.RepoAddResponse{Err: r.GetErr()}
}

func RepoSearchRequestToProto(r *model.RepoSearchRequest) *helmcallpb.RepoSearchRequest {
	return &helmcallpb.RepoSearchRequest{
		Versions: r.Versions,
		Regexp:   r.Regexp,
		Devel:    r.Devel,
		Version:  r.Version,
		Terms:    r.Terms,
		Env:      EnvToProto(r.Env),
	}
}

func RepoSearchRequestFromProto(r *helmcallpb.RepoSearchRequest) *model.RepoSearchRequest {
	return &model.RepoSearchRequest{
		Versions: r.GetVersions(),
		Regexp:   r.GetRegexp(),
		Devel:    r.GetDevel(),
		Version:  r.GetVersion(),
		Terms:    seq(r.GetTerms()),
		Env:      EnvFromProto(r.GetEnv()),
	}
}

func RepoSearchResponseToProto(r model.RepoSearchResponse) *helmcallpb.RepoSearchResponse {
	return &helmcallpb.RepoSearchResponse{Err: r.Err, Data: r.Data}
}

func RepoSearchResponseFromProto(r *helmcallpb.RepoSearchResponse) model.RepoSearchResponse {
	return model.RepoSearchResponse{Err: r.GetErr(), Data: r.GetData()}
}

func RegistryLoginRequestToProto(r *model.RegistryLoginRequest) *helmcallpb.RegistryLoginRequest {
	return &helmcallpb.RegistryLoginRequest{
		Hostname:  r.Hostname,
		Username:  r.Username,
		Password:  r.Password,
		CertFile:  r.CertFile,
		KeyFile:   r.KeyFile,
		CaFile:    r.CAFile,
		Insecure:  r.Insecure,
		PlainHttp: r.PlainHTTP,
		Env:       EnvToProto(r.Env),
	}
}

func RegistryLoginRequestFromProto(r *helmcallpb.RegistryLoginRequest) *model.RegistryLoginRequest {
	return &model.RegistryLoginRequest{
		Hostname:  r.GetHostname(),
		Username:  r.GetUsername(),
		Password:  r.GetPassword(),
		CertFile:  r.GetCertFile(),
		KeyFile:   r.GetKeyFile(),
		CAFile:    r.GetCaFile(),
		Insecure:  r.GetInsecure(),
		PlainHTTP: r.GetPlainHttp(),
		Env:       EnvFromProto(r.GetEnv()),
	}
}

func RegistryLoginResponseToProto(r model.RegistryLoginResponse) *helmcallpb.RegistryLoginResponse {
	return &helmcallpb.RegistryLoginResponse{Err: r.Err}
}

func RegistryLoginResponseFromProto(r *helmcallpb.RegistryLoginResponse) model.RegistryLoginResponse {
	return model.RegistryLoginResponse{Err: r.GetErr()}
}
