// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines the wire shapes exchanged across the bridge boundary.
// Every type here is built from primitives, byte buffers and slices only: an
// optional scalar is carried as a slice holding zero or one element, because
// the boundary has no native optional type.
//
// The types in this package are transport-agnostic and provide a stable
// contract for the gRPC and subprocess bridge implementations alike.
package model

// HelmEnv is the flattened execution environment sent with every request.
type HelmEnv struct {
	// KubeConfig is the path to the kubeconfig file.
	KubeConfig []string `json:"kube_config"`
	// KubeContext is the name of the kubeconfig context.
	KubeContext []string `json:"kube_context"`
	// KubeToken is the bearer token used for authentication.
	KubeToken []string `json:"kube_token"`
	// KubeCAFile is a custom certificate authority file.
	KubeCAFile []string `json:"kube_ca_file"`
	// KubeInsecureSkipTLSVerify disables server certificate validation.
	KubeInsecureSkipTLSVerify bool `json:"kube_insecure_skip_tls_verify"`
}

// InstallRequest installs a chart as a new release.
type InstallRequest struct {
	ReleaseName     string   `json:"release_name"`
	Chart           string   `json:"chart"`
	Version         string   `json:"version"`
	Namespace       string   `json:"ns"`
	Wait            bool     `json:"wait"`
	Timeout         []int64  `json:"timeout"` // seconds
	CreateNamespace bool     `json:"create_namespace"`
	Values          []byte   `json:"values"`
	Env             HelmEnv  `json:"env"`
	DryRun          []string `json:"dry_run"`
}

// InstallResponse carries the rendered release on success.
type InstallResponse struct {
	Err  []string `json:"err"`
	Data string   `json:"data"`
}

// UpgradeRequest upgrades an existing release to a chart version.
type UpgradeRequest struct {
	ReleaseName string   `json:"release_name"`
	Chart       string   `json:"chart"`
	Version     string   `json:"version"`
	Namespace   string   `json:"ns"`
	Wait        bool     `json:"wait"`
	Timeout     []int64  `json:"timeout"` // seconds
	DryRun      []string `json:"dry_run"`
	ReuseValues bool     `json:"reuse_values"`
	ResetValues bool     `json:"reset_values"`
	Values      []byte   `json:"values"`
	Env         HelmEnv  `json:"env"`
}

// UpgradeResponse carries the upgraded release on success.
type UpgradeResponse struct {
	Err  []string `json:"err"`
	Data string   `json:"data"`
}

// UninstallRequest removes a release.
type UninstallRequest struct {
	ReleaseName         string  `json:"release_name"`
	Namespace           string  `json:"ns"`
	DisableHooks        bool    `json:"disable_hooks"`
	DryRun              bool    `json:"dry_run"`
	IgnoreNotFound      bool    `json:"ignore_not_found"`
	KeepHistory         bool    `json:"keep_history"`
	Wait                bool    `json:"wait"`
	DeletionPropagation string  `json:"deletion_propagation"`
	Timeout             []int64 `json:"timeout"` // seconds
	Description         string  `json:"description"`
	Env                 HelmEnv `json:"env"`
}

// UninstallResponse carries the uninstall report on success.
type UninstallResponse struct {
	Err  []string `json:"err"`
	Data string   `json:"data"`
}

// ListRequest lists releases.
type ListRequest struct {
	Namespace string  `json:"ns"`
	Env       HelmEnv `json:"env"`
	// All ignores the limit/offset.
	All           bool `json:"all"`
	AllNamespaces bool `json:"all_namespaces"`
	// Sort selects the sorter; 0 means lexicographic ascending.
	Sort        uint64 `json:"sort"`
	ByDate      bool   `json:"by_date"`
	SortReverse bool   `json:"sort_reverse"`
	// StateMask is a bitmask of release states to show.
	StateMask    uint64 `json:"state_mask"`
	Limit        int64  `json:"limit"`
	Offset       int64  `json:"offset"`
	Filter       string `json:"filter"`
	NoHeaders    bool   `json:"no_headers"`
	TimeFormat   string `json:"time_format"`
	Uninstalled  bool   `json:"uninstalled"`
	Superseded   bool   `json:"superseded"`
	Uninstalling bool   `json:"uninstalling"`
	Deployed     bool   `json:"deployed"`
	Failed       bool   `json:"failed"`
	Pending      bool   `json:"pending"`
	Selector     string `json:"selector"`
}

// ListResponse carries the release list on success.
type ListResponse struct {
	Err  []string `json:"err"`
	Data string   `json:"data"`
}

// RepoAddRequest registers a chart repository.
type RepoAddRequest struct {
	Name                  string  `json:"name"`
	URL                   string  `json:"url"`
	Username              string  `json:"username"`
	Password              string  `json:"password"`
	PasswordFromStdin     bool    `json:"password_from_stdin"`
	PassCredentialsAll    bool    `json:"pass_credentials_all"`
	ForceUpdate           bool    `json:"force_update"`
	AllowDeprecatedRepos  bool    `json:"allow_deprecated_repos"`
	CertFile              string  `json:"cert_file"`
	KeyFile               string  `json:"key_file"`
	CAFile                string  `json:"ca_file"`
	InsecureSkipTLSVerify bool    `json:"insecure_skip_tls_verify"`
	Env                   HelmEnv `json:"env"`
}

// RepoAddResponse has no payload.
type RepoAddResponse struct {
	Err []string `json:"err"`
}

// RepoSearchRequest searches the configured repositories.
type RepoSearchRequest struct {
	Versions bool     `json:"versions"`
	Regexp   string   `json:"regexp"`
	Devel    bool     `json:"devel"`
	Version  string   `json:"version"`
	Terms    []string `json:"terms"`
	Env      HelmEnv  `json:"env"`
}

// RepoSearchResponse carries the search results on success.
type RepoSearchResponse struct {
	Err  []string `json:"err"`
	Data string   `json:"data"`
}

// RegistryLoginRequest logs in to an OCI registry.
type RegistryLoginRequest struct {
	Hostname  string  `json:"hostname"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	CertFile  string  `json:"cert_file"`
	KeyFile   string  `json:"key_file"`
	CAFile    string  `json:"ca_file"`
	Insecure  bool    `json:"insecure"`
	PlainHTTP bool    `json:"plain_http"`
	Env       HelmEnv `json:"env"`
}

// RegistryLoginResponse has no payload.
type RegistryLoginResponse struct {
	Err []string `json:"err"`
}
