// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package helm

import (
	"time"

	"helmbridge/cli/internal/bridge/model"
)

// DefaultTimeout is sent when a request leaves its timeout unset.
const DefaultTimeout = 300 * time.Second

// timeoutSeconds renders a timeout for the wire. Zero or negative means
// unset; partial seconds round up.
func timeoutSeconds(t time.Duration) []int64 {
	if t <= 0 {
		t = DefaultTimeout
	}
	secs := int64(t / time.Second)
	if t%time.Second != 0 {
		secs++
	}
	return []int64{secs}
}

// Install installs Chart as release ReleaseName.
type Install struct {
	ReleaseName     string
	Chart           string
	Version         string
	Namespace       string
	Wait            bool
	Timeout         time.Duration
	CreateNamespace bool
	// Values is a JSON object of chart values.
	Values []byte
	Env    Env
	// DryRun selects a dry-run mode ("client", "server"); nil runs for real.
	DryRun *string
}

// Request translates r into its wire form.
func (r Install) Request() model.InstallRequest {
	return model.InstallRequest{
		ReleaseName:     r.ReleaseName,
		Chart:           r.Chart,
		Version:         r.Version,
		Namespace:       r.Namespace,
		Wait:            r.Wait,
		Timeout:         timeoutSeconds(r.Timeout),
		CreateNamespace: r.CreateNamespace,
		Values:          r.Values,
		Env:             r.Env.Bridge(),
		DryRun:          model.Flatten(r.DryRun),
	}
}

// Upgrade upgrades release ReleaseName to Chart.
type Upgrade struct {
	ReleaseName string
	Chart       string
	Version     string
	Namespace   string
	Wait        bool
	Timeout     time.Duration
	DryRun      *string
	ReuseValues bool
	ResetValues bool
	Values      []byte
	Env         Env
}

func (r Upgrade) Request() model.UpgradeRequest {
	return model.UpgradeRequest{
		ReleaseName: r.ReleaseName,
		Chart:       r.Chart,
		Version:     r.Version,
		Namespace:   r.Namespace,
		Wait:        r.Wait,
		Timeout:     timeoutSeconds(r.Timeout),
		DryRun:      model.Flatten(r.DryRun),
		ReuseValues: r.ReuseValues,
		ResetValues: r.ResetValues,
		Values:      r.Values,
		Env:         r.Env.Bridge(),
	}
}

// Uninstall removes release ReleaseName.
type Uninstall struct {
	ReleaseName    string
	Namespace      string
	DisableHooks   bool
	DryRun         bool
	IgnoreNotFound bool
	KeepHistory    bool
	Wait           bool
	// DeletionPropagation is "background", "foreground" or "orphan".
	DeletionPropagation string
	Timeout             time.Duration
	Description         string
	Env                 Env
}

func (r Uninstall) Request() model.UninstallRequest {
	return model.UninstallRequest{
		ReleaseName:         r.ReleaseName,
		Namespace:           r.Namespace,
		DisableHooks:        r.DisableHooks,
		DryRun:              r.DryRun,
		IgnoreNotFound:      r.IgnoreNotFound,
		KeepHistory:         r.KeepHistory,
		Wait:                r.Wait,
		DeletionPropagation: r.DeletionPropagation,
		Timeout:             timeoutSeconds(r.Timeout),
		Description:         r.Description,
		Env:                 r.Env.Bridge(),
	}
}

// Sort orders List results.
type Sort uint64

const (
	ByNameAsc Sort = iota
	ByNameDesc
	ByDateAsc
	ByDateDesc
)

// State is a set of release states for List.StateMask.
type State uint64

const (
	StateDeployed State = 1 << iota
	StateUninstalled
	StateUninstalling
	StatePendingInstall
	StatePendingUpgrade
	StatePendingRollback
	StateSuperseded
	StateFailed
	StateUnknown

	StateAll = StateUnknown<<1 - 1
)

// List lists releases.
type List struct {
	Namespace     string
	Env           Env
	All           bool
	AllNamespaces bool
	Sort          Sort
	ByDate        bool
	SortReverse   bool
	StateMask     State
	Limit         int64
	Offset        int64
	Filter        string
	NoHeaders     bool
	TimeFormat    string
	Uninstalled   bool
	Superseded    bool
	Uninstalling  bool
	Deployed      bool
	Failed        bool
	Pending       bool
	Selector      string
}

func (r List) Request() model.ListRequest {
	return model.ListRequest{
		Namespace:     r.Namespace,
		Env:           r.Env.Bridge(),
		All:           r.All,
		AllNamespaces: r.AllNamespaces,
		Sort:          uint64(r.Sort),
		ByDate:        r.ByDate,
		SortReverse:   r.SortReverse,
		StateMask:     uint64(r.StateMask),
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

// RepoAdd registers a chart repository.
type RepoAdd struct {
	Name                  string
	URL                   string
	Username              string
	Password              string
	PasswordFromStdin     bool
	PassCredentialsAll    bool
	ForceUpdate           bool
	AllowDeprecatedRepos  bool
	CertFile              string
	KeyFile               string
	CAFile                string
	InsecureSkipTLSVerify bool
	Env                   Env
}

func (r RepoAdd) Request() model.RepoAddRequest {
	return model.RepoAddRequest{
		Name:                  r.Name,
		URL:                   r.URL,
		Username:              r.Username,
		Password:              r.Password,
		PasswordFromStdin:     r.PasswordFromStdin,
		PassCredentialsAll:    r.PassCredentialsAll,
		ForceUpdate:           r.ForceUpdate,
		AllowDeprecatedRepos:  r.AllowDeprecatedRepos,
		CertFile:              r.CertFile,
		KeyFile:               r.KeyFile,
		CAFile:                r.CAFile,
		InsecureSkipTLSVerify: r.InsecureSkipTLSVerify,
		Env:                   r.Env.Bridge(),
	}
}

// RepoSearch searches the configured repositories. No terms lists every chart.
type RepoSearch struct {
	Versions bool
	Regexp   string
	Devel    bool
	// Version is a semver constraint.
	Version string
	Terms   []string
	Env     Env
}

func (r RepoSearch) Request() model.RepoSearchRequest {
	terms := r.Terms
	if terms == nil {
		terms = []string{}
	}
	return model.RepoSearchRequest{
		Versions: r.Versions,
		Regexp:   r.Regexp,
		Devel:    r.Devel,
		Version:  r.Version,
		Terms:    terms,
		Env:      r.Env.Bridge(),
	}
}

// RegistryLogin logs in to an OCI registry.
type RegistryLogin struct {
	Hostname  string
	Username  string
	Password  string
	CertFile  string
	KeyFile   string
	CAFile    string
	Insecure  bool
	PlainHTTP bool
	Env       Env
}

func (r RegistryLogin) Request() model.RegistryLoginRequest {
	return model.RegistryLoginRequest{
		Hostname:  r.Hostname,
		Username:  r.Username,
		Password:  r.Password,
		CertFile:  r.CertFile,
		KeyFile:   r.KeyFile,
		CAFile:    r.CAFile,
		Insecure:  r.Insecure,
		PlainHTTP: r.PlainHTTP,
		Env:       r.Env.Bridge(),
	}
}
