// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package helmexec

import (
	"fmt"
	"strconv"

	"helmbridge/cli/internal/bridge/model"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Release state bits carried in ListRequest.StateMask.
const (
	StateDeployed       uint64 = 1 << iota // 1
	StateUninstalled                       // 2
	StateUninstalling                      // 4
	StatePendingInstall                    // 8
	StatePendingUpgrade                    // 16
	StatePendingRollback                   // 32
	StateSuperseded                        // 64
	StateFailed                            // 128
	StateUnknown                           // 256

	StateAll = StateUnknown<<1 - 1
)

// List sort modes carried in ListRequest.Sort.
const (
	SortByNameAsc uint64 = iota
	SortByNameDesc
	SortByDateAsc
	SortByDateDesc
)

// envVarKubeToken is read by helm instead of --kube-token.
const envVarKubeToken = "HELM_KUBETOKEN"

// args accumulates a helm command line.
type args []string

func (a *args) add(v ...string) { *a = append(*a, v...) }

// str adds "flag value" when value is non-empty.
func (a *args) str(flag, value string) {
	if value != "" {
		*a = append(*a, flag, value)
	}
}

// flag adds a boolean flag when set.
func (a *args) flag(flag string, set bool) {
	if set {
		*a = append(*a, flag)
	}
}

func (a *args) timeout(t []int64) {
	if secs := model.First(t); secs > 0 {
		*a = append(*a, "--timeout", strconv.FormatInt(secs, 10)+"s")
	}
}

// kube adds the cluster connection flags. An empty element counts as absent,
// so helm keeps its own default for it. The token goes to the environment.
func (a *args) kube(env model.HelmEnv) []string {
	a.str("--kubeconfig", model.First(env.KubeConfig))
	a.str("--kube-context", model.First(env.KubeContext))
	a.str("--kube-ca-file", model.First(env.KubeCAFile))
	a.flag("--kube-insecure-skip-tls-verify", env.KubeInsecureSkipTLSVerify)
	if token := model.First(env.KubeToken); token != "" {
		return []string{envVarKubeToken + "=" + token}
	}
	return nil
}

// valuesPayload checks that values is a JSON object. It returns nil when
// there are no values to send.
func valuesPayload(values []byte) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}
	var s structpb.Struct
	if err := protojson.Unmarshal(values, &s); err != nil {
		return nil, fmt.Errorf("values must be a JSON object: %w", err)
	}
	return values, nil
}

func installInvocation(req *model.InstallRequest) (Invocation, error) {
	values, err := valuesPayload(req.Values)
	if err != nil {
		return Invocation{}, err
	}

	a := args{"install", req.ReleaseName, req.Chart}
	a.str("--version", req.Version)
	a.str("--namespace", req.Namespace)
	a.flag("--wait", req.Wait)
	a.timeout(req.Timeout)
	a.flag("--create-namespace", req.CreateNamespace)
	if mode := model.First(req.DryRun); mode != "" {
		a.add("--dry-run=" + mode)
	}
	if values != nil {
		a.add("--values", "-")
	}
	env := a.kube(req.Env)
	a.add("--output", "json")
	return Invocation{Args: a, Stdin: values, Env: env}, nil
}

func upgradeInvocation(req *model.UpgradeRequest) (Invocation, error) {
	values, err := valuesPayload(req.Values)
	if err != nil {
		return Invocation{}, err
	}

	a := args{"upgrade", req.ReleaseName, req.Chart}
	a.str("--version", req.Version)
	a.str("--namespace", req.Namespace)
	a.flag("--wait", req.Wait)
	a.timeout(req.Timeout)
	if mode := model.First(req.DryRun); mode != "" {
		a.add("--dry-run=" + mode)
	}
	a.flag("--reuse-values", req.ReuseValues)
	a.flag("--reset-values", req.ResetValues)
	if values != nil {
		a.add("--values", "-")
	}
	env := a.kube(req.Env)
	a.add("--output", "json")
	return Invocation{Args: a, Stdin: values, Env: env}, nil
}

func uninstallInvocation(req *model.UninstallRequest) Invocation {
	a := args{"uninstall", req.ReleaseName}
	a.str("--namespace", req.Namespace)
	a.flag("--no-hooks", req.DisableHooks)
	a.flag("--dry-run", req.DryRun)
	a.flag("--ignore-not-found", req.IgnoreNotFound)
	a.flag("--keep-history", req.KeepHistory)
	a.flag("--wait", req.Wait)
	a.str("--cascade", req.DeletionPropagation)
	a.timeout(req.Timeout)
	a.str("--description", req.Description)
	env := a.kube(req.Env)
	return Invocation{Args: a, Env: env}
}

func listInvocation(req *model.ListRequest) Invocation {
	a := args{"list"}
	a.str("--namespace", req.Namespace)
	a.flag("--all-namespaces", req.AllNamespaces)

	byDate := req.ByDate || req.Sort == SortByDateAsc || req.Sort == SortByDateDesc
	reverse := req.SortReverse || req.Sort == SortByNameDesc || req.Sort == SortByDateDesc
	a.flag("--date", byDate)
	a.flag("--reverse", reverse)

	mask := req.StateMask
	a.flag("--all", req.All || mask&StateAll == StateAll)
	a.flag("--deployed", req.Deployed || mask&StateDeployed != 0)
	a.flag("--uninstalled", req.Uninstalled || mask&StateUninstalled != 0)
	a.flag("--uninstalling", req.Uninstalling || mask&StateUninstalling != 0)
	a.flag("--pending", req.Pending || mask&(StatePendingInstall|StatePendingUpgrade|StatePendingRollback) != 0)
	a.flag("--superseded", req.Superseded || mask&StateSuperseded != 0)
	a.flag("--failed", req.Failed || mask&StateFailed != 0)

	if req.Limit > 0 {
		a.add("--max", strconv.FormatInt(req.Limit, 10))
	}
	if req.Offset > 0 {
		a.add("--offset", strconv.FormatInt(req.Offset, 10))
	}
	a.str("--filter", req.Filter)
	a.str("--selector", req.Selector)
	a.flag("--no-headers", req.NoHeaders)
	a.str("--time-format", req.TimeFormat)
	env := a.kube(req.Env)
	a.add("--output", "json")
	return Invocation{Args: a, Env: env}
}

func repoAddInvocation(req *model.RepoAddRequest) Invocation {
	a := args{"repo", "add", req.Name, req.URL}
	a.str("--username", req.Username)
	var stdin []byte
	if req.Password != "" || req.PasswordFromStdin {
		a.add("--password-stdin")
		stdin = []byte(req.Password)
	}
	a.flag("--pass-credentials", req.PassCredentialsAll)
	a.flag("--force-update", req.ForceUpdate)
	a.flag("--allow-deprecated-repos", req.AllowDeprecatedRepos)
	a.str("--cert-file", req.CertFile)
	a.str("--key-file", req.KeyFile)
	a.str("--ca-file", req.CAFile)
	a.flag("--insecure-skip-tls-verify", req.InsecureSkipTLSVerify)
	env := a.kube(req.Env)
	return Invocation{Args: a, Stdin: stdin, Env: env}
}

// repoSearchInvocation searches with Regexp as the keyword when set,
// otherwise with the terms; no keyword lists every chart.
func repoSearchInvocation(req *model.RepoSearchRequest) Invocation {
	a := args{"search", "repo"}
	if len(req.Terms) > 0 && req.Regexp != "" {
		a.add(req.Regexp, "--regexp")
	} else {
		a.add(req.Terms...)
	}
	a.flag("--versions", req.Versions)
	a.flag("--devel", req.Devel)
	a.str("--version", req.Version)
	env := a.kube(req.Env)
	a.add("--output", "json")
	return Invocation{Args: a, Env: env}
}

func registryLoginInvocation(req *model.RegistryLoginRequest) Invocation {
	a := args{"registry", "login", req.Hostname}
	a.str("--username", req.Username)
	a.add("--password-stdin")
	a.str("--cert-file", req.CertFile)
	a.str("--key-file", req.KeyFile)
	a.str("--ca-file", req.CAFile)
	a.flag("--insecure", req.Insecure)
	a.flag("--plain-http", req.PlainHTTP)
	env := a.kube(req.Env)
	return Invocation{Args: a, Stdin: []byte(req.Password), Env: env}
}
