// Package errors defines typed errors with categories for user-friendly reporting.
// Every bridge operation fails with exactly one Kind, so callers can branch on
// the operation that failed without parsing messages, while the message itself
// stays the verbatim text reported by the remote side.
//
// The package supports wrapping underlying errors while maintaining error kind
// information, for the CLI-level failures that happen outside the bridge.
package errors

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InstallFailed indicates the remote install reported an error.
	InstallFailed Kind = "install_failed"
	// UpgradeFailed indicates the remote upgrade reported an error.
	UpgradeFailed Kind = "upgrade_failed"
	// UninstallFailed indicates the remote uninstall reported an error.
	UninstallFailed Kind = "uninstall_failed"
	// ListFailed indicates the remote list reported an error.
	ListFailed Kind = "list_failed"
	// RepoAddFailed indicates the remote repo add reported an error.
	RepoAddFailed Kind = "repo_add_failed"
	// RepoSearchFailed indicates the remote repo search reported an error.
	RepoSearchFailed Kind = "repo_search_failed"
	// RegistryLoginFailed indicates the remote registry login reported an error.
	RegistryLoginFailed Kind = "registry_login_failed"

	// BridgeSetupFailed indicates the CLI could not build a bridge transport.
	BridgeSetupFailed Kind = "bridge_setup_failed"
	// ValuesInvalid indicates values files or overrides could not be assembled.
	ValuesInvalid Kind = "values_invalid"
)

var labels = map[Kind]string{
	InstallFailed:       "install error",
	UpgradeFailed:       "upgrade error",
	UninstallFailed:     "uninstall error",
	ListFailed:          "list error",
	RepoAddFailed:       "repo add error",
	RepoSearchFailed:    "repo search error",
	RegistryLoginFailed: "registry login error",
	BridgeSetupFailed:   "bridge setup error",
	ValuesInvalid:       "values error",
}

// String returns the human label of the kind.
func (k Kind) String() string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

// E wraps an error with kind and human-friendly message.
//
// Response holds the secondary payload of a failed data-bearing operation
// and is nil when the remote side sent none.
type E struct {
	Kind     Kind
	Message  string
	Response *string
	Err      error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf reports the kind of the first *E in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *E
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
