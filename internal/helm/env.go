// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package helm is the typed face of the bridge. Application code builds the
// ergonomic request types defined here, and the Client translates each one
// into its wire form, sends it across the bridge exactly once, and turns the
// wire response back into a result or an *errors.E.
//
// Nothing in this package knows how helm works or how a call crosses the
// boundary. Requests are not validated and failures are not retried.
package helm

import (
	"fmt"

	"helmbridge/cli/internal/bridge/model"
)

// Env describes the cluster a request runs against. A nil field is absent
// and leaves the remote side's default in place.
type Env struct {
	// KubeConfig is the path to the kubeconfig file.
	KubeConfig *string
	// KubeContext is the kubeconfig context to use.
	KubeContext *string
	// KubeToken is a bearer token for the API server.
	KubeToken *string
	// KubeCAFile is a certificate authority file for the API server.
	KubeCAFile *string
	// KubeInsecureSkipTLSVerify disables server certificate validation.
	KubeInsecureSkipTLSVerify bool
}

// Bridge flattens the environment into its wire form.
func (e Env) Bridge() model.HelmEnv {
	return model.HelmEnv{
		KubeConfig:                model.Flatten(e.KubeConfig),
		KubeContext:               model.Flatten(e.KubeContext),
		KubeToken:                 model.Flatten(e.KubeToken),
		KubeCAFile:                model.Flatten(e.KubeCAFile),
		KubeInsecureSkipTLSVerify: e.KubeInsecureSkipTLSVerify,
	}
}

// EnvFromBridge reverses Env.Bridge. It fails when any field holds more than
// one element.
func EnvFromBridge(w model.HelmEnv) (Env, error) {
	var (
		e   = Env{KubeInsecureSkipTLSVerify: w.KubeInsecureSkipTLSVerify}
		err error
	)
	fields := []struct {
		name string
		src  []string
		dst  **string
	}{
		{"kube_config", w.KubeConfig, &e.KubeConfig},
		{"kube_context", w.KubeContext, &e.KubeContext},
		{"kube_token", w.KubeToken, &e.KubeToken},
		{"kube_ca_file", w.KubeCAFile, &e.KubeCAFile},
	}
	for _, f := range fields {
		if *f.dst, err = model.Unflatten(f.src); err != nil {
			return Env{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return e, nil
}
