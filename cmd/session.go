// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"helmbridge/cli/internal/bridge"
	helmerrors "helmbridge/cli/internal/errors"
	"helmbridge/cli/internal/helm"
	"helmbridge/cli/internal/journal"
	"helmbridge/cli/internal/keychain"
)

// EnvBridgeToken overrides the bridge token stored in the keychain.
const EnvBridgeToken = "HELMBRIDGE_TOKEN"

// session is everything a command needs to run operations: the typed
// client, the cluster environment and the optional journal.
type session struct {
	client  *helm.Client
	env     helm.Env
	bridge  bridge.Bridge
	journal *journal.Journal
}

// newSession builds the configured bridge transport and wraps it in a client.
func newSession(ctx context.Context) (*session, error) {
	b, err := bridge.New(ctx, bridge.Options{
		Transport:  cfg.Bridge.Transport,
		HelmBinary: cfg.Bridge.HelmBinary,
		Address:    cfg.Bridge.Address,
		Token:      bridgeToken(),
		Plaintext:  cfg.Bridge.Plaintext,
		CAFile:     cfg.Bridge.CAFile,
		Logger:     logger,
	})
	if err != nil {
		return nil, helmerrors.Wrap(helmerrors.BridgeSetupFailed, "create bridge", err)
	}

	s := &session{
		client: helm.New(b, helm.WithLogger(logger)),
		env:    resolveEnv(),
		bridge: b,
	}

	if cfg.JournalDSN != "" {
		j, err := journal.Open(ctx, cfg.JournalDSN)
		if err != nil {
			logger.Warn("journal disabled", logger.Args("error", err.Error()))
		} else {
			s.journal = j
		}
	}
	return s, nil
}

// Close releases the bridge and journal.
func (s *session) Close() {
	s.journal.Close()
	if err := s.bridge.Close(); err != nil {
		logger.Debug("close bridge", logger.Args("error", err.Error()))
	}
}

// record writes an operation outcome to the journal when one is configured.
func (s *session) record(ctx context.Context, op bridge.Op, target string, start time.Time, err error) {
	if s.journal == nil {
		return
	}
	if jerr := s.journal.Record(ctx, journal.NewEntry(op.String(), target, start, err)); jerr != nil {
		logger.Warn("journal write failed", logger.Args("error", jerr.Error()))
	}
}

// resolveEnv merges config and flags into the cluster environment. The
// token comes from --kube-token, then the keychain.
func resolveEnv() helm.Env {
	env := helm.Env{
		KubeConfig:                optional(cfg.Env.KubeConfig),
		KubeContext:               optional(cfg.Env.KubeContext),
		KubeCAFile:                optional(cfg.Env.KubeCAFile),
		KubeInsecureSkipTLSVerify: cfg.Env.KubeInsecureSkipTLSVerify,
	}
	if flags.kubeToken != "" {
		env.KubeToken = &flags.kubeToken
	} else if km, err := keychain.GetManager(); err == nil {
		if token, err := km.LoadKubeToken(); err == nil {
			env.KubeToken = &token
		} else if !errors.Is(err, keychain.ErrNotFound) {
			logger.Debug("kube token lookup failed", logger.Args("error", err.Error()))
		}
	}
	return env
}

// bridgeToken returns the gRPC bridge token from the environment or keychain.
func bridgeToken() string {
	if t := os.Getenv(EnvBridgeToken); t != "" {
		return t
	}
	if !strings.EqualFold(cfg.Bridge.Transport, bridge.TransportGRPC) {
		return ""
	}
	return storedBridgeToken()
}

// serverToken is the token a bridge server requires of its clients.
func serverToken() string {
	if t := os.Getenv(EnvBridgeToken); t != "" {
		return t
	}
	return storedBridgeToken()
}

func storedBridgeToken() string {
	km, err := keychain.GetManager()
	if err != nil {
		return ""
	}
	t, err := km.LoadBridgeToken()
	if err != nil && !errors.Is(err, keychain.ErrNotFound) {
		logger.Debug("bridge token lookup failed", logger.Args("error", err.Error()))
	}
	return t
}

// optional maps "" to nil.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
