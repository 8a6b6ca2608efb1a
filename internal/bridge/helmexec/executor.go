// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package helmexec implements the bridge by running the helm CLI in a
// subprocess. Each call builds one helm command line from the wire request,
// runs it, and packs the outcome into the wire response: stdout becomes the
// payload, and a failed run becomes the error list.
//
// Secrets never appear on the command line. Passwords are written to the
// child's stdin, and cluster tokens are passed through its environment.
package helmexec

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"helmbridge/cli/internal/logging"

	"github.com/pterm/pterm"
)

// DefaultBinary is the helm executable looked up on PATH.
const DefaultBinary = "helm"

// Invocation is one helm command run.
type Invocation struct {
	Args  []string
	Stdin []byte
	// Env holds extra KEY=VALUE pairs added to the inherited environment.
	Env []string
}

// Runner runs a helm invocation and returns what it printed.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (stdout, stderr []byte, err error)
}

// commandRunner runs the real helm binary.
type commandRunner struct {
	binary string
}

func (r commandRunner) Run(ctx context.Context, inv Invocation) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, inv.Args...)
	if inv.Stdin != nil {
		cmd.Stdin = bytes.NewReader(inv.Stdin)
	}
	if len(inv.Env) > 0 {
		cmd.Env = append(os.Environ(), inv.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Option configures an Executor.
type Option func(*Executor)

// WithRunner replaces the subprocess runner, e.g. with a fake in tests.
func WithRunner(r Runner) Option {
	return func(e *Executor) { e.runner = r }
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(l *pterm.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// Executor implements bridge.Bridge on top of the helm CLI.
type Executor struct {
	runner Runner
	logger *pterm.Logger
}

// New returns an executor running binary, or DefaultBinary when empty.
func New(binary string, opts ...Option) *Executor {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	e := &Executor{runner: commandRunner{binary: binary}, logger: logging.Discard()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close is a no-op; every call owns its subprocess.
func (e *Executor) Close() error { return nil }

// run executes inv and returns the error list and stdout. The error list is
// empty only when helm exited successfully.
func (e *Executor) run(ctx context.Context, op string, inv Invocation) ([]string, string) {
	start := time.Now()
	e.logger.Debug("running helm", e.logger.Args("op", op, "args", logging.Mask(strings.Join(inv.Args, " "))))

	stdout, stderr, err := e.runner.Run(ctx, inv)

	e.logger.Debug("helm finished", e.logger.Args(
		"op", op,
		"duration", time.Since(start).String(),
		"failed", err != nil,
	))

	if err == nil {
		return nil, string(stdout)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return []string{ctxErr.Error()}, string(stdout)
	}
	return failureMessages(stderr, err), string(stdout)
}

// failureMessages turns helm's stderr into an error list. Lines starting
// with "Error: " come first, without the prefix; other lines (warnings)
// follow. An empty stderr yields the process error.
func failureMessages(stderr []byte, err error) []string {
	text := strings.TrimSpace(string(stderr))
	if text == "" {
		return []string{err.Error()}
	}

	var errs, rest []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if msg, ok := strings.CutPrefix(line, "Error: "); ok {
			errs = append(errs, msg)
		} else {
			rest = append(rest, line)
		}
	}
	if len(errs) == 0 {
		return []string{text}
	}
	return append(errs, rest...)
}

// emptyList maps helm's JSON rendering of an empty result to no payload.
func emptyList(out string) string {
	if t := strings.TrimSpace(out); t == "[]" || t == "" || t == "null" {
		return ""
	}
	return out
}
