// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"time"

	"helmbridge/cli/internal/bridge"
	helmerrors "helmbridge/cli/internal/errors"
	"helmbridge/cli/internal/values"

	"github.com/spf13/cobra"
)

// runOperation opens a session, runs fn under a spinner and journals the outcome.
func runOperation(cmd *cobra.Command, op bridge.Op, target string, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	s, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	start := time.Now()
	withSpinner(fmt.Sprintf("Running %s %s", op, target), func() {
		err = fn(ctx, s)
	})
	logger.Debug("operation finished", logger.Args("op", op.String(), "target", target, "duration", time.Since(start).String(), "failed", err != nil))
	s.record(ctx, op, target, start, err)
	return err
}

// valuesFlags are the chart value inputs shared by install and upgrade.
type valuesFlags struct {
	files []string
	sets  []string
}

func (v *valuesFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&v.files, "values", "f", nil, "values file (YAML or JSON); may be repeated")
	cmd.Flags().StringArrayVar(&v.sets, "set", nil, "set values on the command line (key.path=value); may be repeated")
}

func (v *valuesFlags) load() ([]byte, error) {
	b, err := values.Load(v.files, v.sets)
	if err != nil {
		return nil, helmerrors.Wrap(helmerrors.ValuesInvalid, "assemble values", err)
	}
	return b, nil
}

// outputFlag selects how results are printed.
type outputFlag struct {
	format string
}

func (o *outputFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "output", "o", "table", "output format: table or json")
}

func (o *outputFlag) json() bool { return o.format == "json" }

// dryRunMode returns the --dry-run value when the flag was given.
func dryRunMode(cmd *cobra.Command, mode string) *string {
	if !cmd.Flags().Changed("dry-run") {
		return nil
	}
	return &mode
}
