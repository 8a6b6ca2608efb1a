// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/helm"

	"github.com/spf13/cobra"
)

var upgradeOpts struct {
	req    helm.Upgrade
	dryRun string
	values valuesFlags
	output outputFlag
}

var upgradeCmd = &cobra.Command{
	Use:   "upgrade NAME CHART",
	Short: "Upgrade a release to a new chart version or values",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := upgradeOpts.req
		req.ReleaseName, req.Chart = args[0], args[1]
		req.DryRun = dryRunMode(cmd, upgradeOpts.dryRun)

		vals, err := upgradeOpts.values.load()
		if err != nil {
			return err
		}
		req.Values = vals

		var out string
		err = runOperation(cmd, bridge.OpUpgrade, req.ReleaseName, func(ctx context.Context, s *session) error {
			req.Env = s.env
			var callErr error
			out, callErr = s.client.Upgrade(ctx, req)
			return callErr
		})
		if err != nil {
			return err
		}
		return renderRelease(out, upgradeOpts.output.json())
	},
}

func init() {
	f := upgradeCmd.Flags()
	f.StringVar(&upgradeOpts.req.Version, "version", "", "chart version constraint (default latest)")
	f.StringVarP(&upgradeOpts.req.Namespace, "namespace", "n", "", "namespace of the release")
	f.BoolVar(&upgradeOpts.req.Wait, "wait", false, "wait until resources are ready")
	f.DurationVar(&upgradeOpts.req.Timeout, "timeout", 0, "time to wait for Kubernetes operations (default 5m0s)")
	f.StringVar(&upgradeOpts.dryRun, "dry-run", "client", "simulate the upgrade: client or server")
	f.Lookup("dry-run").NoOptDefVal = "client"
	f.BoolVar(&upgradeOpts.req.ReuseValues, "reuse-values", false, "reuse the last release's values and merge overrides")
	f.BoolVar(&upgradeOpts.req.ResetValues, "reset-values", false, "reset values to the chart defaults")
	upgradeOpts.values.register(upgradeCmd)
	upgradeOpts.output.register(upgradeCmd)

	rootCmd.AddCommand(upgradeCmd)
}
