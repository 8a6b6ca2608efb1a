// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/helm"

	"github.com/spf13/cobra"
)

var installOpts struct {
	req    helm.Install
	dryRun string
	values valuesFlags
	output outputFlag
}

var installCmd = &cobra.Command{
	Use:   "install NAME CHART",
	Short: "Install a chart as a new release",
	Long: `Install a chart as a new release. CHART is a chart reference such as
repo/name, a path, a URL or an oci:// reference. Values are read from --values
files and --set overrides and sent as one JSON object.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := installOpts.req
		req.ReleaseName, req.Chart = args[0], args[1]
		req.DryRun = dryRunMode(cmd, installOpts.dryRun)

		vals, err := installOpts.values.load()
		if err != nil {
			return err
		}
		req.Values = vals

		var out string
		err = runOperation(cmd, bridge.OpInstall, req.ReleaseName, func(ctx context.Context, s *session) error {
			req.Env = s.env
			var callErr error
			out, callErr = s.client.Install(ctx, req)
			return callErr
		})
		if err != nil {
			return err
		}
		return renderRelease(out, installOpts.output.json())
	},
}

func init() {
	f := installCmd.Flags()
	f.StringVar(&installOpts.req.Version, "version", "", "chart version constraint (default latest)")
	f.StringVarP(&installOpts.req.Namespace, "namespace", "n", "", "namespace for the release")
	f.BoolVar(&installOpts.req.Wait, "wait", false, "wait until resources are ready")
	f.DurationVar(&installOpts.req.Timeout, "timeout", 0, "time to wait for Kubernetes operations (default 5m0s)")
	f.BoolVar(&installOpts.req.CreateNamespace, "create-namespace", false, "create the release namespace if missing")
	f.StringVar(&installOpts.dryRun, "dry-run", "client", "simulate the install: client or server")
	f.Lookup("dry-run").NoOptDefVal = "client"
	installOpts.values.register(installCmd)
	installOpts.output.register(installCmd)

	rootCmd.AddCommand(installCmd)
}
