// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/helm"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var uninstallOpts struct {
	req helm.Uninstall
}

var uninstallCmd = &cobra.Command{
	Use:     "uninstall NAME",
	Aliases: []string{"delete", "del"},
	Short:   "Uninstall a release",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := uninstallOpts.req
		req.ReleaseName = args[0]

		var out string
		err := runOperation(cmd, bridge.OpUninstall, req.ReleaseName, func(ctx context.Context, s *session) error {
			req.Env = s.env
			var callErr error
			out, callErr = s.client.Uninstall(ctx, req)
			return callErr
		})
		if err != nil {
			return err
		}
		if out == "" {
			out = "release \"" + req.ReleaseName + "\" uninstalled"
		}
		pterm.Success.Println(out)
		return nil
	},
}

func init() {
	f := uninstallCmd.Flags()
	f.StringVarP(&uninstallOpts.req.Namespace, "namespace", "n", "", "namespace of the release")
	f.BoolVar(&uninstallOpts.req.DisableHooks, "no-hooks", false, "skip running hooks")
	f.BoolVar(&uninstallOpts.req.DryRun, "dry-run", false, "simulate the uninstall")
	f.BoolVar(&uninstallOpts.req.IgnoreNotFound, "ignore-not-found", false, "treat a missing release as success")
	f.BoolVar(&uninstallOpts.req.KeepHistory, "keep-history", false, "keep release history after removal")
	f.BoolVar(&uninstallOpts.req.Wait, "wait", false, "wait until all resources are deleted")
	f.StringVar(&uninstallOpts.req.DeletionPropagation, "cascade", "", "deletion propagation: background, foreground or orphan")
	f.DurationVar(&uninstallOpts.req.Timeout, "timeout", 0, "time to wait for Kubernetes operations (default 5m0s)")
	f.StringVar(&uninstallOpts.req.Description, "description", "", "custom description for the uninstall")

	rootCmd.AddCommand(uninstallCmd)
}
