// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/helm"

	"github.com/spf13/cobra"
)

var listOpts struct {
	req    helm.List
	output outputFlag
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List releases",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := listOpts.req
		target := req.Namespace
		if req.AllNamespaces {
			target = "*"
		}

		var out string
		err := runOperation(cmd, bridge.OpList, target, func(ctx context.Context, s *session) error {
			req.Env = s.env
			var callErr error
			out, callErr = s.client.List(ctx, req)
			return callErr
		})
		if err != nil {
			return err
		}
		return renderReleaseList(out, listOpts.output.json(), req.NoHeaders)
	},
}

func init() {
	f := listCmd.Flags()
	r := &listOpts.req
	f.StringVarP(&r.Namespace, "namespace", "n", "", "namespace to list")
	f.BoolVarP(&r.AllNamespaces, "all-namespaces", "A", false, "list releases across all namespaces")
	f.BoolVarP(&r.All, "all", "a", false, "show all releases without any state filter")
	f.BoolVarP(&r.ByDate, "date", "d", false, "sort by release date")
	f.BoolVarP(&r.SortReverse, "reverse", "r", false, "reverse the sort order")
	f.Int64VarP(&r.Limit, "max", "m", 256, "maximum number of releases to fetch")
	f.Int64Var(&r.Offset, "offset", 0, "number of releases to skip")
	f.StringVarP(&r.Filter, "filter", "f", "", "regular expression matched against release names")
	f.StringVarP(&r.Selector, "selector", "l", "", "label selector to filter on")
	f.BoolVar(&r.NoHeaders, "no-headers", false, "omit the table header")
	f.StringVar(&r.TimeFormat, "time-format", "", "Go time layout for the updated column")
	f.BoolVar(&r.Deployed, "deployed", false, "show deployed releases")
	f.BoolVar(&r.Failed, "failed", false, "show failed releases")
	f.BoolVar(&r.Pending, "pending", false, "show pending releases")
	f.BoolVar(&r.Superseded, "superseded", false, "show superseded releases")
	f.BoolVar(&r.Uninstalled, "uninstalled", false, "show uninstalled releases kept with --keep-history")
	f.BoolVar(&r.Uninstalling, "uninstalling", false, "show releases being uninstalled")
	listOpts.output.register(listCmd)

	rootCmd.AddCommand(listCmd)
}
