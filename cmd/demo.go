// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"os"

	"helmbridge/cli/internal/helm"
	"helmbridge/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	demoRegistry = "ghcr.io"
	demoRelease  = "helm-sdk-example"
	demoChart    = "oci://ghcr.io/stefanprodan/charts/podinfo"
	demoVersion  = "6.5.4"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the example install/upgrade/uninstall cycle",
	Long: `Log in to ghcr.io with GITHUB_USER and GITHUB_TOKEN, install the podinfo chart
as helm-sdk-example, list releases, upgrade to 6.5.4, list again and uninstall.
The first failing step after login stops the demo.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()
		return runDemo(cmd.Context(), s.client, s.env, os.Getenv("GITHUB_USER"), os.Getenv("GITHUB_TOKEN"))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// runDemo drives the operations in order. A failed registry login is only
// reported; every later failure aborts.
func runDemo(ctx context.Context, client *helm.Client, env helm.Env, user, token string) error {
	pterm.DefaultSection.Println("Registry login")
	err := client.RegistryLogin(ctx, helm.RegistryLogin{
		Hostname: demoRegistry,
		Username: user,
		Password: token,
		Env:      env,
	})
	if err != nil {
		pterm.Warning.Println(logging.PresentError("failed to run registry login", err))
	} else {
		pterm.Success.Println("Logged in to " + demoRegistry)
	}

	pterm.DefaultSection.Println("Install " + demoRelease)
	out, err := client.Install(ctx, helm.Install{
		ReleaseName: demoRelease,
		Chart:       demoChart,
		Wait:        true,
		Values:      []byte(`{"replicaCount":"2"}`),
		Env:         env,
	})
	if err != nil {
		return err
	}
	if err := renderRelease(out, false); err != nil {
		return err
	}

	if err := demoList(ctx, client, env); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Upgrade " + demoRelease + " to " + demoVersion)
	out, err = client.Upgrade(ctx, helm.Upgrade{
		ReleaseName: demoRelease,
		Chart:       demoChart,
		Version:     demoVersion,
		Wait:        true,
		Values:      []byte(`{"replicaCount":"3"}`),
		Env:         env,
	})
	if err != nil {
		return err
	}
	if err := renderRelease(out, false); err != nil {
		return err
	}

	if err := demoList(ctx, client, env); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Uninstall " + demoRelease)
	if _, err := client.Uninstall(ctx, helm.Uninstall{
		ReleaseName: demoRelease,
		Wait:        true,
		Env:         env,
	}); err != nil {
		return err
	}
	pterm.Success.Println("Demo finished")
	return nil
}

func demoList(ctx context.Context, client *helm.Client, env helm.Env) error {
	pterm.DefaultSection.Println("Releases")
	out, err := client.List(ctx, helm.List{AllNamespaces: true, Env: env})
	if err != nil {
		return err
	}
	return renderReleaseList(out, false, false)
}
