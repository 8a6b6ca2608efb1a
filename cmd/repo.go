// Copyright (c) 2025 Helmbridge
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"helmbridge/cli/internal/bridge"
	"helmbridge/cli/internal/helm"
	"helmbridge/cli/internal/terminal"

	"github.com/Masterminds/semver/v3"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Add and search chart repositories",
}

var repoAddOpts struct {
	req helm.RepoAdd
}

var repoAddCmd = &cobra.Command{
	Use:   "add NAME URL",
	Short: "Add a chart repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := repoAddOpts.req
		req.Name, req.URL = args[0], args[1]

		if req.PasswordFromStdin {
			if req.Username == "" {
				return fmt.Errorf("--password-stdin requires --username")
			}
			pw, err := terminal.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read password from stdin: %w", err)
			}
			req.Password = pw
		} else if req.Username != "" && req.Password == "" && terminal.IsInteractive() {
			pw, err := terminal.ReadSecret("Password: ")
			if err != nil {
				return err
			}
			req.Password = pw
		}

		err := runOperation(cmd, bridge.OpRepoAdd, req.Name, func(ctx context.Context, s *session) error {
			req.Env = s.env
			return s.client.RepoAdd(ctx, req)
		})
		if err != nil {
			return err
		}
		pterm.Success.Printf("%q has been added to your repositories\n", req.Name)
		return nil
	},
}

var repoSearchOpts struct {
	req    helm.RepoSearch
	output outputFlag
}

var repoSearchCmd = &cobra.Command{
	Use:   "search [KEYWORD...]",
	Short: "Search the configured repositories for charts",
	Long: `Search the configured repositories for charts. Without keywords every chart
is listed. --version takes a semver constraint such as ">=1.2.0 <2.0.0".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := repoSearchOpts.req
		req.Terms = args
		if req.Regexp != "" && len(req.Terms) == 0 {
			// an empty keyword list means "everything", so the pattern
			// doubles as the keyword
			req.Terms = []string{req.Regexp}
		}
		if req.Version != "" {
			if _, err := semver.NewConstraint(req.Version); err != nil {
				return fmt.Errorf("invalid --version constraint %q: %w", req.Version, err)
			}
		}

		var out string
		err := runOperation(cmd, bridge.OpRepoSearch, strings.Join(args, " "), func(ctx context.Context, s *session) error {
			req.Env = s.env
			var callErr error
			out, callErr = s.client.RepoSearch(ctx, req)
			return callErr
		})
		if err != nil {
			return err
		}
		return renderSearch(out, repoSearchOpts.output.json())
	},
}

func init() {
	f := repoAddCmd.Flags()
	r := &repoAddOpts.req
	f.StringVar(&r.Username, "username", "", "repository username")
	f.StringVar(&r.Password, "password", "", "repository password (prefer --password-stdin)")
	f.BoolVar(&r.PasswordFromStdin, "password-stdin", false, "read the repository password from stdin")
	f.BoolVar(&r.PassCredentialsAll, "pass-credentials", false, "pass credentials to all domains")
	f.BoolVar(&r.ForceUpdate, "force-update", false, "replace the repository if it already exists")
	f.BoolVar(&r.AllowDeprecatedRepos, "allow-deprecated-repos", false, "allow adding official repositories that were deprecated")
	f.StringVar(&r.CertFile, "cert-file", "", "client certificate file")
	f.StringVar(&r.KeyFile, "key-file", "", "client key file")
	f.StringVar(&r.CAFile, "ca-file", "", "certificate authority bundle")
	f.BoolVar(&r.InsecureSkipTLSVerify, "insecure-skip-tls-verify", false, "skip repository certificate checks")

	sf := repoSearchCmd.Flags()
	s := &repoSearchOpts.req
	sf.BoolVarP(&s.Versions, "versions", "l", false, "show every version of each chart")
	sf.StringVar(&s.Regexp, "regexp", "", "search with this regular expression instead of the keywords")
	sf.BoolVar(&s.Devel, "devel", false, "include development versions (alpha, beta, release candidates)")
	sf.StringVar(&s.Version, "version", "", "semver constraint on chart versions")
	repoSearchOpts.output.register(repoSearchCmd)

	repoCmd.AddCommand(repoAddCmd, repoSearchCmd)
	rootCmd.AddCommand(repoCmd)
}
