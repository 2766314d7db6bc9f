// Package main implements the pre-commit hook that validates the
// current branch name against accept/reject regex patterns.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/krmcbride/precommit-hooks/pkg/gitutil"
	"github.com/krmcbride/precommit-hooks/pkg/policy"
	"github.com/krmcbride/precommit-hooks/pkg/report"
)

var (
	accepts  []string
	rejects  []string
	exitZero bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "check-branch-name [flags]",
	Short: "Validate the current branch name against regex patterns",
	Long: `Validate the current git branch name against accept and reject regex
patterns.

A reject match fails the check regardless of accepts. With accept
patterns configured, at least one must match. When no branch exists yet
(unborn branch, detached HEAD, or git unavailable) the check is
skipped rather than failed.

Examples:
  check-branch-name -a '^feat/' -a '^fix/'
  check-branch-name -r '^main$' -r '^master$'
  check-branch-name --accept='^[a-z0-9/-]+$' --exit-zero`,
	Args: cobra.NoArgs,
	Run:  run,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&accepts, "accept", "a", nil, "regex pattern(s) to accept (repeatable)")
	rootCmd.Flags().StringArrayVarP(&rejects, "reject", "r", nil, "regex pattern(s) to reject (repeatable)")
	rootCmd.Flags().BoolVar(&exitZero, "exit-zero", false, "exit code 0 regardless of results")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print passing results")
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func run(cmd *cobra.Command, args []string) {
	branch := gitutil.CurrentBranch(cmd.Context())

	res := policy.BranchName(branch, policy.Config{
		Accepts: accepts,
		Rejects: rejects,
	})

	report.New(cmd.ErrOrStderr(), viper.GetBool("verbose")).Report(res, exitZero)
	os.Exit(report.Resolve(res.Code, exitZero))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
