// Package main implements the commit-msg hook that validates the
// commit message against accept/reject regex patterns.
package main

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

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
	Use:   "check-commit-msg [flags] COMMIT_MSG_FILE",
	Short: "Validate the commit message against regex patterns",
	Long: `Validate the commit message against accept and reject regex patterns.

A reject match fails the commit regardless of accepts. With accept
patterns configured, at least one must match; with none configured the
message passes unless rejected. Patterns are unanchored searches, so
anchor with ^ where needed. The -EsC- escape token in a pattern stands
for the literal character that follows it, letting patterns carry
characters the argument parser would otherwise split on.

Examples:
  check-commit-msg -a '^FIX: ' -a '^FEATURE: ' .git/COMMIT_EDITMSG
  check-commit-msg -r '^fixup!' --exit-zero .git/COMMIT_EDITMSG
  check-commit-msg --accept='^JIRA-[0-9]+' .git/COMMIT_EDITMSG`,
	Args: cobra.ExactArgs(1),
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
	res := policy.CommitMsg(afero.NewOsFs(), args[0], policy.Config{
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
