// Package main implements the pre-commit hook that checks staged file
// contents for required and rejected regex patterns.
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
	requires []string
	rejects  []string
	exitZero bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "check-for-pattern [flags] FILE...",
	Short: "Check staged file contents for required and rejected patterns",
	Long: `Check each staged file's content for required and rejected regex
patterns.

A file passes when no reject pattern matches its content and every
require pattern does. Every violation in every file is reported before
the hook exits, not just the first. The pre-commit configuration file
itself is always skipped. The -EsC- escape token in a pattern stands
for the literal character that follows it, so a copyright notice like
"(c) 2024" can be required as '-EsC-(c-EsC-) 2024'.

Examples:
  check-for-pattern -q 'Copyright [0-9]{4}' src/a.go src/b.go
  check-for-pattern -r 'DO NOT COMMIT' -r 'console\.log' staged.js
  check-for-pattern --require='-EsC-(c-EsC-) 2024 Company Name' *.go`,
	Args: cobra.MinimumNArgs(1),
	Run:  run,
}

func init() {
	rootCmd.Flags().StringArrayVarP(&requires, "require", "q", nil, "regex pattern(s) to require (repeatable)")
	rootCmd.Flags().StringArrayVarP(&rejects, "reject", "r", nil, "regex pattern(s) to reject (repeatable)")
	rootCmd.Flags().BoolVar(&exitZero, "exit-zero", false, "exit code 0 regardless of results")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print passing results")
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func run(cmd *cobra.Command, args []string) {
	res := policy.FilePatterns(afero.NewOsFs(), args, policy.Config{
		Requires: requires,
		Rejects:  rejects,
	})

	report.New(cmd.ErrOrStderr(), viper.GetBool("verbose")).Report(res, exitZero)
	os.Exit(report.Resolve(res.Code, exitZero))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
