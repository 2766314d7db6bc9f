// Package policy adapts the match engine to the three hooks: it
// obtains each hook's target, runs the evaluation, and maps the
// outcome onto the exit-code contract shared with the pre-commit
// framework.
package policy

import (
	"github.com/krmcbride/precommit-hooks/pkg/engine"
	"github.com/krmcbride/precommit-hooks/pkg/pattern"
)

// Exit codes reported to the pre-commit framework. Policy outcomes
// (CodeNotAccepted, CodeRejected) can be downgraded by --exit-zero;
// configuration and environment failures cannot.
const (
	CodePass        = 0
	CodeNotAccepted = 1  // accept/require patterns not satisfied
	CodeRejected    = 2  // a reject pattern matched
	CodeBadPattern  = 98 // pattern failed to compile after decoding
	CodeEnvError    = 99 // target unreadable
)

// Config holds the raw pattern arguments for one hook invocation.
// Which fields apply depends on the hook: commit-msg and branch-name
// use Accepts/Rejects, the file hook uses Requires/Rejects.
type Config struct {
	Accepts  []string
	Rejects  []string
	Requires []string
}

// Result is a hook outcome: an exit code plus the diagnostic lines to
// show the user. Messages on a passing result are informational only.
type Result struct {
	Code     int
	Messages []string
}

// Pass reports whether the result carries no failure.
func (r Result) Pass() bool {
	return r.Code == CodePass
}

func badPattern(err error) Result {
	return Result{Code: CodeBadPattern, Messages: []string{err.Error()}}
}

// textResult maps a single-string verdict onto a Result, prefixing the
// engine's reason with the target label ("commit message", "branch name").
func textResult(v engine.Verdict, label string) Result {
	if v.Pass {
		return Result{Code: CodePass}
	}
	msg := label + " " + v.Reason
	if v.Rule != nil && v.Rule.Role == pattern.Reject {
		return Result{Code: CodeRejected, Messages: []string{msg}}
	}
	return Result{Code: CodeNotAccepted, Messages: []string{msg}}
}

// worse picks the more severe of two exit codes. Environment and
// configuration codes outrank policy codes; rejection outranks a
// missed requirement.
func worse(a, b int) int {
	if a >= b {
		return a
	}
	return b
}
