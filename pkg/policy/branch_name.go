package policy

import (
	"github.com/krmcbride/precommit-hooks/pkg/engine"
	"github.com/krmcbride/precommit-hooks/pkg/pattern"
)

// BranchName validates the current branch name against the configured
// accept/reject patterns.
//
// An empty branch, or the literal "HEAD" git reports when detached,
// means there is no branch to check yet (unborn branch, detached HEAD,
// git unavailable). That is a skip, not a failure.
func BranchName(branch string, cfg Config) Result {
	if branch == "" || branch == "HEAD" {
		return Result{Code: CodePass, Messages: []string{"no branch to check, skipping"}}
	}

	accepts, err := pattern.CompileSet(cfg.Accepts, pattern.Accept)
	if err != nil {
		return badPattern(err)
	}
	rejects, err := pattern.CompileSet(cfg.Rejects, pattern.Reject)
	if err != nil {
		return badPattern(err)
	}

	return textResult(engine.EvaluateText(branch, accepts, rejects), "branch name")
}
