// Package gitutil provides the git queries the hooks need.
package gitutil

import (
	"context"
	"os/exec"
	"strings"
)

// CurrentBranch returns the current branch name via
// `git rev-parse --abbrev-ref HEAD`, or "" when it cannot be
// determined (not a repository, unborn branch, git missing). A
// detached HEAD resolves to the literal "HEAD"; callers treat that as
// no branch.
func CurrentBranch(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "git", "rev-parse", "--abbrev-ref", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
