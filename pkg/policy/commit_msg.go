package policy

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/krmcbride/precommit-hooks/pkg/engine"
	"github.com/krmcbride/precommit-hooks/pkg/pattern"
)

// CommitMsg validates the commit message stored at path against the
// configured accept/reject patterns. An empty message is a policy
// failure; an unreadable file is an environment failure.
func CommitMsg(fs afero.Fs, path string, cfg Config) Result {
	accepts, err := pattern.CompileSet(cfg.Accepts, pattern.Accept)
	if err != nil {
		return badPattern(err)
	}
	rejects, err := pattern.CompileSet(cfg.Rejects, pattern.Reject)
	if err != nil {
		return badPattern(err)
	}

	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return Result{
			Code:     CodeEnvError,
			Messages: []string{fmt.Sprintf("error reading commit message file: %s (%v)", path, err)},
		}
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		return Result{Code: CodeNotAccepted, Messages: []string{"commit message is empty"}}
	}

	return textResult(engine.EvaluateText(msg, accepts, rejects), "commit message")
}
