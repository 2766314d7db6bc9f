package policy

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/krmcbride/precommit-hooks/pkg/engine"
	"github.com/krmcbride/precommit-hooks/pkg/pattern"
)

// configFileName is the pre-commit configuration itself, which is
// never content-checked even when staged.
const configFileName = ".pre-commit-config.yaml"

// FilePatterns validates each staged file's content against the
// configured require/reject patterns.
//
// Every violation in every file is reported before the result is
// returned. An unreadable file is recorded as an environment failure
// and the remaining files are still checked. With nothing checkable
// the result is a vacuous pass.
func FilePatterns(fs afero.Fs, paths []string, cfg Config) Result {
	requires, err := pattern.CompileSet(cfg.Requires, pattern.Require)
	if err != nil {
		return badPattern(err)
	}
	rejects, err := pattern.CompileSet(cfg.Rejects, pattern.Reject)
	if err != nil {
		return badPattern(err)
	}

	res := Result{Code: CodePass}

	files := make(map[string]string, len(paths))
	for _, path := range paths {
		if strings.Contains(path, configFileName) {
			continue
		}
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			res.Code = worse(res.Code, CodeEnvError)
			res.Messages = append(res.Messages, fmt.Sprintf("error reading file: %s (%v)", path, err))
			continue
		}
		files[path] = string(content)
	}

	for _, v := range engine.EvaluateFiles(files, requires, rejects) {
		if v.Pass {
			continue
		}
		code := CodeNotAccepted
		if v.Rule != nil && v.Rule.Role == pattern.Reject {
			code = CodeRejected
		}
		res.Code = worse(res.Code, code)
		res.Messages = append(res.Messages, v.Reason)
	}
	return res
}
