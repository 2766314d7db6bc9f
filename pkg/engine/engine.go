// Package engine evaluates targets against ordered pattern sets and
// produces verdicts.
package engine

import (
	"fmt"
	"slices"

	"github.com/krmcbride/precommit-hooks/pkg/pattern"
)

// Verdict is the outcome of evaluating one target.
type Verdict struct {
	Pass   bool
	Path   string           // file path, empty for single-string targets
	Rule   *pattern.Pattern // triggering rule when failed, nil otherwise
	Reason string           // human-readable cause when failed
}

// EvaluateText checks a single text target against accept and reject sets.
//
// Decision policy:
// - any reject match fails the target, regardless of accepts
// - otherwise a non-empty accept set needs at least one match
// - an empty accept set passes (nothing to enforce beyond rejection)
func EvaluateText(target string, accepts, rejects pattern.Set) Verdict {
	for _, p := range rejects {
		if p.Matches(target) {
			return Verdict{
				Rule:   p,
				Reason: fmt.Sprintf("matched rejection pattern: %s", p.Raw),
			}
		}
	}

	if len(accepts) == 0 {
		return Verdict{Pass: true}
	}
	for _, p := range accepts {
		if p.Matches(target) {
			return Verdict{Pass: true}
		}
	}
	return Verdict{Reason: "did not match any of the acceptance patterns supplied"}
}

// EvaluateFiles checks each file's content against require and reject
// sets and returns one or more verdicts per file.
//
// Per file: the first matching reject pattern fails the file and skips
// its require checks; otherwise every require pattern that does not
// match produces its own failing verdict, so the caller can report all
// unmet requirements at once. Evaluation never stops at the first
// failing file. Files are visited in sorted path order.
func EvaluateFiles(files map[string]string, requires, rejects pattern.Set) []Verdict {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	verdicts := make([]Verdict, 0, len(paths))
	for _, path := range paths {
		content := files[path]

		if p := firstMatch(rejects, content); p != nil {
			verdicts = append(verdicts, Verdict{
				Path:   path,
				Rule:   p,
				Reason: fmt.Sprintf("rejected pattern '%s' found in file: %s", p.Raw, path),
			})
			continue
		}

		failed := false
		for _, p := range requires {
			if p.Matches(content) {
				continue
			}
			failed = true
			verdicts = append(verdicts, Verdict{
				Path:   path,
				Rule:   p,
				Reason: fmt.Sprintf("required pattern '%s' not found in file: %s", p.Raw, path),
			})
		}
		if !failed {
			verdicts = append(verdicts, Verdict{Pass: true, Path: path})
		}
	}
	return verdicts
}

func firstMatch(set pattern.Set, content string) *pattern.Pattern {
	for _, p := range set {
		if p.Matches(content) {
			return p
		}
	}
	return nil
}
