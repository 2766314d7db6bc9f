// Package report renders hook results to the terminal and resolves
// the final process exit code.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/krmcbride/precommit-hooks/pkg/policy"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func init() {
	_ = viper.BindEnv("color", "PRE_COMMIT_COLOR")
	_ = viper.BindEnv("no-color", "NO_COLOR")
}

// colorEnabled honors PRE_COMMIT_COLOR=never and the NO_COLOR convention.
func colorEnabled() bool {
	if viper.GetString("no-color") != "" {
		return false
	}
	return viper.GetString("color") != "never"
}

func prefix(style lipgloss.Style, tag string) string {
	if !colorEnabled() {
		return tag
	}
	return style.Render(tag)
}

// Reporter writes result lines to a terminal stream.
type Reporter struct {
	out     io.Writer
	verbose bool
}

// New returns a Reporter writing to out. With verbose set, passing
// results are printed too instead of staying silent.
func New(out io.Writer, verbose bool) *Reporter {
	return &Reporter{out: out, verbose: verbose}
}

// Report prints res. Failures are tagged [ERR], or [WARN] when
// exit-zero will downgrade the outcome anyway. Configuration and
// environment failures keep the [ERR] tag since exit-zero does not
// apply to them.
func (r *Reporter) Report(res policy.Result, exitZero bool) {
	if res.Pass() {
		if r.verbose {
			fmt.Fprintln(r.out, prefix(okStyle, "[OK]"), "passed")
			for _, msg := range res.Messages {
				fmt.Fprintln(r.out, prefix(okStyle, "[OK]"), msg)
			}
		}
		return
	}

	tag := prefix(errStyle, "[ERR]")
	if exitZero && res.Code < policy.CodeBadPattern {
		tag = prefix(warnStyle, "[WARN]")
	}
	for _, msg := range res.Messages {
		fmt.Fprintln(r.out, tag, msg)
	}
}

// Resolve maps a result code onto the process exit code. Exit-zero
// suppresses policy verdicts only; configuration and environment
// failures keep their distinct codes.
func Resolve(code int, exitZero bool) int {
	if exitZero && code < policy.CodeBadPattern {
		return 0
	}
	return code
}
