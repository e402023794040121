// Package runner checks a suite of properties and reports the results
// on a console, in the style of the classic enumerative testing tools:
// one line per passing property, a witness dump per failing one and a
// final tally.
package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"enumcheck/checking"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// A Result pairs a property with its verdict.
// Err is set instead of Verdict when the property's parameter types
// could not be resolved.
type Result struct {
	Property checking.Property
	Verdict  checking.Verdict
	Err      error
}

// Failed reports whether the property did not pass,
// counting resolution errors as failures.
func (r Result) Failed() bool {
	return r.Err != nil || !r.Verdict.OK()
}

// A Summary aggregates the results of running a suite.
type Summary struct {
	Properties int
	Failures   int
	Results    []Result
}

// OK reports whether every property in the suite passed.
func (s Summary) OK() bool {
	return s.Failures == 0
}

// A Runner checks properties and writes a report.
type Runner struct {
	checker *checking.Checker
	out     io.Writer
	verbose bool
	silent  bool
	log     *zap.Logger
}

// An Option configures a Runner.
type Option interface {
	runnerOption()
}

type outputOption struct{ w io.Writer }
type verboseOption struct{}
type silentOption struct{}
type loggerOption struct{ log *zap.Logger }

func (outputOption) runnerOption()  {}
func (verboseOption) runnerOption() {}
func (silentOption) runnerOption()  {}
func (loggerOption) runnerOption()  {}

// Output redirects the report away from standard output.
func Output(w io.Writer) Option { return outputOption{w: w} }

// Verbose reports passing properties as well as failing ones.
func Verbose() Option { return verboseOption{} }

// Silent suppresses the report entirely; results are still returned.
func Silent() Option { return silentOption{} }

// Logger attaches a logger for per-property debug traces.
func Logger(log *zap.Logger) Option { return loggerOption{log: log} }

func New(checker *checking.Checker, opts ...Option) *Runner {
	r := &Runner{
		checker: checker,
		out:     os.Stdout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		switch t := opt.(type) {
		case outputOption:
			r.out = t.w
		case verboseOption:
			r.verbose = true
		case silentOption:
			r.silent = true
		case loggerOption:
			r.log = t.log
		}
	}
	return r
}

// Run checks every property in order and returns the summary.
func (r *Runner) Run(props ...checking.Property) Summary {
	sum := Summary{Properties: len(props)}
	for _, p := range props {
		res := r.check(p)
		if res.Failed() {
			sum.Failures++
		}
		sum.Results = append(sum.Results, res)
	}
	r.tally(sum)
	return sum
}

func (r *Runner) check(p checking.Property) Result {
	v, err := r.checker.Check(p)
	r.log.Debug("checked property",
		zap.String("property", p.Name),
		zap.Int("trials", v.Trials),
		zap.Bool("ok", err == nil && v.OK()),
		zap.Error(err),
	)
	res := Result{Property: p, Verdict: v, Err: err}
	r.report(res)
	return res
}

func (r *Runner) report(res Result) {
	if r.silent {
		return
	}
	name := res.Property.Name
	switch {
	case res.Err != nil:
		fmt.Fprintf(r.out, "%s: cannot check %s: %v\n", warnStyle.Render("Warning"), name, res.Err)
	case res.Verdict.Outcome == checking.Fail:
		fmt.Fprintf(r.out, "*** Failed! Falsifiable after %d tests:\n", res.Verdict.Trials)
		fmt.Fprintf(r.out, "    %s(%s)\n", failStyle.Render(name), formatWitness(res.Verdict.Witness))
	case res.Verdict.Outcome == checking.ExecutionError:
		fmt.Fprintf(r.out, "*** Failed! Exception after %d tests:\n", res.Verdict.Trials)
		fmt.Fprintf(r.out, "    %s(%s)\n", failStyle.Render(name), formatWitness(res.Verdict.Witness))
		fmt.Fprintf(r.out, "    raised '%v'\n", res.Verdict.Condition)
	case r.verbose:
		exhausted := ""
		if res.Verdict.Exhausted {
			exhausted = " (exhausted)"
		}
		fmt.Fprintf(r.out, "+++ OK, passed %d tests%s: %s\n", res.Verdict.Trials, exhausted, passStyle.Render(name))
	}
}

func (r *Runner) tally(sum Summary) {
	if r.silent {
		return
	}
	switch {
	case sum.Properties == 0:
		fmt.Fprintf(r.out, "%s: no properties to check\n", warnStyle.Render("Warning"))
	case sum.Failures > 0:
		fmt.Fprintln(r.out, failStyle.Render(fmt.Sprintf("*** %d of %d properties failed", sum.Failures, sum.Properties)))
	case r.verbose:
		fmt.Fprintln(r.out, passStyle.Render(fmt.Sprintf("+++ %d properties passed", sum.Properties)))
	}
}

func formatWitness(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(parts, ", ")
}
