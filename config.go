package enumcheck

import (
	"io"

	"enumcheck/checking"
	"enumcheck/registry"
	"enumcheck/runner"
)

// An Option configures a package-level check.
type Option interface {
	checkOption()
}

type maxTrialsOption struct{ n int }
type registryOption struct{ reg *registry.Registry }
type outputOption struct{ w io.Writer }
type verboseOption struct{}
type silentOption struct{}

func (maxTrialsOption) checkOption() {}
func (registryOption) checkOption()  {}
func (outputOption) checkOption()    {}
func (verboseOption) checkOption()   {}
func (silentOption) checkOption()    {}

// MaxTrials bounds the number of argument tuples tried per property.
// The default is checking.DefaultMaxTrials.
func MaxTrials(n int) Option { return maxTrialsOption{n: n} }

// WithRegistry resolves parameter types against reg instead of the
// process-wide default registry.
func WithRegistry(reg *registry.Registry) Option { return registryOption{reg: reg} }

// Output redirects the report away from standard output.
func Output(w io.Writer) Option { return outputOption{w: w} }

// Verbose reports passing properties as well as failing ones.
func Verbose() Option { return verboseOption{} }

// Silent suppresses the report.
func Silent() Option { return silentOption{} }

type config struct {
	maxTrials int
	reg       *registry.Registry
	out       io.Writer
	verbose   bool
	silent    bool
}

func newConfig(opts []Option) config {
	cfg := config{
		maxTrials: checking.DefaultMaxTrials,
		reg:       std,
	}
	for _, opt := range opts {
		switch t := opt.(type) {
		case maxTrialsOption:
			cfg.maxTrials = t.n
		case registryOption:
			cfg.reg = t.reg
		case outputOption:
			cfg.out = t.w
		case verboseOption:
			cfg.verbose = true
		case silentOption:
			cfg.silent = true
		}
	}
	return cfg
}

func (cfg config) checker() *checking.Checker {
	return checking.NewChecker(cfg.reg, checking.MaxTrials(cfg.maxTrials))
}

func (cfg config) runnerOptions(verboseDefault bool) []runner.Option {
	var opts []runner.Option
	if cfg.out != nil {
		opts = append(opts, runner.Output(cfg.out))
	}
	if cfg.verbose || verboseDefault {
		opts = append(opts, runner.Verbose())
	}
	if cfg.silent {
		opts = append(opts, runner.Silent())
	}
	return opts
}
