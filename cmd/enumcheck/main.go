// Demo binary for the enumcheck engine: checks the bundled property
// suites and exits non-zero when a property fails. Some suites contain
// properties that are false on purpose, to show counterexample output.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"enumcheck/checking"
	"enumcheck/registry"
	"enumcheck/runner"
)

var (
	maxTests int
	verbose  bool
	debug    bool
)

func main() {
	root := &cobra.Command{
		Use:           "enumcheck",
		Short:         "Run the bundled enumerative property-testing demo suites",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&maxTests, "max-tests", checking.DefaultMaxTrials, "trial budget per property")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report passing properties as well")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log per-property debug traces")

	suites := []struct {
		name  string
		short string
		props func() []checking.Property
		setup func(*registry.Registry) error
	}{
		{"sort", "Sorting properties over slices of int", sortSuite, nil},
		{"arith", "Arithmetic properties over pairs and triples of int", arithSuite, nil},
		{"point", "Properties of a registered two-field type", pointSuite, registerPoint},
		{"tree", "Properties of a registered recursive tree type", treeSuite, registerTree},
		{"void", "A property over an empty type, vacuously true", voidSuite, registerVoid},
	}

	for _, s := range suites {
		s := s
		root.AddCommand(&cobra.Command{
			Use:   s.name,
			Short: s.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSuite(s.props, s.setup)
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "all",
		Short: "Run every demo suite",
		RunE: func(cmd *cobra.Command, args []string) error {
			props := []checking.Property{}
			for _, s := range suites {
				props = append(props, s.props()...)
			}
			return runSuite(func() []checking.Property { return props }, func(reg *registry.Registry) error {
				for _, s := range suites {
					if s.setup == nil {
						continue
					}
					if err := s.setup(reg); err != nil {
						return err
					}
				}
				return nil
			})
		},
	})

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSuite(props func() []checking.Property, setup func(*registry.Registry) error) error {
	reg := registry.New()
	if setup != nil {
		if err := setup(reg); err != nil {
			return err
		}
	}

	opts := []runner.Option{}
	if verbose {
		opts = append(opts, runner.Verbose())
	}
	if debug {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer log.Sync()
		opts = append(opts, runner.Logger(log))
	}

	checker := checking.NewChecker(reg, checking.MaxTrials(maxTests))
	sum := runner.New(checker, opts...).Run(props()...)
	if !sum.OK() {
		return fmt.Errorf("%d of %d properties failed", sum.Failures, sum.Properties)
	}
	return nil
}
