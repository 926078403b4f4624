// Package main provides the goturns command line tool: a thin wrapper
// that loads sequence data and runs the turning-point test.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sartorproj/goturns/sequence"
	"github.com/sartorproj/goturns/turns"
	"github.com/sartorproj/goturns/ztest"
)

const version = "0.1.0"

var (
	verbose bool
	logger  *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goturns",
		Short: "Kendall's turning-point test for randomness",
		Long: `GoTurns counts local peaks and troughs in a numeric sequence and
tests the count against the one expected under random ordering.

Commands:
  run       Run the full test and print the report
  count     Print the raw turn count of the input`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger = zap.NewNop()
			}
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newCountCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// inputFlags are the mutually exclusive data sources, resolved in the
// order: trial count, inline values, CSV file, YAML dataset.
type inputFlags struct {
	n       int
	values  string
	csvFile string
	column  string
	yamlSet string
	label   string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&in.n, "n", 0, "explicit trial count (no data needed)")
	cmd.Flags().StringVar(&in.values, "values", "", "comma-separated sequence values")
	cmd.Flags().StringVar(&in.csvFile, "csv", "", "CSV file to load")
	cmd.Flags().StringVar(&in.column, "column", "y", "CSV value column")
	cmd.Flags().StringVar(&in.yamlSet, "yaml", "", "YAML dataset file to load")
	cmd.Flags().StringVar(&in.label, "label", "", "sequence label within the dataset")
}

// source loads the requested data into the analyzer's store when
// needed and returns the matching Source.
func (in *inputFlags) source(analyzer *turns.Analyzer) (turns.Source, error) {
	switch {
	case in.n > 0:
		return turns.WithN(in.n), nil

	case in.values != "":
		values, err := parseValues(in.values)
		if err != nil {
			return turns.Source{}, err
		}
		return turns.WithValues(values), nil

	case in.csvFile != "":
		opts := sequence.DefaultCSVOptions()
		opts.Column = in.column
		seq, err := sequence.LoadCSV(in.csvFile, opts)
		if err != nil {
			return turns.Source{}, err
		}
		logger.Debug("loaded CSV", zap.String("file", in.csvFile), zap.Int("len", seq.Len()))
		return turns.WithValues(seq.Values), nil

	case in.yamlSet != "":
		data, err := sequence.LoadYAML(in.yamlSet)
		if err != nil {
			return turns.Source{}, err
		}
		if err := analyzer.Store().LoadMap(data); err != nil {
			return turns.Source{}, err
		}
		logger.Debug("loaded dataset", zap.String("file", in.yamlSet), zap.Int("sequences", len(data)))
		if in.label != "" {
			return turns.FromStore(sequence.ByName(in.label)), nil
		}
		return turns.FromStore(), nil

	default:
		return turns.Source{}, fmt.Errorf("no input: use --n, --values, --csv, or --yaml")
	}
}

func newRunCommand() *cobra.Command {
	var (
		in        inputFlags
		tails     int
		noCcorr   bool
		precision int
		fields    []string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the turning-point test and print the report",
		RunE: func(_ *cobra.Command, _ []string) error {
			analyzer := turns.NewAnalyzer(nil, nil)
			src, err := in.source(analyzer)
			if err != nil {
				return err
			}

			opts := turns.DefaultOptions()
			opts.Config = ztest.Config{
				CCorr:      !noCcorr,
				Tails:      tails,
				PrecisionZ: precision,
				PrecisionP: precision,
			}

			result, err := analyzer.Test(src, opts)
			if err != nil {
				return err
			}

			report, err := result.Report(fields, precision)
			if err != nil {
				return err
			}
			fmt.Println(report)
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().IntVar(&tails, "tails", 2, "one- or two-tailed p-value (1 or 2)")
	cmd.Flags().BoolVar(&noCcorr, "no-ccorr", false, "disable the continuity correction")
	cmd.Flags().IntVar(&precision, "precision", 4, "decimal places for report values (-1 for full)")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "report fields to include (default: all)")

	return cmd
}

func newCountCommand() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Print the raw turn count of the input",
		RunE: func(_ *cobra.Command, _ []string) error {
			analyzer := turns.NewAnalyzer(nil, nil)
			src, err := in.source(analyzer)
			if err != nil {
				return err
			}
			observed, err := analyzer.Observed(src)
			if err != nil {
				return err
			}
			fmt.Println(observed)
			return nil
		},
	}

	in.register(cmd)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "goturns %s\n", version)
		},
	}
}

func parseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", p, sequence.ErrNonNumeric)
		}
		values = append(values, v)
	}
	return values, nil
}
