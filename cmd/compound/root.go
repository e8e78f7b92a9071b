package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/internal/output"
	"github.com/rpgo/compound-calculator/internal/prompt"
	moneydec "github.com/rpgo/compound-calculator/pkg/decimal"
)

func newRootCmd() *cobra.Command {
	var (
		principal    string
		rate         string
		periods      int
		inputFile    string
		format       string
		schedule     bool
		verbose      bool
		precision    int32
		printExample bool
	)

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Compound interest future value calculator",
		Long: "compound computes the future value of a principal under annual\n" +
			"compound interest using exact decimal arithmetic.\n\n" +
			"With no flags it prompts interactively for the principal, the annual\n" +
			"rate, and the number of years. The --principal/--rate/--periods flags\n" +
			"run a single scenario without prompts, and --input runs every scenario\n" +
			"in a YAML file.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := calculation.NewEngine()
			if precision != 0 {
				engine.Precision = precision
			}
			if verbose {
				engine.SetLogger(calculation.NewPrintfLogger(cmd.ErrOrStderr()))
			}

			if printExample {
				data, err := yaml.Marshal(config.NewInputParser().CreateExampleConfiguration())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if inputFile != "" {
				return runBatch(cmd, engine, inputFile, format, schedule)
			}

			flagMode := cmd.Flags().Changed("principal") ||
				cmd.Flags().Changed("rate") ||
				cmd.Flags().Changed("periods")
			if flagMode {
				return runFlags(cmd, engine, principal, rate, periods, format, schedule)
			}

			session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), engine)
			session.ShowSchedule = schedule
			_, err := session.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&principal, "principal", "", "principal amount for non-interactive mode, e.g. 10000.00")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent for non-interactive mode, e.g. 5.25")
	cmd.Flags().IntVar(&periods, "periods", 0, "number of whole-year periods for non-interactive mode")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML scenario file to run in batch mode")
	cmd.Flags().StringVarP(&format, "format", "f", "console",
		fmt.Sprintf("output format for flag and batch modes (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	cmd.Flags().BoolVar(&schedule, "schedule", false, "print the year-by-year balance after the summary")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine details to stderr")
	cmd.Flags().Int32Var(&precision, "precision", 0,
		fmt.Sprintf("significant-digit ceiling for intermediate products (default %d)", calculation.DefaultPrecision))
	cmd.Flags().BoolVar(&printExample, "print-example", false, "print an example scenario file and exit")

	return cmd
}

// cleanFlagNumber applies the same lexical rules as the interactive
// prompts: commas stripped, scientific notation rejected. Flags have no
// retry loop, so failures are plain errors.
func cleanFlagNumber(name, value string) (string, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" || strings.ContainsAny(cleaned, "eE") {
		return "", fmt.Errorf("invalid --%s value %q", name, value)
	}
	return cleaned, nil
}

func parseFlagMoney(name, value string) (moneydec.Money, error) {
	cleaned, err := cleanFlagNumber(name, value)
	if err != nil {
		return moneydec.Money{}, err
	}
	m, err := moneydec.NewMoneyFromString(cleaned)
	if err != nil {
		return moneydec.Money{}, fmt.Errorf("invalid --%s value %q", name, value)
	}
	return m, nil
}

func parseFlagDecimal(name, value string) (decimal.Decimal, error) {
	cleaned, err := cleanFlagNumber(name, value)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s value %q", name, value)
	}
	return d, nil
}

func runFlags(cmd *cobra.Command, engine *calculation.Engine, principal, rate string, periods int, format string, schedule bool) error {
	if principal == "" || rate == "" {
		return fmt.Errorf("--principal, --rate, and --periods must be supplied together")
	}
	p, err := parseFlagMoney("principal", principal)
	if err != nil {
		return err
	}
	if p.IsNegative() {
		return fmt.Errorf("--principal cannot be negative")
	}
	r, err := parseFlagDecimal("rate", rate)
	if err != nil {
		return err
	}
	if periods < 0 {
		return fmt.Errorf("--periods cannot be negative")
	}

	results := []domain.Result{engine.Run(domain.Scenario{
		Principal:         p.Decimal,
		AnnualRatePercent: r,
		Periods:           periods,
	})}
	return writeResults(cmd, results, format, schedule)
}

func runBatch(cmd *cobra.Command, engine *calculation.Engine, inputFile, format string, schedule bool) error {
	cfg, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return err
	}
	return writeResults(cmd, engine.RunAll(cfg.Scenarios), format, schedule)
}

func writeResults(cmd *cobra.Command, results []domain.Result, format string, schedule bool) error {
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %s; aliases: %s)",
			format,
			strings.Join(output.AvailableFormatterNames(), ", "),
			strings.Join(output.AvailableFormatAliases(), ", "))
	}
	if cf, ok := formatter.(output.ConsoleFormatter); ok {
		cf.ShowSchedule = schedule
		formatter = cf
	}
	data, err := formatter.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
