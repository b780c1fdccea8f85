package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/logikon/proplog/cnf"
	"github.com/logikon/proplog/formula"
	"github.com/logikon/proplog/horn"
	"github.com/logikon/proplog/proof"
)

var (
	verbose bool

	valid   = color.New(color.FgGreen)
	invalid = color.New(color.FgRed)
)

func main() {
	root := &cobra.Command{
		Use:           "proplog",
		Short:         "propositional-logic workbench: WFF checking, CNF, Horn-SAT and proof validation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "wff [file]",
			Short: "check each input line for well-formedness",
			Args:  cobra.MaximumNArgs(1),
			RunE:  perLine(runWFF),
		},
		&cobra.Command{
			Use:   "cnf [file]",
			Short: "convert each input line to conjunctive normal form",
			Args:  cobra.MaximumNArgs(1),
			RunE:  perLine(runCNF),
		},
		&cobra.Command{
			Use:   "sat [file]",
			Short: "decide satisfiability of each input line with the SAT engine",
			Args:  cobra.MaximumNArgs(1),
			RunE:  perLine(runSAT),
		},
		&cobra.Command{
			Use:   "horn [file]",
			Short: "decide satisfiability of each input line as a Horn formula",
			Args:  cobra.MaximumNArgs(1),
			RunE:  perLine(runHorn),
		},
		&cobra.Command{
			Use:   "proof [file]",
			Short: "validate a natural-deduction proof script",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				lines, err := readLines(args)
				if err != nil {
					return err
				}
				if err := proof.Validate(lines); err != nil {
					var lerr *proof.LineError
					if errors.As(err, &lerr) {
						logrus.Debugf("proof rejected: %v", lerr.Err)
						invalid.Printf("Invalid Deduction at Line %d\n", lerr.Line)
						return nil
					}
					return err
				}
				valid.Println("Valid Deduction")
				return nil
			},
		},
		&cobra.Command{
			Use:   "apply [file]",
			Short: "apply a single deduction rule to a premise block",
			Long: "Reads blocks separated by blank lines. Each block holds numbered premise\n" +
				"lines followed by one rule line, e.g. \"∧e1, 1\". Prints the derived\n" +
				"formula, or \"Rule Cannot Be Applied\".",
			Args: cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				lines, err := readLines(args)
				if err != nil {
					return err
				}
				for _, block := range splitBlocks(lines) {
					runApply(block)
				}
				return nil
			},
		},
	)

	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// perLine adapts a per-formula handler into a command that feeds it every
// non-empty input line. Independent lines never affect each other.
func perLine(handle func(string)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(args)
		if err != nil {
			return err
		}
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			logrus.Debugf("input: %s", line)
			handle(line)
		}
		return nil
	}
}

func runWFF(line string) {
	if _, err := formula.Parse(line); err != nil {
		logrus.Debugf("parse: %v", err)
		invalid.Println("Invalid Formula")
		return
	}
	valid.Println("Valid Formula")
}

func runCNF(line string) {
	f, err := formula.Parse(line)
	if err != nil {
		logrus.Debugf("parse: %v", err)
		invalid.Println("Invalid Formula")
		return
	}
	fmt.Println(cnf.Convert(f).String())
}

func runSAT(line string) {
	f, err := formula.Parse(line)
	if err != nil {
		logrus.Debugf("parse: %v", err)
		invalid.Println("Invalid Formula")
		return
	}
	model, sat := cnf.Convert(f).Solve()
	if !sat {
		invalid.Println("Unsatisfiable")
		return
	}
	valid.Println("Satisfiable")
	for _, line := range modelLines(model) {
		fmt.Println(line)
	}
}

// modelLines renders a satisfying assignment one atom per line, sorted by
// name.
func modelLines(model map[string]bool) []string {
	names := make([]string, 0, len(model))
	for name := range model {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %t", name, model[name])
	}
	return lines
}

func runHorn(line string) {
	clauses, err := horn.Parse(line)
	if err != nil {
		logrus.Debugf("horn parse: %v", err)
		invalid.Println("Invalid Horn Formula")
		return
	}
	fmt.Println(horn.Solve(clauses).String())
}

func runApply(block []string) {
	premises, rule, refs, err := proof.ParseRuleBlock(block)
	if err != nil {
		logrus.Debugf("rule block: %v", err)
		invalid.Println("Rule Cannot Be Applied")
		return
	}
	derived, err := proof.Apply(premises, rule, refs)
	if err != nil {
		logrus.Debugf("apply: %v", err)
		invalid.Println("Rule Cannot Be Applied")
		return
	}
	fmt.Println(derived.String())
}

// readLines reads the whole input, either from the named file or from
// stdin when no argument is given.
func readLines(args []string) ([]string, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrapf(err, "could not open %q", args[0])
		}
		defer f.Close()
		r = f
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read input")
	}
	return lines, nil
}

// splitBlocks separates the input into blocks at blank lines.
func splitBlocks(lines []string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
