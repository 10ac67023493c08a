package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/prox"
	"github.com/spf13/cobra"
)

var (
	lambdaFlag float64
	lowerFlag  float64
	upperFlag  float64
	inputFlag  string
)

// readVector decodes the input vector from --input, or from stdin when the
// flag is empty, as a JSON array of numbers.
func readVector() ([]float64, error) {
	data := []byte(inputFlag)
	if inputFlag == "" {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	var v []float64
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &v); err != nil {
		return nil, fmt.Errorf("parse input vector: %w", err)
	}

	return v, nil
}

// runOperator reads the vector, applies op, and prints the result as JSON
// on stdout. Logs go to stderr so output stays pipeable.
func runOperator(op prox.Operator) error {
	v, err := readVector()
	if err != nil {
		return err
	}

	slog.Debug("applying operator", "elements", len(v), "lambda", lambdaFlag)

	out, err := json.Marshal(op.Apply(v))
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(out))

	return nil
}

var l1Cmd = &cobra.Command{
	Use:   "l1",
	Short: "Soft-threshold a vector (proximal operator of the L1 penalty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := prox.NewL1(lambdaFlag)
		if err != nil {
			return err
		}

		return runOperator(op)
	},
}

var l2Cmd = &cobra.Command{
	Use:   "l2",
	Short: "Block-shrink a vector (proximal operator of the L2 penalty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := prox.NewL2(lambdaFlag)
		if err != nil {
			return err
		}

		return runOperator(op)
	},
}

var sqL2Cmd = &cobra.Command{
	Use:   "sql2",
	Short: "Ridge-shrink a vector (proximal operator of the squared-L2 penalty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := prox.NewSquaredL2(lambdaFlag)
		if err != nil {
			return err
		}

		return runOperator(op)
	},
}

var boxCmd = &cobra.Command{
	Use:   "box",
	Short: "Project a vector onto an interval [lower, upper]",
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := prox.NewBox(lambdaFlag, lowerFlag, upperFlag)
		if err != nil {
			return err
		}

		return runOperator(op)
	},
}

func init() {
	for _, c := range []*cobra.Command{l1Cmd, l2Cmd, sqL2Cmd, boxCmd} {
		c.Flags().Float64Var(&lambdaFlag, "lambda", 0, "Regularization weight (non-negative)")
		c.Flags().StringVar(&inputFlag, "input", "", "JSON array input; reads stdin when empty")
	}
	boxCmd.Flags().Float64Var(&lowerFlag, "lower", 0, "Interval lower bound")
	boxCmd.Flags().Float64Var(&upperFlag, "upper", 1, "Interval upper bound")

	rootCmd.AddCommand(l1Cmd, l2Cmd, sqL2Cmd, boxCmd)
}
