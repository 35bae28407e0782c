package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// GeneratorResult is the JSON form of a generator polynomial
type GeneratorResult struct {
	Codewords int    `json:"codewords"`
	Degree    int    `json:"degree"`
	Exponents []int  `json:"exponents"` // x^0 first
	Values    []int  `json:"values"`    // x^0 first
	Formula   string `json:"formula"`
}

func NewGeneratorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generator <codewords>",
		Short: "Print the Reed-Solomon generator polynomial",
		Long: `Print the generator polynomial (x + α^0)(x + α^1)...(x + α^(n-1))
used to compute n error correction codewords, with every coefficient
written as a power of α.`,
		Example: `  # Generator for 10 codewords (version 1-M)
  qrecc generator 10

  # As JSON
  qrecc generator 7 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid codeword count %q: %w", args[0], err)
			}

			g, err := reedsolomon.BuildGenerator(n)
			if err != nil {
				return err
			}
			slog.Debug("Built generator polynomial", "codewords", n, "degree", g.Degree())

			result := GeneratorResult{
				Codewords: n,
				Degree:    g.Degree(),
				Formula:   g.String(),
			}
			for i := 0; i <= g.Degree(); i++ {
				exp, _ := g[i].Log()
				result.Exponents = append(result.Exponents, exp)
				result.Values = append(result.Values, int(g[i].Value()))
			}

			w := cmd.OutOrStdout()
			if outputJSON {
				return writeJSON(w, result)
			}

			heading(w, fmt.Sprintf("GENERATOR POLYNOMIAL (%d CODEWORDS)", n))
			fmt.Fprintln(w, result.Formula)
			fmt.Fprintln(w)
			cyan := color.New(color.FgCyan)
			cyan.Fprint(w, "Exponents (x^0 first): ")
			fmt.Fprintln(w, joinInts(result.Exponents))
			return nil
		},
	}

	return cmd
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
