package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ECCResult is the JSON form of an ecc run
type ECCResult struct {
	Message   string `json:"message"`
	Codewords int    `json:"codewords"`
	ECC       string `json:"ecc"`
	Format    string `json:"format"`
}

func NewECCCommand() *cobra.Command {
	var (
		numCodewords int
		decimal      bool
		format       string
	)

	cmd := &cobra.Command{
		Use:   "ecc [codewords...]",
		Short: "Compute error correction codewords for raw data codewords",
		Long: `Compute the Reed-Solomon error correction codewords for a sequence of
already encoded and padded data codewords. The input is read from the
arguments, or from stdin when none are given.`,
		Example: `  # Version 1-M "01234567"
  qrecc ecc 10 20 0c 56 61 80 ec 11 ec 11 ec 11 ec 11 ec 11 -n 10

  # Decimal input and output
  echo "32,91,11,120,209,114,220,77,67,64,236,17,236,17,236,17" | \
    qrecc ecc --decimal -n 10 --format decimal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			cm, err := loadConfig()
			if err != nil {
				return err
			}
			format, err := resolveFormat(cmd, cm)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			message, err := parseBytes(input, decimal)
			if err != nil {
				return err
			}
			if len(message) == 0 {
				return fmt.Errorf("no data codewords given")
			}
			if err := validation.ValidateBlockParams(len(message), numCodewords); err != nil {
				return err
			}

			ecc, err := reedsolomon.Encode(message, numCodewords)
			if err != nil {
				return fmt.Errorf("failed to compute error correction: %w", err)
			}
			slog.Debug("Computed error correction codewords", "data", len(message), "ecc", len(ecc))

			result := ECCResult{
				Message:   formatBytes(message, format),
				Codewords: numCodewords,
				ECC:       formatBytes(ecc, format),
				Format:    format,
			}

			w := cmd.OutOrStdout()
			if outputJSON {
				return writeJSON(w, result)
			}

			heading(w, "ERROR CORRECTION CODEWORDS")
			fmt.Fprintf(w, "Data (%d): %s\n", len(message), result.Message)
			green := color.New(color.FgGreen, color.Bold)
			green.Fprintf(w, "ECC  (%d): ", numCodewords)
			fmt.Fprintln(w, result.ECC)
			return nil
		},
	}

	cmd.Flags().IntVarP(&numCodewords, "codewords", "n", 10, "Number of error correction codewords")
	cmd.Flags().BoolVar(&decimal, "decimal", false, "Input codewords are decimal instead of hex")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "Output format (hex, decimal, binary)")

	return cmd
}
