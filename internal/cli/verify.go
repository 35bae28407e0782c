package cli

import (
	"fmt"

	"github.com/Davincible/qrecc/pkg/reedsolomon"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// VerifyResult is the JSON form of a verify run
type VerifyResult struct {
	Valid       bool                     `json:"valid"`
	Syndrome    []int                    `json:"syndrome"`
	SingleError *reedsolomon.SingleError `json:"single_error,omitempty"`
}

func NewVerifyCommand() *cobra.Command {
	var (
		numCodewords int
		decimal      bool
	)

	cmd := &cobra.Command{
		Use:   "verify [codewords...]",
		Short: "Check a block of data plus error correction codewords",
		Long: `Verify that a block made of data codewords followed by its error
correction codewords has an all-zero syndrome. When exactly one codeword
is wrong, its position and the correcting value are reported. The command
fails whenever the block is not a valid codeword.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			block, err := parseBytes(input, decimal)
			if err != nil {
				return err
			}

			syndrome, err := reedsolomon.Syndrome(block, numCodewords)
			if err != nil {
				return err
			}
			ok := reedsolomon.SyndromeIsZero(syndrome)
			fix, located := reedsolomon.LocateSingleError(syndrome, len(block))

			w := cmd.OutOrStdout()
			if outputJSON {
				result := VerifyResult{Valid: ok, Syndrome: make([]int, len(syndrome))}
				for i, s := range syndrome {
					result.Syndrome[i] = int(s.Value())
				}
				if located {
					result.SingleError = &fix
				}
				if err := writeJSON(w, result); err != nil {
					return err
				}
			} else if ok {
				green := color.New(color.FgGreen, color.Bold)
				green.Fprintln(w, "✓ Block is a valid codeword")
			} else {
				red := color.New(color.FgRed, color.Bold)
				red.Fprintln(w, "✗ Block has errors")
				for i, s := range syndrome {
					fmt.Fprintf(w, "  S%d = %s\n", i, s)
				}
				if located {
					fmt.Fprintf(w, "Single error at codeword %d: XOR with %02x gives %02x\n",
						fix.Index, fix.Magnitude, block[fix.Index]^fix.Magnitude)
				}
			}

			if ok {
				return nil
			}
			return fmt.Errorf("block failed verification")
		},
	}

	cmd.Flags().IntVarP(&numCodewords, "codewords", "n", 10, "Number of error correction codewords at the end of the block")
	cmd.Flags().BoolVar(&decimal, "decimal", false, "Input codewords are decimal instead of hex")

	return cmd
}
