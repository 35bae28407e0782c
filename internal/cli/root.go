package cli

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the qrecc command tree. logLevel is raised to
// debug by --verbose.
func NewRootCommand(version string, logLevel *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qrecc",
		Short: "QR code Reed-Solomon error correction codewords",
		Long: `qrecc computes the error correction codewords of QR code symbols.

It works over GF(256) with the primitive polynomial x^8+x^4+x^3+x^2+1,
builds the Reed-Solomon generator polynomial for any number of
correction codewords and divides the message by it.

Features:
- Generator polynomials in α-exponent form
- Error correction codewords for raw data codewords
- Full data encoding: mode detection, version selection, padding
- Block splitting and interleaving for versions 1-40
- Syndrome check of data plus correction blocks`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && logLevel != nil {
				logLevel.Set(slog.LevelDebug)
			}
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.AddCommand(
		NewGeneratorCommand(),
		NewECCCommand(),
		NewEncodeCommand(),
		NewVerifyCommand(),
		NewTablesCommand(),
		NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	return rootCmd
}
