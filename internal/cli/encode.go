package cli

import (
	"fmt"
	"log/slog"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/qr"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// BlockResult is one error correction block in an encode result
type BlockResult struct {
	Group int    `json:"group"`
	Data  string `json:"data"`
	ECC   string `json:"ecc"`
}

// EncodeResult is the JSON form of an encode run
type EncodeResult struct {
	Text      string        `json:"text"`
	Version   int           `json:"version"`
	Level     qr.Level      `json:"level"`
	Mode      qr.Mode       `json:"mode"`
	Format    string        `json:"format"`
	Info      qr.ECInfo     `json:"ec_info"`
	Blocks    []BlockResult `json:"blocks"`
	Codewords string        `json:"codewords"`
	Bits      string        `json:"bits,omitempty"`
}

func NewEncodeCommand() *cobra.Command {
	var (
		level   string
		version int
		format  string
		blocks  bool
		bits    bool
	)

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text into QR data and error correction codewords",
		Long: `Encode text the way a QR code symbol carries it: detect the mode
(numeric, alphanumeric or byte), pick the smallest version for the error
correction level, pack and pad the data codewords, compute the error
correction codewords for every block and interleave them.

The symbol matrix itself (placement, masking, format information) is not
produced.`,
		Example: `  # Smallest version at level M
  qrecc encode "HELLO WORLD"

  # Fixed version, show each block
  qrecc encode "HELLO WORLD" --level Q --symbol-version 5 --blocks

  # Read from stdin, JSON output
  echo -n 01234567 | qrecc encode --json`,
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

			if err := validation.ValidateVersion(version); err != nil {
				return err
			}

			lvl := cm.Level()
			if cmd.Flags().Changed("level") {
				if lvl, err = qr.ParseLevel(level); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("blocks") {
				blocks = cm.GetConfig().Defaults.ShowBlocks
			}
			if !cmd.Flags().Changed("bits") {
				bits = cm.GetConfig().Defaults.ShowBitwords
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var sym *qr.Symbol
			if version > 0 {
				sym, err = qr.EncodeDataVersion(text, lvl, version)
			} else {
				sym, err = qr.EncodeData(text, lvl)
			}
			if err != nil {
				return fmt.Errorf("failed to encode data: %w", err)
			}
			slog.Debug("Encoded data codewords",
				"mode", sym.Mode.String(), "version", sym.Version, "level", sym.Level.String(), "data", len(sym.Data))

			ecBlocks, err := sym.Blocks()
			if err != nil {
				return fmt.Errorf("failed to compute error correction: %w", err)
			}
			info, err := qr.BlockInfo(sym.Version, sym.Level)
			if err != nil {
				return err
			}

			result := EncodeResult{
				Text:      text,
				Version:   sym.Version,
				Level:     sym.Level,
				Mode:      sym.Mode,
				Format:    format,
				Info:      info,
				Codewords: formatBytes(qr.Interleave(ecBlocks), format),
			}
			for _, b := range ecBlocks {
				result.Blocks = append(result.Blocks, BlockResult{
					Group: b.Group,
					Data:  formatBytes(b.Data, format),
					ECC:   formatBytes(b.ECC, format),
				})
			}
			if bits {
				var buf qr.BitBuffer
				buf.AppendBytes(sym.Data)
				result.Bits = buf.String()
			}

			w := cmd.OutOrStdout()
			if outputJSON {
				return writeJSON(w, result)
			}

			printEncodeResult(cmd, result, blocks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "M", "Error correction level (L, M, Q, H)")
	cmd.Flags().IntVar(&version, "symbol-version", 0, "Force a symbol version (1-40); 0 picks the smallest")
	cmd.Flags().StringVarP(&format, "format", "f", "hex", "Output format (hex, decimal, binary)")
	cmd.Flags().BoolVar(&blocks, "blocks", false, "List every error correction block")
	cmd.Flags().BoolVar(&bits, "bits", false, "Print the data bit stream")

	return cmd
}

func printEncodeResult(cmd *cobra.Command, r EncodeResult, showBlocks bool) {
	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	heading(w, "QR CODEWORDS")
	fmt.Fprintf(w, "Text:    %q\n", r.Text)
	fmt.Fprintf(w, "Mode:    %s\n", r.Mode)
	fmt.Fprintf(w, "Version: %d-%s\n", r.Version, r.Level)
	fmt.Fprintf(w, "Blocks:  %d x %d + %d x %d data codewords, %d ECC codewords each\n",
		r.Info.Group1Blocks, r.Info.Group1DataCodewords,
		r.Info.Group2Blocks, r.Info.Group2DataCodewords,
		r.Info.CodewordsPerBlock)

	if r.Bits != "" {
		fmt.Fprintf(w, "Bits:    %s\n", r.Bits)
	}

	if showBlocks {
		for i, b := range r.Blocks {
			fmt.Fprintln(w)
			cyan.Fprintf(w, "Block %d (group %d):\n", i+1, b.Group)
			fmt.Fprintf(w, "  Data: %s\n", b.Data)
			fmt.Fprintf(w, "  ECC:  %s\n", b.ECC)
		}
	}

	fmt.Fprintln(w)
	green.Fprintln(w, "Final codewords:")
	fmt.Fprintln(w, r.Codewords)
}
