package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/qr"
	"github.com/spf13/cobra"
)

// TableRow is one (version, level) entry of the capacity tables
type TableRow struct {
	Version      int       `json:"version"`
	Level        qr.Level  `json:"level"`
	Numeric      int       `json:"numeric"`
	Alphanumeric int       `json:"alphanumeric"`
	Byte         int       `json:"byte"`
	DataWords    int       `json:"data_codewords"`
	TotalWords   int       `json:"total_codewords"`
	Info         qr.ECInfo `json:"ec_info"`
}

func NewTablesCommand() *cobra.Command {
	var (
		version int
		level   string
	)

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show capacity and error correction block tables",
		Long: `Show, per version and error correction level, how many characters fit
in each mode and how the codewords are split into error correction blocks.`,
		Example: `  # Everything for version 5
  qrecc tables --symbol-version 5

  # Level H for all versions
  qrecc tables --level H`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("json")

			if err := validation.ValidateVersion(version); err != nil {
				return err
			}

			versions := []int{}
			if version != 0 {
				versions = append(versions, version)
			} else {
				for v := qr.MinVersion; v <= qr.MaxVersion; v++ {
					versions = append(versions, v)
				}
			}

			levels := []qr.Level{qr.LevelL, qr.LevelM, qr.LevelQ, qr.LevelH}
			if level != "" {
				l, err := qr.ParseLevel(level)
				if err != nil {
					return err
				}
				levels = []qr.Level{l}
			}

			var rows []TableRow
			for _, v := range versions {
				for _, l := range levels {
					row, err := tableRow(v, l)
					if err != nil {
						return err
					}
					rows = append(rows, row)
				}
			}

			w := cmd.OutOrStdout()
			if outputJSON {
				return writeJSON(w, rows)
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tLEVEL\tNUMERIC\tALNUM\tBYTE\tDATA\tTOTAL\tECC/BLOCK\tGROUP 1\tGROUP 2")
			for _, r := range rows {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%dx%d\t%dx%d\n",
					r.Version, r.Level, r.Numeric, r.Alphanumeric, r.Byte,
					r.DataWords, r.TotalWords, r.Info.CodewordsPerBlock,
					r.Info.Group1Blocks, r.Info.Group1DataCodewords,
					r.Info.Group2Blocks, r.Info.Group2DataCodewords)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&version, "symbol-version", 0, "Only this version (1-40)")
	cmd.Flags().StringVarP(&level, "level", "l", "", "Only this error correction level (L, M, Q, H)")

	return cmd
}

func tableRow(version int, level qr.Level) (TableRow, error) {
	info, err := qr.BlockInfo(version, level)
	if err != nil {
		return TableRow{}, err
	}

	row := TableRow{
		Version:    version,
		Level:      level,
		DataWords:  info.TotalDataCodewords(),
		TotalWords: info.TotalCodewords(),
		Info:       info,
	}
	for _, m := range []qr.Mode{qr.Numeric, qr.Alphanumeric, qr.Byte} {
		c, err := qr.Capacity(version, m, level)
		if err != nil {
			return TableRow{}, err
		}
		switch m {
		case qr.Numeric:
			row.Numeric = c
		case qr.Alphanumeric:
			row.Alphanumeric = c
		case qr.Byte:
			row.Byte = c
		}
	}
	return row, nil
}
