package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Davincible/qrecc/internal/validation"
	"github.com/Davincible/qrecc/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loadConfig reads the user's config file and applies its UI settings
func loadConfig() (*config.ConfigManager, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cm.GetConfig().UI.UseColor {
		color.NoColor = true
	}
	return cm, nil
}

// readInput returns the arguments joined by spaces, or piped stdin when no
// arguments are given
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no input given: pass it as an argument or pipe it on stdin")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// parseBytes parses a codeword list: hex ("10 20 0c", "10200c") or,
// with decimal set, base-10 values separated by spaces or commas
func parseBytes(s string, decimal bool) ([]byte, error) {
	if decimal {
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		if err := validation.ValidateDecimalCodewords(fields); err != nil {
			return nil, err
		}
		out := make([]byte, len(fields))
		for i, f := range fields {
			v, _ := strconv.Atoi(f)
			out[i] = byte(v)
		}
		return out, nil
	}

	clean := strings.NewReplacer(" ", "", ":", "", ",", "", "\n", "", "\t", "", "0x", "").Replace(s)
	if clean == "" {
		return nil, nil
	}
	if err := validation.ValidateHex(clean); err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	out, err := hex.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return out, nil
}

// formatBytes renders codewords in one of the config formats
func formatBytes(b []byte, format string) string {
	parts := make([]string, len(b))
	for i, v := range b {
		switch format {
		case config.FormatDecimal:
			parts[i] = strconv.Itoa(int(v))
		case config.FormatBinary:
			parts[i] = fmt.Sprintf("%08b", v)
		default:
			parts[i] = fmt.Sprintf("%02x", v)
		}
	}
	return strings.Join(parts, " ")
}

// resolveFormat picks the --format flag if set, else the configured default
func resolveFormat(cmd *cobra.Command, cm *config.ConfigManager) (string, error) {
	format := cm.GetConfig().Defaults.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	if err := config.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func heading(w io.Writer, title string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(w, "=== %s ===\n", title)
}
