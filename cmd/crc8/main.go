package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goforj/godump"
	"github.com/spf13/cobra"

	"github.com/gawen/crc8/internal/logging"
)

type options struct {
	polyStr     string
	logLevelStr string
	logJSON     bool
	dump        bool
	noProgress  bool

	poly byte
}

// result is what --dump prints for every subcommand.
type result struct {
	Command string
	Poly    string
	Input   string
	CRC     string
	Output  string
	Valid   bool
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	rootCmd := &cobra.Command{
		Use:   "crc8",
		Short: "Compute, verify and insert CRC-8 checksums",
		Long: `crc8 computes 8-bit cyclic redundancy checks under an arbitrary generator
polynomial. Buffers are given in hex; the last byte of a buffer is its CRC slot.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logLevel, err := logging.ParseLogLevel(opts.logLevelStr)
			if err != nil {
				return err
			}
			logging.ConfigureLogger(cmd.ErrOrStderr(), logLevel, opts.logJSON)

			opts.poly, err = parsePoly(opts.polyStr)
			return err
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.polyStr, "poly", "p", "0xd5", "Generator polynomial, without its x^8 term")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Print logs in JSON format")
	rootCmd.PersistentFlags().BoolVar(&opts.dump, "dump", false, "Dump the structured result")

	rootCmd.AddCommand(
		newComputeCmd(opts),
		newVerifyCmd(opts),
		newInsertCmd(opts),
		newSealCmd(opts),
		newSumCmd(opts),
		newIDCmd(opts),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func parsePoly(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid polynomial '%s': %w", s, err)
	}
	return byte(v), nil
}

var hexSeparators = strings.NewReplacer(" ", "", ":", "", "-", "", "\t", "")

// parseHex accepts "123456", "12 34 56", "12:34:56" and an optional 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = hexSeparators.Replace(s)
	if after, ok := strings.CutPrefix(s, "0x"); ok {
		s = after
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex buffer: %w", err)
	}
	return b, nil
}

func (o *options) print(cmd *cobra.Command, res result, line string) {
	res.Poly = fmt.Sprintf("%#.2x", o.poly)
	if o.dump {
		godump.Dump(res)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
}
