package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gawen/crc8"
)

func newComputeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compute <hex>",
		Short: "Print the CRC-8 remainder of a buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := parseHex(args[0])
			if err != nil {
				return err
			}

			r, err := crc8.Compute(buf, opts.poly)
			if err != nil {
				return err
			}

			slog.Debug("computed", "buf", hex.EncodeToString(buf), "remainder", r)
			crc := fmt.Sprintf("%.2x", r)
			opts.print(cmd, result{
				Command: "compute",
				Input:   hex.EncodeToString(buf),
				CRC:     crc,
				Valid:   r == 0,
			}, crc)
			return nil
		},
	}
}

func newVerifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <hex>",
		Short: "Check a buffer whose last byte is its CRC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := parseHex(args[0])
			if err != nil {
				return err
			}

			ok, err := crc8.Verify(buf, opts.poly)
			if err != nil {
				return err
			}
			if !ok {
				// Open carries the expected and received bytes
				_, err := crc8.Open(buf, opts.poly)
				slog.Warn("corrupted buffer", "buf", hex.EncodeToString(buf), "err", err)
				return err
			}

			opts.print(cmd, result{
				Command: "verify",
				Input:   hex.EncodeToString(buf),
				Valid:   true,
			}, "ok")
			return nil
		},
	}
}

func newInsertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <hex>",
		Short: "Write the CRC into the last byte of a buffer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := parseHex(args[0])
			if err != nil {
				return err
			}

			out, err := crc8.Insert(buf, opts.poly)
			if err != nil {
				return err
			}

			opts.print(cmd, result{
				Command: "insert",
				Input:   hex.EncodeToString(buf),
				CRC:     fmt.Sprintf("%.2x", out[len(out)-1]),
				Output:  hex.EncodeToString(out),
				Valid:   true,
			}, hex.EncodeToString(out))
			return nil
		},
	}
}

func newSealCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seal <hex>",
		Short: "Append a CRC byte to a payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := parseHex(args[0])
			if err != nil {
				return err
			}

			out := crc8.Seal(msg, opts.poly)
			opts.print(cmd, result{
				Command: "seal",
				Input:   hex.EncodeToString(msg),
				CRC:     fmt.Sprintf("%.2x", out[len(out)-1]),
				Output:  hex.EncodeToString(out),
				Valid:   true,
			}, hex.EncodeToString(out))
			return nil
		},
	}
}
