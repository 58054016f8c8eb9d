package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gawen/crc8"
)

func newSumCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sum [file...]",
		Short: "Stream files (or stdin) and print the CRC byte to append to each",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				d := crc8.New(opts.poly)
				if _, err := io.Copy(d, cmd.InOrStdin()); err != nil {
					return fmt.Errorf("unable to read stdin: %w", err)
				}
				opts.printSum(cmd, d, "-")
				return nil
			}

			for _, path := range args {
				d, err := sumFile(path, opts)
				if err != nil {
					return err
				}
				opts.printSum(cmd, d, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "Do not draw a progress bar")
	return cmd
}

func sumFile(path string, opts *options) (*crc8.Digest, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	fi, err := fh.Stat()
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if opts.noProgress {
		bar = progressbar.DefaultBytesSilent(fi.Size(), "reading "+path)
	} else {
		bar = progressbar.DefaultBytes(fi.Size(), "reading "+path)
	}
	defer bar.Close()
	barReader := progressbar.NewReader(fh, bar)

	d := crc8.New(opts.poly)
	gotSize, err := io.Copy(d, &barReader)
	if err != nil {
		return nil, fmt.Errorf("unable to read '%s': %w", path, err)
	} else if gotSize != fi.Size() {
		return nil, fmt.Errorf("expected %dB, got %dB for '%s'", fi.Size(), gotSize, path)
	}

	slog.Debug("summed", "path", path, "size", gotSize, "remainder", d.Remainder())
	return d, nil
}

func (o *options) printSum(cmd *cobra.Command, d *crc8.Digest, name string) {
	crc := fmt.Sprintf("%.2x", d.Sum8())
	o.print(cmd, result{
		Command: "sum",
		Input:   name,
		CRC:     crc,
		Valid:   d.Remainder() == 0,
	}, crc+"  "+name)
}
