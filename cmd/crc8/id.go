package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gawen/crc8"
)

var errBadID = errors.New("id checksum does not match")

// stampID overwrites the last byte of u with the CRC of the first fifteen.
func stampID(u uuid.UUID, poly byte) uuid.UUID {
	if err := crc8.InsertInPlace(u[:], poly); err != nil {
		panic(err)
	}
	return u
}

func isStampedID(u uuid.UUID, poly byte) bool {
	ok, err := crc8.Verify(u[:], poly)
	return err == nil && ok
}

func newIDCmd(opts *options) *cobra.Command {
	var check string

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Generate a random UUID carrying a CRC-8 in its last byte, or check one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if check != "" {
				u, err := uuid.Parse(check)
				if err != nil {
					return fmt.Errorf("unable to parse UUID '%s': %w", check, err)
				}
				if !isStampedID(u, opts.poly) {
					return fmt.Errorf("%w: %s", errBadID, u)
				}

				opts.print(cmd, result{Command: "id", Input: u.String(), Valid: true}, "ok")
				return nil
			}

			u := stampID(uuid.New(), opts.poly)
			opts.print(cmd, result{
				Command: "id",
				CRC:     fmt.Sprintf("%.2x", u[15]),
				Output:  u.String(),
				Valid:   true,
			}, u.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&check, "check", "", "UUID to check instead of generating one")
	return cmd
}
