package crc8

import "hash"

// Size of a CRC-8 checksum in bytes.
const Size = 1

// Digest is a streaming CRC-8 over everything written to it. It implements
// hash.Hash.
type Digest struct {
	poly byte
	r    byte
}

var _ hash.Hash = (*Digest)(nil)

// New returns a Digest dividing by poly.
func New(poly byte) *Digest {
	return &Digest{poly: poly}
}

func (d *Digest) Write(p []byte) (int, error) {
	d.r = update(d.r, d.poly, p)
	return len(p), nil
}

// Remainder returns the register as it stands, i.e. Compute over every byte
// written so far. It is zero after writing a buffer sealed under the same
// polynomial.
func (d *Digest) Remainder() byte { return d.r }

// Sum8 returns the checksum to append to the bytes written so far. It is the
// byte Insert would write in the trailing placeholder.
func (d *Digest) Sum8() byte { return updateByte(d.r, d.poly, 0x00) }

// Sum appends Sum8 to in.
func (d *Digest) Sum(in []byte) []byte { return append(in, d.Sum8()) }

func (d *Digest) Reset() { d.r = 0 }

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return 1 }
