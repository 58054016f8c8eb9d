// Package crc8 computes, verifies and embeds 8-bit cyclic redundancy checks
// over byte buffers, under a generator polynomial chosen per call.
//
// The buffer is read as one bit stream, most significant bit first, and
// divided by x^8 + poly with a zero-seeded remainder register. A buffer whose
// last byte holds its own checksum divides evenly, which is what Verify
// checks.
package crc8

import "errors"

// ErrEmptyBuffer is returned by every operation given a zero-length buffer.
var ErrEmptyBuffer = errors.New("crc8: empty buffer")

func updateByte(r byte, poly byte, in byte) byte {
	for range 8 {
		top := r&0x80 != 0
		r = r<<1 | in>>7
		in = in << 1
		if top {
			r = r ^ poly
		}
	}
	return r
}

func update(r byte, poly byte, b []byte) byte {
	for idx := range len(b) {
		r = updateByte(r, poly, b[idx])
	}
	return r
}

// checksum returns the byte that, appended to payload, makes the whole
// buffer divide evenly by poly.
func checksum(poly byte, payload []byte) byte {
	return updateByte(update(0, poly, payload), poly, 0x00)
}

// Compute returns the remainder of b divided by poly.
func Compute(b []byte, poly byte) (byte, error) {
	if len(b) == 0 {
		return 0, ErrEmptyBuffer
	}
	return update(0, poly, b), nil
}

// Verify reports whether b, whose last byte is a checksum over the bytes
// before it, is intact under poly.
//
// A false result is not an error: it means the data is corrupted.
func Verify(b []byte, poly byte) (bool, error) {
	r, err := Compute(b, poly)
	if err != nil {
		return false, err
	}
	return r == 0, nil
}

// Insert returns a copy of b whose last byte is replaced by the checksum of
// the bytes before it. The last byte of b is a placeholder: it is cleared
// before the division so its prior content never reaches the result.
func Insert(b []byte, poly byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyBuffer
	}

	out := make([]byte, len(b))
	copy(out, b)
	out[len(out)-1] = checksum(poly, out[:len(out)-1])
	return out, nil
}

// InsertInPlace is Insert for callers that own b: the checksum is written
// into the last byte of b directly.
func InsertInPlace(b []byte, poly byte) error {
	if len(b) == 0 {
		return ErrEmptyBuffer
	}

	b[len(b)-1] = checksum(poly, b[:len(b)-1])
	return nil
}
