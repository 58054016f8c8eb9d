package crc8

import (
	"errors"
	"fmt"
)

// ErrChecksumMismatch is wrapped by Open when the trailing byte does not
// match the payload.
var ErrChecksumMismatch = errors.New("crc8: checksum mismatch")

// Seal returns a new buffer holding msg followed by its checksum under poly.
// msg may be empty.
func Seal(msg []byte, poly byte) []byte {
	buf := make([]byte, len(msg)+1)
	copy(buf, msg)
	buf[len(msg)] = checksum(poly, msg)
	return buf
}

// Open checks the trailing checksum of buf and returns the payload before it.
// The payload aliases buf.
func Open(buf []byte, poly byte) ([]byte, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyBuffer
	}

	msg := buf[:len(buf)-1]
	got := buf[len(buf)-1]

	// check crc
	if expected := checksum(poly, msg); expected != got {
		return nil, fmt.Errorf("%w: expected %.2x, got %.2x", ErrChecksumMismatch, expected, got)
	}

	return msg, nil
}
