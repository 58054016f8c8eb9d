package crc8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	msg := []byte{0x12, 0x34, 0x56}
	buf := Seal(msg, PolyDVBS2)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0xad}, buf)
	assert.Equal(t, []byte{0x12, 0x34, 0x56}, msg)

	ok, err := Verify(buf, PolyDVBS2)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := Open(buf, PolyDVBS2)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestSealEmpty(t *testing.T) {
	buf := Seal(nil, PolyDVBS2)
	assert.Equal(t, []byte{0x00}, buf)

	got, err := Open(buf, PolyDVBS2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenMismatch(t *testing.T) {
	_, err := Open([]byte{0x12, 0x34, 0x56, 0xad}, 0xd6)
	require.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Contains(t, err.Error(), "expected 8a, got ad")

	_, err = Open(nil, PolyDVBS2)
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}
