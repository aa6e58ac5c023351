package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00, 0x10, 0xFF},
		{BeginRequest, 0x41, escapeValue},
		{BeginResponse, EndMessage, escapeValue, escapeValue},
	}
	for _, c := range cases {
		escaped := Escape(c)
		assert.Equal(t, c, Unescape(escaped))
	}
}

func TestEscapeKnownBytes(t *testing.T) {
	in := []byte{BeginRequest, 0x41, escapeValue}
	want := []byte{escapeValue, 0xFD, 0x41, escapeValue, 0xE4}
	got := Escape(in)
	require.Equal(t, want, got)
	require.Equal(t, in, Unescape(got))
}

func TestEscapeNoopReturnsSameBacking(t *testing.T) {
	in := []byte{0x10, 0x20, 0x30}
	out := Escape(in)
	assert.Equal(t, in, out)
	assert.True(t, &in[0] == &out[0], "Escape should return the input slice when nothing needs escaping")
}

func TestCRC(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	withCRC := AppendCRC(append([]byte{}, data...))
	body, ok := VerifyAndStripCRC(withCRC)
	require.True(t, ok)
	assert.Equal(t, data, body)

	for i := range withCRC {
		corrupt := append([]byte{}, withCRC...)
		corrupt[i] ^= 0xFF
		_, ok := VerifyAndStripCRC(corrupt)
		assert.False(t, ok, "flipping byte %d should invalidate CRC", i)
	}
}

func TestVerifyAndStripCRCEmpty(t *testing.T) {
	_, ok := VerifyAndStripCRC(nil)
	assert.False(t, ok)
}
