// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrShortBuffer is returned by Decoder reads that run past the end of
// the underlying buffer.
var ErrShortBuffer = errors.New("exoline: short buffer")

// Encoder accumulates the little-endian byte encoding of a request or
// response body. The zero value is ready to use.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an empty Encoder with a small preallocated
// backing buffer.
func NewEncoder() *Encoder {
	return &Encoder{buf: make([]byte, 0, 16)}
}

// Bytes returns the accumulated bytes.
func (e *Encoder) Bytes() []byte { return e.buf }

// WriteU8 appends a single byte.
func (e *Encoder) WriteU8(v byte) { e.buf = append(e.buf, v) }

// WriteU16 appends v little-endian.
func (e *Encoder) WriteU16(v uint16) {
	e.buf = append(e.buf, byte(v), byte(v>>8))
}

// WriteI16 appends v little-endian.
func (e *Encoder) WriteI16(v int16) { e.WriteU16(uint16(v)) }

// WriteU24 appends the low three bytes of v, little-endian.
func (e *Encoder) WriteU24(v uint32) {
	e.buf = append(e.buf, byte(v), byte(v>>8), byte(v>>16))
}

// WriteI32 appends v little-endian.
func (e *Encoder) WriteI32(v int32) {
	e.buf = append(e.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// WriteF32 appends the IEEE-754 bits of v, little-endian.
func (e *Encoder) WriteF32(v float32) {
	e.WriteI32(int32(math.Float32bits(v)))
}

// WriteBytes appends raw bytes verbatim.
func (e *Encoder) WriteBytes(b []byte) { e.buf = append(e.buf, b...) }

// WriteString CP850-encodes s and appends it. Returns an error if the
// encoded form would exceed 127 bytes (see EncodeCP850).
func (e *Encoder) WriteString(s string) error {
	b, err := EncodeCP850(s)
	if err != nil {
		return err
	}
	e.WriteBytes(b)
	return nil
}

// Decoder reads little-endian primitives off a fixed byte slice,
// advancing a cursor as it goes.
type Decoder struct {
	buf []byte
}

// NewDecoder wraps buf for sequential decoding.
func NewDecoder(buf []byte) *Decoder { return &Decoder{buf: buf} }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) }

func (d *Decoder) take(n int) ([]byte, error) {
	if len(d.buf) < n {
		return nil, ErrShortBuffer
	}
	b := d.buf[:n]
	d.buf = d.buf[n:]
	return b, nil
}

// ReadU8 reads one byte.
func (d *Decoder) ReadU8() (byte, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads two little-endian bytes.
func (d *Decoder) ReadU16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadI16 reads two little-endian bytes as a signed integer.
func (d *Decoder) ReadI16() (int16, error) {
	v, err := d.ReadU16()
	return int16(v), err
}

// ReadU24 reads three little-endian bytes, zero-extended to 32 bits.
func (d *Decoder) ReadU24() (uint32, error) {
	b, err := d.take(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
}

// ReadI32 reads four little-endian bytes.
func (d *Decoder) ReadI32() (int32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// ReadF32 reads four little-endian bytes as an IEEE-754 float.
func (d *Decoder) ReadF32() (float32, error) {
	v, err := d.ReadI32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

// ReadBytes reads n raw bytes.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadAll reads and returns every remaining byte.
func (d *Decoder) ReadAll() []byte {
	b := d.buf
	d.buf = nil
	return b
}

// ReadString consumes every remaining byte (capped at 127, per the
// protocol's string length limit) and CP850-decodes it.
func (d *Decoder) ReadString() (string, error) {
	n := d.Remaining()
	if n > 127 {
		n = 127
	}
	b, err := d.take(n)
	if err != nil {
		return "", err
	}
	return DecodeCP850(b), nil
}
