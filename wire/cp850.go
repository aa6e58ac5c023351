// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package wire

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrStringTooLong is returned by EncodeCP850 when the encoded form of
// a string would exceed the protocol's 127-byte string limit.
type ErrStringTooLong struct {
	Length int
}

func (e *ErrStringTooLong) Error() string {
	return fmt.Sprintf("exoline: encoded string is %d bytes, limit is 127", e.Length)
}

// EncodeCP850 transcodes s to code page 850, the encoding every
// EXOline string field uses. Unmappable runes are replaced lossily by
// the charmap encoder, matching the device's own behavior. It fails if
// the encoded form does not fit in 127 bytes.
func EncodeCP850(s string) ([]byte, error) {
	enc := encoding.ReplaceUnsupported(charmap.CodePage850.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		// With ReplaceUnsupported in front, the charmap encoder has no
		// remaining failure mode.
		return nil, err
	}
	if len(b) > 127 {
		return nil, &ErrStringTooLong{Length: len(b)}
	}
	return b, nil
}

// DecodeCP850 transcodes CP850 bytes to a Go string. b is truncated to
// at most 127 bytes before decoding, matching the protocol's string
// length cap.
func DecodeCP850(b []byte) string {
	if len(b) > 127 {
		b = b[:127]
	}
	out, err := charmap.CodePage850.NewDecoder().Bytes(b)
	if err != nil {
		// CodePage850 maps every byte value, decoding never fails.
		return string(b)
	}
	return string(out)
}
