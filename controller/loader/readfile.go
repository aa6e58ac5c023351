// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package loader

import (
	"os"

	"golang.org/x/text/encoding/charmap"
)

// readFileCP850 reads path and transcodes it from code page 850, the
// encoding every controller configuration file is stored in. Unlike
// wire.DecodeCP850, which caps its input at the protocol's 127-byte
// string limit, this decodes a whole file of arbitrary size.
func readFileCP850(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	out, err := charmap.CodePage850.NewDecoder().Bytes(raw)
	if err != nil {
		// CodePage850 maps every byte value, decoding never fails.
		return string(raw), nil
	}
	return string(out), nil
}
