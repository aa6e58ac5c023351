// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package parse

import (
	"strconv"
	"strings"

	"github.com/exoline-go/exoline/controller"
)

// ParseVariableLine decodes a single variable declaration of the form
// "K[:len]Name[(arraylen)]", used by Task locals, VPac variable lists,
// and Text string lists. Any trailing "=value" is discarded
// before parsing, mirroring the grammar's tolerance for an (unused)
// default value on the same line.
func ParseVariableLine(line string) (kind controller.VariableKind, name string, arrayLen uint32, hasArrayLen bool, err error) {
	key, _, _ := splitOnceTrim(line, '=')
	if key == "" {
		return 0, "", 0, false, &InvalidVariableError{Msg: "missing variable declaration"}
	}

	kind, ok := controller.ParseVariableKind(key[0])
	if !ok {
		return 0, "", 0, false, &InvalidVariableError{Msg: "invalid variable kind"}
	}
	rest := key[1:]

	// Discard an optional ":len" string-length annotation: a leading
	// ':' followed by decimal digits, immediately followed by the name.
	if strings.HasPrefix(rest, ":") {
		digits := 1
		for digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
			digits++
		}
		rest = rest[digits:]
	}

	rest = trimASCII(rest)
	name = rest
	if i := strings.IndexByte(rest, '('); i >= 0 {
		name = trimASCII(rest[:i])
		suffix := trimASCII(rest[i+1:])
		suffix, ok := strings.CutSuffix(suffix, ")")
		if !ok {
			return 0, "", 0, false, &InvalidVariableError{Msg: "invalid array syntax"}
		}
		n, convErr := strconv.ParseUint(trimASCII(suffix), 10, 32)
		if convErr != nil {
			return 0, "", 0, false, &InvalidVariableError{Msg: "invalid array syntax"}
		}
		arrayLen, hasArrayLen = uint32(n), true
	}

	if name == "" {
		return 0, "", 0, false, &InvalidVariableError{Msg: "missing variable name"}
	}

	return kind, name, arrayLen, hasArrayLen, nil
}
