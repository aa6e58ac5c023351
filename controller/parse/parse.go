// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package parse tokenizes and decodes the text formats a controller's
// configuration is stored in: plain INI-like files (Exists.Mod,
// TcpIpSettings.Exo), brace-delimited section files (Load.Mdl and
// every Task/VPac/BPac/Text file body), and the per-file-kind variable
// layouts those bodies declare.
package parse

import "strings"

// InvalidVariableError reports a malformed variable declaration line:
// an unrecognised kind character or bad array syntax.
type InvalidVariableError struct {
	Msg string
}

func (e *InvalidVariableError) Error() string { return "exoline: invalid variable: " + e.Msg }

// InvalidSyntaxError reports a structural problem with a file: a
// missing required section, or a section defined more than once.
type InvalidSyntaxError struct {
	Msg string
}

func (e *InvalidSyntaxError) Error() string { return "exoline: invalid syntax: " + e.Msg }

// splitOnceTrim splits s on the first occurrence of sep, trimming
// ASCII whitespace off both halves. The second return is false when
// sep does not occur, mirroring the distinction between "key" and
// "key=" that several formats rely on.
func splitOnceTrim(s string, sep byte) (head, tail string, hasTail bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return trimASCII(s), "", false
	}
	return trimASCII(s[:i]), trimASCII(s[i+1:]), true
}

func trimASCII(s string) string {
	return strings.Trim(s, " \t\r\n\v\f")
}
