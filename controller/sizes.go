// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package controller

// ParseVariableKind maps a one-character kind tag from a text file
// declaration (H/X/I/L/R/$, case-insensitive) to a VariableKind.
func ParseVariableKind(c byte) (VariableKind, bool) {
	switch c {
	case 'H', 'h':
		return Huge, true
	case 'X', 'x':
		return Index, true
	case 'I', 'i':
		return Integer, true
	case 'L', 'l':
		return Logic, true
	case 'R', 'r':
		return Real, true
	case '$':
		return String, true
	default:
		return 0, false
	}
}

// OffsetSizeVPac is how many bytes a variable of this kind advances
// the running offset by inside a VPac/Task layout.
func (k VariableKind) OffsetSizeVPac() uint32 {
	switch k {
	case Huge, Real, String:
		return 3
	case Index, Logic:
		return 1
	case Integer:
		return 2
	default:
		return 0
	}
}

// PageSizeVPac is how many raw bytes a value of this kind occupies
// once read back off a VPac page, twice its OffsetSizeVPac. The value
// starts with one leading tag byte followed by the little-endian
// payload.
func (k VariableKind) PageSizeVPac() int {
	switch k {
	case Huge, Real, String:
		return 6
	case Index, Logic:
		return 2
	case Integer:
		return 4
	default:
		return 0
	}
}

// OffsetSizeBPac and PageSizeBPac are identical for BPac: records are
// tightly packed, so a variable's footprint and advance step are the
// same value.
func (k VariableKind) PageSizeBPac() int {
	switch k {
	case Huge, Real:
		return 4
	case Index, Logic, String:
		return 1
	case Integer:
		return 2
	default:
		return 0
	}
}

// OffsetSizeBPac is an alias for PageSizeBPac, named for use at parse
// time rather than at page-assembly time.
func (k VariableKind) OffsetSizeBPac() uint32 { return uint32(k.PageSizeBPac()) }
