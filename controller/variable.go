// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package controller models a loaded controller configuration: the set
// of Task, DPac (VPac/BPac) and Text files a device exposes, and the
// variables defined inside them. A Controller is immutable once built
// and safe to share across goroutines.
package controller

import "fmt"

// FileKind identifies which of the four file families a File belongs
// to.
type FileKind byte

const (
	BPac FileKind = iota
	Task
	Text
	VPac
)

func (k FileKind) String() string {
	switch k {
	case BPac:
		return "BPac"
	case Task:
		return "Task"
	case Text:
		return "Text"
	case VPac:
		return "VPac"
	default:
		return fmt.Sprintf("FileKind(%d)", byte(k))
	}
}

// VariableKind is the primitive datatype a Variable holds on the
// device.
type VariableKind byte

const (
	Huge VariableKind = iota
	Index
	Integer
	Logic
	Real
	String
)

func (k VariableKind) String() string {
	switch k {
	case Huge:
		return "Huge"
	case Index:
		return "Index"
	case Integer:
		return "Integer"
	case Logic:
		return "Logic"
	case Real:
		return "Real"
	case String:
		return "String"
	default:
		return fmt.Sprintf("VariableKind(%d)", byte(k))
	}
}

// Variable holds everything required to read or write a value from a
// device. It is produced on demand from a File; several Variable
// values may point back at the same underlying FileBody.
type Variable struct {
	body       *FileBody
	fileName   string
	kind       VariableKind
	offset     uint32
	comment    string
	hasComment bool
	name       string
	hasName    bool
	loadNumber byte
}

// FileKind is the kind of file the variable is defined in.
func (v Variable) FileKind() FileKind { return v.body.kind }

// FileName is the name of the file the variable is defined in.
func (v Variable) FileName() string { return v.fileName }

// File returns the file the variable is defined in.
func (v Variable) File() File {
	return File{body: v.body, fileKey: v.fileName, loadNumber: v.loadNumber}
}

// LoadNumber is the load number of the file the variable is defined
// in.
func (v Variable) LoadNumber() byte { return v.loadNumber }

// Kind is the datatype of the variable.
func (v Variable) Kind() VariableKind { return v.kind }

// Name is the variable's own name within its file. Only present when
// the controller was loaded with a name-preserving load mode.
func (v Variable) Name() (string, bool) { return v.name, v.hasName }

// FullName is the fully qualified "File.Name" form. Only present under
// the same conditions as Name.
func (v Variable) FullName() (string, bool) {
	if !v.hasName {
		return "", false
	}
	return v.fileName + "." + v.name, true
}

// Comment is the variable's declared comment, present only when the
// controller was loaded with comments retained.
func (v Variable) Comment() (string, bool) { return v.comment, v.hasComment }

// Offset is the byte offset within the file. It is a u24 on the wire;
// callers never see a value above 0xFFFFFF.
func (v Variable) Offset() uint32 { return v.offset }

// Page is the DPac page the variable resides on. Task and Text files
// always return 0.
func (v Variable) Page() uint32 {
	switch v.body.kind {
	case VPac:
		return v.offset / 60
	case BPac:
		return v.offset / 120
	default:
		return 0
	}
}

// Equal reports whether two variables would read the same value from
// a device: same file kind, load number, datatype and offset. Names
// and comments are not considered.
func (v Variable) Equal(other Variable) bool {
	return v.body.kind == other.body.kind &&
		v.loadNumber == other.loadNumber &&
		v.kind == other.kind &&
		v.offset == other.offset
}

// HashKey returns a value suitable for grouping equal Variables (per
// Equal) into a map, e.g. map[uint64][]Variable{v.HashKey(): ...}.
func (v Variable) HashKey() uint64 {
	return uint64(v.body.kind)<<40 | uint64(v.loadNumber)<<32 | uint64(v.kind)<<24 | uint64(v.offset)
}
