// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package command is the EXOline command catalog: one Go type per
// request/response payload shape, each able to encode itself onto a
// wire.Encoder and decode itself from a wire.Decoder.
package command

// ID identifies a command on the wire. It is the first byte of a
// request's command-specific body, right after (PLA, ELA).
type ID byte

// The commands this client speaks.
const (
	IDReadHuge            ID = 0x01
	IDReadInteger         ID = 0x02
	IDReadIndex           ID = 0x03
	IDReadLogic           ID = 0x04
	IDReadReal            ID = 0x05
	IDReadString          ID = 0x06
	IDWriteHuge           ID = 0x11
	IDWriteIndex          ID = 0x12
	IDWriteInteger        ID = 0x13
	IDWriteLogic          ID = 0x14
	IDWriteReal           ID = 0x15
	IDWriteString         ID = 0x16
	IDReadDPacPage        ID = 0x20
	IDGetControllerID     ID = 0x30
	IDReadPartAttrHeader  ID = 0x40
)

// FileKind is the on-wire encoding of a controller file kind. Text
// files are addressed as VPac and therefore have no entry of their
// own here.
type FileKind byte

// The file kind codes understood by every read/write command.
const (
	FileKindVPac FileKind = 0x00
	FileKindTask FileKind = 0x01
	FileKindBPac FileKind = 0x02
)

// PartAttrHeaderKind selects the primitive returned by
// ReadPartAttrHeader.
type PartAttrHeaderKind byte

// The three attribute kinds a partition header can report.
const (
	PartAttrHeaderHuge   PartAttrHeaderKind = 0x10
	PartAttrHeaderReal   PartAttrHeaderKind = 0x12
	PartAttrHeaderString PartAttrHeaderKind = 0x14
)
