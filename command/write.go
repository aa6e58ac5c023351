// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package command

import "github.com/exoline-go/exoline/wire"

// WriteHugeRequest is the body of a WriteHuge command:
// [file_kind(1), load_number(1), offset(u24), value(i32)].
type WriteHugeRequest struct {
	Kind       FileKind
	LoadNumber byte
	Offset     uint32
	Value      int32
}

// Encode writes the request body.
func (r WriteHugeRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.LoadNumber)
	e.WriteU24(r.Offset)
	e.WriteI32(r.Value)
	return nil
}

// WriteIndexRequest is the body of a WriteIndex command.
type WriteIndexRequest struct {
	Kind       FileKind
	LoadNumber byte
	Offset     uint32
	Value      byte
}

// Encode writes the request body.
func (r WriteIndexRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.LoadNumber)
	e.WriteU24(r.Offset)
	e.WriteU8(r.Value)
	return nil
}

// WriteIntegerRequest is the body of a WriteInteger command.
type WriteIntegerRequest struct {
	Kind       FileKind
	LoadNumber byte
	Offset     uint32
	Value      int16
}

// Encode writes the request body.
func (r WriteIntegerRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.LoadNumber)
	e.WriteU24(r.Offset)
	e.WriteI16(r.Value)
	return nil
}

// WriteLogicRequest is the body of a WriteLogic command.
type WriteLogicRequest struct {
	Kind       FileKind
	LoadNumber byte
	Offset     uint32
	Value      bool
}

// Encode writes the request body.
func (r WriteLogicRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.LoadNumber)
	e.WriteU24(r.Offset)
	var b byte
	if r.Value {
		b = 1
	}
	e.WriteU8(b)
	return nil
}

// WriteRealRequest is the body of a WriteReal command.
type WriteRealRequest struct {
	Kind       FileKind
	LoadNumber byte
	Offset     uint32
	Value      float32
}

// Encode writes the request body.
func (r WriteRealRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.LoadNumber)
	e.WriteU24(r.Offset)
	e.WriteF32(r.Value)
	return nil
}

// WriteStringRequest is the body of a WriteString command.
type WriteStringRequest struct {
	Kind       FileKind
	LoadNumber byte
	Offset     uint32
	Value      string
}

// Encode writes the request body.
func (r WriteStringRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.LoadNumber)
	e.WriteU24(r.Offset)
	return e.WriteString(r.Value)
}
