// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package command

import "github.com/exoline-go/exoline/wire"

// ReadRequest is the request body shared by every Read* command:
// [file_kind(1), load_number(1), offset(u24)].
type ReadRequest struct {
	Kind       FileKind
	LoadNumber byte
	Offset     uint32
}

// Encode writes the request body.
func (r ReadRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.LoadNumber)
	e.WriteU24(r.Offset)
	return nil
}

// DecodeReadRequest parses a ReadRequest body (used by tests and any
// server-side simulator).
func DecodeReadRequest(d *wire.Decoder) (ReadRequest, error) {
	var r ReadRequest
	kind, err := d.ReadU8()
	if err != nil {
		return r, err
	}
	r.Kind = FileKind(kind)
	if r.LoadNumber, err = d.ReadU8(); err != nil {
		return r, err
	}
	if r.Offset, err = d.ReadU24(); err != nil {
		return r, err
	}
	return r, nil
}

// ReadHugeResponse carries the single i32 payload of a ReadHuge reply.
type ReadHugeResponse struct{ Value int32 }

// Encode writes the response body.
func (r ReadHugeResponse) Encode(e *wire.Encoder) error { e.WriteI32(r.Value); return nil }

// DecodeReadHugeResponse parses a ReadHuge reply.
func DecodeReadHugeResponse(d *wire.Decoder) (ReadHugeResponse, error) {
	v, err := d.ReadI32()
	return ReadHugeResponse{Value: v}, err
}

// ReadIndexResponse carries the single u8 payload of a ReadIndex reply.
type ReadIndexResponse struct{ Value byte }

// Encode writes the response body.
func (r ReadIndexResponse) Encode(e *wire.Encoder) error { e.WriteU8(r.Value); return nil }

// DecodeReadIndexResponse parses a ReadIndex reply.
func DecodeReadIndexResponse(d *wire.Decoder) (ReadIndexResponse, error) {
	v, err := d.ReadU8()
	return ReadIndexResponse{Value: v}, err
}

// ReadIntegerResponse carries the single i16 payload of a ReadInteger
// reply.
type ReadIntegerResponse struct{ Value int16 }

// Encode writes the response body.
func (r ReadIntegerResponse) Encode(e *wire.Encoder) error { e.WriteI16(r.Value); return nil }

// DecodeReadIntegerResponse parses a ReadInteger reply.
func DecodeReadIntegerResponse(d *wire.Decoder) (ReadIntegerResponse, error) {
	v, err := d.ReadI16()
	return ReadIntegerResponse{Value: v}, err
}

// ReadLogicResponse carries the single bool payload of a ReadLogic
// reply, encoded as one byte (non-zero is true).
type ReadLogicResponse struct{ Value bool }

// Encode writes the response body.
func (r ReadLogicResponse) Encode(e *wire.Encoder) error {
	var b byte
	if r.Value {
		b = 1
	}
	e.WriteU8(b)
	return nil
}

// DecodeReadLogicResponse parses a ReadLogic reply.
func DecodeReadLogicResponse(d *wire.Decoder) (ReadLogicResponse, error) {
	v, err := d.ReadU8()
	return ReadLogicResponse{Value: v != 0}, err
}

// ReadRealResponse carries the single f32 payload of a ReadReal reply.
type ReadRealResponse struct{ Value float32 }

// Encode writes the response body.
func (r ReadRealResponse) Encode(e *wire.Encoder) error { e.WriteF32(r.Value); return nil }

// DecodeReadRealResponse parses a ReadReal reply.
func DecodeReadRealResponse(d *wire.Decoder) (ReadRealResponse, error) {
	v, err := d.ReadF32()
	return ReadRealResponse{Value: v}, err
}

// ReadStringResponse carries the CP850 string payload of a ReadString
// reply. Its length is implicit: the decoder consumes every remaining
// byte, capped at 127.
type ReadStringResponse struct{ Value string }

// Encode writes the response body.
func (r ReadStringResponse) Encode(e *wire.Encoder) error { return e.WriteString(r.Value) }

// DecodeReadStringResponse parses a ReadString reply.
func DecodeReadStringResponse(d *wire.Decoder) (ReadStringResponse, error) {
	v, err := d.ReadString()
	return ReadStringResponse{Value: v}, err
}
