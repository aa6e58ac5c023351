// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package command

import "github.com/exoline-go/exoline/wire"

// ReadDPacPageRequest is the body of a ReadDPacPage command:
// [load_number(1), page(1)].
type ReadDPacPageRequest struct {
	LoadNumber byte
	Page       byte
}

// Encode writes the request body.
func (r ReadDPacPageRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(r.LoadNumber)
	e.WriteU8(r.Page)
	return nil
}

// ReadDPacPageResponse carries up to 120 raw bytes of a DPac page.
type ReadDPacPageResponse struct{ Data []byte }

// Encode writes the response body.
func (r ReadDPacPageResponse) Encode(e *wire.Encoder) error { e.WriteBytes(r.Data); return nil }

// DecodeReadDPacPageResponse parses a ReadDPacPage reply: the page
// bytes are whatever remains in the buffer.
func DecodeReadDPacPageResponse(d *wire.Decoder) (ReadDPacPageResponse, error) {
	return ReadDPacPageResponse{Data: d.ReadAll()}, nil
}

// GetControllerIDResponse carries the controller's model/version
// string.
type GetControllerIDResponse struct{ ID string }

// Encode writes the response body.
func (r GetControllerIDResponse) Encode(e *wire.Encoder) error { return e.WriteString(r.ID) }

// DecodeGetControllerIDResponse parses a GetControllerId reply.
func DecodeGetControllerIDResponse(d *wire.Decoder) (GetControllerIDResponse, error) {
	v, err := d.ReadString()
	return GetControllerIDResponse{ID: v}, err
}

// ReadPartAttrHeaderRequest is the body of a ReadPartAttrHeader
// command: [attr_kind(1), partition_no(1), attribute_id(u16)].
type ReadPartAttrHeaderRequest struct {
	Kind       PartAttrHeaderKind
	Partition  byte
	AttributeID uint16
}

// Encode writes the request body.
func (r ReadPartAttrHeaderRequest) Encode(e *wire.Encoder) error {
	e.WriteU8(byte(r.Kind))
	e.WriteU8(r.Partition)
	e.WriteU16(r.AttributeID)
	return nil
}
