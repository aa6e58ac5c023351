// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package client

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/exoline-go/exoline/command"
	"github.com/exoline-go/exoline/controller"
	"github.com/exoline-go/exoline/wire"
)

// ReadDPacPageRaw reads one raw 120-byte page from a DPac by manually
// supplying every parameter.
func (cl *Client) ReadDPacPageRaw(ctx context.Context, address controller.Address, fileKind controller.FileKind, loadNumber byte, page byte) ([]byte, error) {
	if fileKind != controller.VPac && fileKind != controller.BPac {
		return nil, &ArgumentError{Msg: "can only read pages from a DPac"}
	}
	req := command.ReadDPacPageRequest{LoadNumber: loadNumber, Page: page}
	data, err := cl.sendRequest(ctx, address, command.IDReadDPacPage, req)
	if err != nil {
		return nil, err
	}
	resp, err := command.DecodeReadDPacPageResponse(wire.NewDecoder(data))
	if err != nil {
		return nil, &ProtocolError{Msg: "decoding DPac page", Err: err}
	}
	return resp.Data, nil
}

// ReadDPacPage reads the single page of file that is requested,
// returning the decoded value of every non-string variable whose
// byte range falls on that page.
func (cl *Client) ReadDPacPage(ctx context.Context, address controller.Address, file controller.File, page byte) (map[controller.Variable]Variant, error) {
	return cl.readDPacInternal(ctx, address, file, &page)
}

// ReadDPac reads every page of file until the device reports
// AddressOutsideRange, returning the decoded value of every
// non-string variable in the file. AddressOutsideRange here marks the
// natural end of the file rather than a caller-visible error.
func (cl *Client) ReadDPac(ctx context.Context, address controller.Address, file controller.File) (map[controller.Variable]Variant, error) {
	return cl.readDPacInternal(ctx, address, file, nil)
}

// ReadDPacRaw reads every page of a DPac until AddressOutsideRange and
// returns the concatenated raw bytes, without needing a loaded File.
func (cl *Client) ReadDPacRaw(ctx context.Context, address controller.Address, fileKind controller.FileKind, loadNumber byte) ([]byte, error) {
	var data []byte
	for page := 0; page <= 0xFF; page++ {
		bytes, err := cl.ReadDPacPageRaw(ctx, address, fileKind, loadNumber, byte(page))
		if err != nil {
			if IsException(err, ExcAddressOutsideRange) {
				break
			}
			return nil, err
		}
		data = append(data, bytes...)
	}
	return data, nil
}

func (cl *Client) readDPacInternal(ctx context.Context, address controller.Address, file controller.File, onlyPage *byte) (map[controller.Variable]Variant, error) {
	if file.Kind() != controller.VPac && file.Kind() != controller.BPac {
		return nil, &ArgumentError{Msg: "can only read pages from a DPac"}
	}

	capHint := file.Len()
	if onlyPage != nil {
		capHint = 60
	}
	result := make(map[controller.Variable]Variant, capHint)

	var data []byte
	page := -1

	for _, v := range file.Variables() {
		if v.Kind() == controller.String {
			continue
		}

		fileOffset := int(v.Offset())
		var pageSize, pageOffset int
		switch file.Kind() {
		case controller.BPac:
			pageSize, pageOffset = v.Kind().PageSizeBPac(), fileOffset
		case controller.VPac:
			pageSize, pageOffset = v.Kind().PageSizeVPac(), fileOffset*2
		}

		if onlyPage != nil && pageOffset/120 != int(*onlyPage) {
			continue
		}

		bytes, ok, err := cl.fetchRange(ctx, address, file, onlyPage, &data, &page, pageOffset, pageSize)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		variant, ok := decodeDPacBytes(file.Kind(), v.Kind(), bytes)
		if !ok {
			continue
		}
		result[v] = variant
	}

	return result, nil
}

// fetchRange returns the pageSize bytes at pageOffset within the
// file, fetching additional pages on demand (advancing *page and
// appending to *data) until the range is available or the device
// signals AddressOutsideRange.
func (cl *Client) fetchRange(ctx context.Context, address controller.Address, file controller.File, onlyPage *byte, data *[]byte, page *int, pageOffset, pageSize int) ([]byte, bool, error) {
	for {
		dataOffset := pageOffset
		if onlyPage != nil {
			dataOffset = pageOffset % 120
		}

		if dataOffset+pageSize <= len(*data) {
			return (*data)[dataOffset : dataOffset+pageSize], true, nil
		}

		if *page >= 0xFF {
			return nil, false, nil
		}
		*page++

		fetchPage := byte(*page)
		if onlyPage != nil {
			fetchPage = *onlyPage
		}

		next, err := cl.ReadDPacPageRaw(ctx, address, file.Kind(), file.LoadNumber(), fetchPage)
		if err != nil {
			if IsException(err, ExcAddressOutsideRange) {
				// No more pages exist; remember that so later variables
				// don't probe past the end again.
				*page = 0xFF
				return nil, false, nil
			}
			return nil, false, err
		}
		if len(next) < 120 {
			padded := make([]byte, 120)
			copy(padded, next)
			next = padded
		}
		*data = append(*data, next...)
		if onlyPage != nil {
			*page = 0xFF
		}
	}
}

// decodeDPacBytes decodes the raw bytes of one variable's page range.
// VPac values carry one leading tag byte before the little-endian
// payload; BPac values are packed with no leading byte.
func decodeDPacBytes(fileKind controller.FileKind, kind controller.VariableKind, b []byte) (Variant, bool) {
	lead := 0
	if fileKind == controller.VPac {
		lead = 1
	}
	switch kind {
	case controller.Huge:
		return HugeValue(int32(binary.LittleEndian.Uint32(b[lead : lead+4]))), true
	case controller.Index:
		return IndexValue(b[lead]), true
	case controller.Integer:
		return IntegerValue(int16(binary.LittleEndian.Uint16(b[lead : lead+2]))), true
	case controller.Logic:
		return LogicValue(b[lead] != 0), true
	case controller.Real:
		return RealValue(math.Float32frombits(binary.LittleEndian.Uint32(b[lead : lead+4]))), true
	default:
		return Variant{}, false
	}
}
