// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package client

import (
	"context"
	"fmt"

	"github.com/exoline-go/exoline/command"
	"github.com/exoline-go/exoline/controller"
	"github.com/exoline-go/exoline/wire"
)

// ReadVariable reads the current value of a variable looked up from a
// loaded Controller.
func (cl *Client) ReadVariable(ctx context.Context, address controller.Address, v controller.Variable) (Variant, error) {
	return cl.ReadVariableRaw(ctx, address, v.FileKind(), v.LoadNumber(), v.Kind(), v.Offset())
}

// ReadVariableRaw reads a single variable by manually supplying every
// parameter, without needing a loaded Controller.
func (cl *Client) ReadVariableRaw(ctx context.Context, address controller.Address, fileKind controller.FileKind, loadNumber byte, kind controller.VariableKind, offset uint32) (Variant, error) {
	if fileKind == controller.Text {
		if kind != controller.String {
			return Variant{}, &ArgumentError{Msg: "can only read strings from text files"}
		}
		return cl.readOne(ctx, address, command.FileKindVPac, loadNumber, offset, controller.String)
	}
	if fileKind == controller.BPac && kind == controller.String {
		return Variant{}, &ArgumentError{Msg: "can't read a string from a BPac"}
	}
	return cl.readOne(ctx, address, toCommandFileKind(fileKind), loadNumber, offset, kind)
}

func (cl *Client) readOne(ctx context.Context, address controller.Address, fileKind command.FileKind, loadNumber byte, offset uint32, kind controller.VariableKind) (Variant, error) {
	req := command.ReadRequest{Kind: fileKind, LoadNumber: loadNumber, Offset: offset}

	switch kind {
	case controller.Huge:
		data, err := cl.sendRequest(ctx, address, command.IDReadHuge, req)
		if err != nil {
			return Variant{}, err
		}
		resp, err := command.DecodeReadHugeResponse(wire.NewDecoder(data))
		return HugeValue(resp.Value), decodeErr(err)
	case controller.Index:
		data, err := cl.sendRequest(ctx, address, command.IDReadIndex, req)
		if err != nil {
			return Variant{}, err
		}
		resp, err := command.DecodeReadIndexResponse(wire.NewDecoder(data))
		return IndexValue(resp.Value), decodeErr(err)
	case controller.Integer:
		data, err := cl.sendRequest(ctx, address, command.IDReadInteger, req)
		if err != nil {
			return Variant{}, err
		}
		resp, err := command.DecodeReadIntegerResponse(wire.NewDecoder(data))
		return IntegerValue(resp.Value), decodeErr(err)
	case controller.Logic:
		data, err := cl.sendRequest(ctx, address, command.IDReadLogic, req)
		if err != nil {
			return Variant{}, err
		}
		resp, err := command.DecodeReadLogicResponse(wire.NewDecoder(data))
		return LogicValue(resp.Value), decodeErr(err)
	case controller.Real:
		data, err := cl.sendRequest(ctx, address, command.IDReadReal, req)
		if err != nil {
			return Variant{}, err
		}
		resp, err := command.DecodeReadRealResponse(wire.NewDecoder(data))
		return RealValue(resp.Value), decodeErr(err)
	case controller.String:
		data, err := cl.sendRequest(ctx, address, command.IDReadString, req)
		if err != nil {
			return Variant{}, err
		}
		resp, err := command.DecodeReadStringResponse(wire.NewDecoder(data))
		return StringValue(resp.Value), decodeErr(err)
	default:
		return Variant{}, &ArgumentError{Msg: fmt.Sprintf("unknown variable kind %v", kind)}
	}
}

func decodeErr(err error) error {
	if err == nil {
		return nil
	}
	return &ProtocolError{Msg: "decoding read response", Err: err}
}

// WriteVariable writes value to a variable looked up from a loaded
// Controller.
func (cl *Client) WriteVariable(ctx context.Context, address controller.Address, v controller.Variable, value Variant) error {
	return cl.WriteVariableRaw(ctx, address, v.FileKind(), v.LoadNumber(), v.Kind(), v.Offset(), value)
}

// WriteVariableRaw writes a single variable by manually supplying
// every parameter.
func (cl *Client) WriteVariableRaw(ctx context.Context, address controller.Address, fileKind controller.FileKind, loadNumber byte, kind controller.VariableKind, offset uint32, value Variant) error {
	if fileKind == controller.Text {
		if kind != controller.String {
			return &ArgumentError{Msg: "can only write strings to text files"}
		}
		return cl.writeOne(ctx, address, command.FileKindVPac, loadNumber, offset, controller.String, value)
	}
	if fileKind == controller.BPac && kind == controller.String {
		return &ArgumentError{Msg: "can't write a string to a BPac"}
	}
	return cl.writeOne(ctx, address, toCommandFileKind(fileKind), loadNumber, offset, kind, value)
}

func (cl *Client) writeOne(ctx context.Context, address controller.Address, fileKind command.FileKind, loadNumber byte, offset uint32, kind controller.VariableKind, value Variant) error {
	if value.Kind() != kind {
		return &ArgumentError{Msg: "the variable and value kind doesn't match"}
	}
	switch value.Kind() {
	case controller.Huge:
		v, _ := value.Huge()
		_, err := cl.sendRequest(ctx, address, command.IDWriteHuge, command.WriteHugeRequest{Kind: fileKind, LoadNumber: loadNumber, Offset: offset, Value: v})
		return err
	case controller.Index:
		v, _ := value.Index()
		_, err := cl.sendRequest(ctx, address, command.IDWriteIndex, command.WriteIndexRequest{Kind: fileKind, LoadNumber: loadNumber, Offset: offset, Value: v})
		return err
	case controller.Integer:
		v, _ := value.Integer()
		_, err := cl.sendRequest(ctx, address, command.IDWriteInteger, command.WriteIntegerRequest{Kind: fileKind, LoadNumber: loadNumber, Offset: offset, Value: v})
		return err
	case controller.Logic:
		v, _ := value.Logic()
		_, err := cl.sendRequest(ctx, address, command.IDWriteLogic, command.WriteLogicRequest{Kind: fileKind, LoadNumber: loadNumber, Offset: offset, Value: v})
		return err
	case controller.Real:
		v, _ := value.Real()
		_, err := cl.sendRequest(ctx, address, command.IDWriteReal, command.WriteRealRequest{Kind: fileKind, LoadNumber: loadNumber, Offset: offset, Value: v})
		return err
	case controller.String:
		v, _ := value.String()
		_, err := cl.sendRequest(ctx, address, command.IDWriteString, command.WriteStringRequest{Kind: fileKind, LoadNumber: loadNumber, Offset: offset, Value: v})
		return err
	default:
		return &ArgumentError{Msg: "value carries no recognised variant"}
	}
}
