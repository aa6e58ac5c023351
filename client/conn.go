// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package client

import (
	"bufio"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/exoline-go/exoline/wire"
)

// errConnClosed is returned by readResponse once the peer has closed
// its half of the stream in an orderly way.
var errConnClosed = errors.New("exoline: connection closed")

// conn wraps a TCP stream with the framing rules from the wire
// package: readResponse blocks for one complete (still-escaped) frame
// body, writeRequest frames and writes a request body atomically.
// The read and write halves are independently locked so a blocked
// write never stalls concurrent reads or vice versa, mirroring the
// split-socket pattern the connection is built on.
type conn struct {
	nc net.Conn

	readMu sync.Mutex
	r      *bufio.Reader

	writeMu sync.Mutex
}

func newConn(nc net.Conn) *conn {
	return &conn{nc: nc, r: bufio.NewReaderSize(nc, 256)}
}

// readResponse returns the raw (escaped, CRC still attached) payload
// of one response frame. It returns errConnClosed on a clean EOF
// between frames, and a *ProtocolError for any framing violation.
func (c *conn) readResponse() ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	var buf []byte
	inFrame := false
	for {
		b, err := c.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && !inFrame {
				return nil, errConnClosed
			}
			return nil, &IOError{Err: err}
		}

		switch b {
		case wire.BeginResponse:
			if inFrame {
				return nil, &ProtocolError{Msg: "nested response start"}
			}
			inFrame = true
			buf = make([]byte, 0, 16)
		case wire.BeginRequest:
			return nil, &ProtocolError{Msg: "unexpected request marker on response stream"}
		case wire.EndMessage:
			if !inFrame {
				return nil, &ProtocolError{Msg: "end marker outside frame"}
			}
			return buf, nil
		default:
			if !inFrame {
				return nil, &ProtocolError{Msg: "byte outside frame"}
			}
			if len(buf) >= MaxFrameBytes {
				return nil, &ProtocolError{Msg: "reading response", Err: &wire.ErrFrameTooLarge{Limit: MaxFrameBytes}}
			}
			buf = append(buf, b)
		}
	}
}

// writeRequest frames payload (already escaped, CRC attached) between
// the request markers and writes it in one locked call.
func (c *conn) writeRequest(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	framed := wire.FrameRequest(payload)
	if _, err := c.nc.Write(framed); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

func (c *conn) close() error { return c.nc.Close() }
