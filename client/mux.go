// Copyright 2026 The exoline-go Authors.  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package client

import (
	"sync"

	"github.com/exoline-go/exoline/wire"
)

// responseResult is what a multiplexer slot is resolved with: either
// the decoded (unescaped, CRC-verified) response body, or an error —
// possibly an *Exception if the device replied with a one-byte
// exception code.
type responseResult struct {
	data []byte
	err  error
}

// mux is the FIFO request multiplexer: one slot per in-flight
// request, matched to frames strictly in arrival order because the
// wire protocol carries no correlation ID. A slot is never removed
// from the queue except by a matching frame, so an abandoned caller
// still "consumes" the next response; removing it early would
// misalign every response that follows.
type mux struct {
	c *conn

	mu      sync.Mutex
	pending []chan responseResult
}

func newMux(c *conn) *mux { return &mux{c: c} }

// enqueue reserves the next slot in FIFO order and writes the framed
// request while still holding the queue lock, so the order requests
// are enqueued in matches the order they are written in.
func (m *mux) enqueue(framedPayload []byte) (chan responseResult, error) {
	ch := make(chan responseResult, 1)

	m.mu.Lock()
	m.pending = append(m.pending, ch)
	err := m.c.writeRequest(framedPayload)
	m.mu.Unlock()

	if err != nil {
		return ch, err
	}
	return ch, nil
}

// popFront removes and returns the oldest pending slot, if any.
func (m *mux) popFront() (chan responseResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil, false
	}
	ch := m.pending[0]
	m.pending = m.pending[1:]
	return ch, true
}

// drainWithError completes every still-pending slot with err. Used
// once the read loop observes a transport failure: every caller
// currently waiting must be released, since no more frames will ever
// arrive to satisfy them.
func (m *mux) drainWithError(err error) {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, ch := range pending {
		ch <- responseResult{err: err}
	}
}

// readLoop runs for the lifetime of the connection, matching each
// incoming frame to the oldest pending slot. It returns (and the
// connection is considered dead) once the transport fails or closes.
// On the way out it closes the socket, so a write issued after the
// stream died fails and its caller gets that error back instead of
// waiting on a slot nothing will ever complete.
func (m *mux) readLoop() {
	defer m.c.close()
	for {
		raw, err := m.c.readResponse()
		if err != nil {
			if err == errConnClosed {
				m.drainWithError(&IOError{Err: errConnClosed})
			} else {
				m.drainWithError(err)
			}
			return
		}

		ch, ok := m.popFront()
		if !ok {
			// A frame arrived with nobody waiting for it: the device is
			// either misbehaving or out of sync with us. The stream can
			// no longer be trusted to pair frames to requests, so stop
			// servicing the connection.
			return
		}

		data, err := decodeResponseBody(raw)
		ch <- responseResult{data: data, err: err}
	}
}

// decodeResponseBody unescapes a raw response. A one-byte payload is
// an exception code and carries no CRC, so that case must be checked
// before any CRC handling runs. Anything else must carry a valid
// trailing CRC, which is verified and stripped here.
func decodeResponseBody(raw []byte) ([]byte, error) {
	unescaped := wire.Unescape(raw)
	if len(unescaped) == 1 {
		return nil, &Exception{Code: unescaped[0]}
	}
	body, ok := wire.VerifyAndStripCRC(unescaped)
	if !ok {
		return nil, &ProtocolError{Msg: "CRC mismatch"}
	}
	return body, nil
}
