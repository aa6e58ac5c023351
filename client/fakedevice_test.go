package client

import (
	"bufio"
	"net"

	"github.com/exoline-go/exoline/command"
	"github.com/exoline-go/exoline/wire"
)

// fakeDevice stands in for an EXOline device on the far end of a
// net.Pipe: it decodes requests the same way a real controller would
// and lets the test script craft whatever response it likes.
type fakeDevice struct {
	nc net.Conn
	r  *bufio.Reader
}

func newFakeDevice(nc net.Conn) *fakeDevice {
	return &fakeDevice{nc: nc, r: bufio.NewReader(nc)}
}

type decodedRequest struct {
	PLA, ELA byte
	Command  command.ID
	Body     []byte
}

// readRequest reads one framed request and returns its address,
// command id and decoded (unescaped, CRC-verified) body.
func (d *fakeDevice) readRequest() (decodedRequest, error) {
	var buf []byte
	inFrame := false
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return decodedRequest{}, err
		}
		switch b {
		case wire.BeginRequest:
			inFrame = true
			buf = buf[:0]
		case wire.EndMessage:
			raw := wire.Unescape(buf)
			body, _ := wire.VerifyAndStripCRC(raw)
			return decodedRequest{PLA: body[0], ELA: body[1], Command: command.ID(body[2]), Body: body[3:]}, nil
		default:
			if inFrame {
				buf = append(buf, b)
			}
		}
	}
}

// respond sends a normal (CRC-terminated, escaped) response frame.
func (d *fakeDevice) respond(body []byte) error {
	payload := wire.Escape(wire.AppendCRC(body))
	return d.writeFrame(payload)
}

// respondException sends a one-byte exception response, which by
// design carries no CRC.
func (d *fakeDevice) respondException(code byte) error {
	return d.writeFrame([]byte{code})
}

func (d *fakeDevice) writeFrame(payload []byte) error {
	framed := make([]byte, 0, len(payload)+2)
	framed = append(framed, wire.BeginResponse)
	framed = append(framed, payload...)
	framed = append(framed, wire.EndMessage)
	_, err := d.nc.Write(framed)
	return err
}
