package maestro

import "io"

// Wrap adapts a plain serial port into a Transport. The port must be
// opened with a read timeout, so that reads return rather than block
// when no response arrives.
func Wrap(rw io.ReadWriter) Transport {
	return &port{rw: rw}
}

type port struct {
	rw io.ReadWriter
}

func (p *port) Read(b []byte) (int, error)  { return p.rw.Read(b) }
func (p *port) Write(b []byte) (int, error) { return p.rw.Write(b) }

// FlushInput drains whatever the devices have already sent. The
// underlying driver has no discard call, so this reads until the port's
// deadline passes with nothing left.
func (p *port) FlushInput() error {
	var buf [64]byte
	for {
		n, err := p.rw.Read(buf[:])
		if err == io.EOF || (err == nil && n == 0) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
