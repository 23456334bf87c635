package serial

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "fakeserial",
})

// FakeSerial records every command written to it, and answers reads
// from a queue of scripted responses. It stands in for the transport
// underneath the maestro controller in tests.
type FakeSerial struct {
	// Writes holds each Write call's bytes, in order.
	Writes [][]byte

	// Responses are consumed one slice per Read. When the queue is
	// empty, Read reports no data, like a serial port past its
	// deadline.
	Responses [][]byte

	// Flushes counts FlushInput calls.
	Flushes int
}

func (s *FakeSerial) Read(p []byte) (n int, err error) {
	if len(s.Responses) == 0 {
		logger.Debugf("read: no data")
		return 0, nil
	}

	r := s.Responses[0]
	n = copy(p, r)
	if n == len(r) {
		s.Responses = s.Responses[1:]
	} else {
		s.Responses[0] = r[n:]
	}
	logger.Debugf("read: %v", p[:n])
	return n, nil
}

func (s *FakeSerial) Write(p []byte) (n int, err error) {
	logger.Debugf("write: %v", p)
	b := make([]byte, len(p))
	copy(b, p)
	s.Writes = append(s.Writes, b)
	return len(p), nil
}

func (s *FakeSerial) FlushInput() error {
	logger.Debugf("flush input")
	s.Flushes++
	s.Responses = nil
	return nil
}

func (s *FakeSerial) Close() error {
	return nil
}
