package comm

import (
	"io"

	"github.com/thiefmaster/midibridge/midi"
)

// NewPort wraps an already open byte stream, e.g. a capture file or a pipe.
func NewPort(conn io.ReadWriteCloser) *Port {
	return &Port{
		conn:     conn,
		events:   make(chan midi.Event, bufferDepth),
		commands: make(chan midi.Event, bufferDepth),
	}
}

// Events delivers decoded events. It is closed when the input stream ends
// or the port is closed by Run.
func (p *Port) Events() <-chan midi.Event {
	return p.events
}

// Commands accepts events to transmit while Run is active.
func (p *Port) Commands() chan<- midi.Event {
	return p.commands
}
