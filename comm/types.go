package comm

import (
	"io"

	"github.com/thiefmaster/midibridge/midi"
)

// Config selects the serial device. MIDI DIN runs at 31250 baud; USB-serial
// adapters often use a higher rate.
type Config struct {
	Name string `yaml:"name"`
	Baud int    `yaml:"baud"`
}

const (
	DefaultBaud = 31250
	bufferDepth = 64
)

// Port is a byte stream carrying MIDI in both directions. Incoming bytes are
// decoded into events, outgoing events are encoded with running status when
// RunningStatus is set.
type Port struct {
	conn     io.ReadWriteCloser
	events   chan midi.Event
	commands chan midi.Event

	RunningStatus bool
}
