package midi

import (
	"io"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Message converts the event into a complete wire message, status byte
// included.
func (e Event) Message() gomidi.Message {
	ch := uint8(e.Channel) & channelMask
	switch e.Kind {
	case NoteOff:
		return gomidi.NoteOffVelocity(ch, uint8(e.Note), uint8(e.Velocity))
	case NoteOn:
		return gomidi.NoteOn(ch, uint8(e.Note), uint8(e.Velocity))
	case ControlChange:
		return gomidi.ControlChange(ch, uint8(e.Control), uint8(e.Value))
	case ProgramChange:
		return gomidi.ProgramChange(ch, uint8(e.Program))
	case ChannelPressure:
		return gomidi.AfterTouch(ch, uint8(e.Value))
	case PitchBendChange:
		return gomidi.Pitchbend(ch, e.Bend.Relative())
	default:
		return nil
	}
}

// Bytes returns the raw wire bytes of the event, or nil for an event
// without a kind.
func (e Event) Bytes() []byte {
	return e.Message().Bytes()
}

// Encoder writes events to a byte stream.
type Encoder struct {
	w io.Writer

	// RunningStatus omits the status byte when it repeats the previous one.
	RunningStatus bool
	last          byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes a single event. Events without a kind are skipped.
func (enc *Encoder) Encode(e Event) error {
	b := e.Bytes()
	if len(b) == 0 {
		return nil
	}
	status := b[0]
	if enc.RunningStatus && status == enc.last {
		b = b[1:]
	}
	if _, err := enc.w.Write(b); err != nil {
		enc.last = 0
		return err
	}
	enc.last = status
	return nil
}
