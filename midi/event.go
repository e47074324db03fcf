package midi

import "fmt"

// Kind is the message family of a channel event, stored as the high
// nibble of its status byte.
type Kind uint8

// Kind values
const (
	invalid         Kind = 0x00
	NoteOff         Kind = 0x80
	NoteOn          Kind = 0x90
	ControlChange   Kind = 0xB0
	ProgramChange   Kind = 0xC0
	ChannelPressure Kind = 0xD0
	PitchBendChange Kind = 0xE0
)

const (
	statusFlag  = 0x80
	statusMask  = 0xf0
	channelMask = 0x0f
	dataMask    = 0x7f
)

var kindNames = map[Kind]string{
	NoteOff:         "NoteOff",
	NoteOn:          "NoteOn",
	ControlChange:   "ControlChange",
	ProgramChange:   "ProgramChange",
	ChannelPressure: "ChannelPressure",
	PitchBendChange: "PitchBend",
}

// kindOf returns the family selected by a status byte, or invalid for
// anything this package does not decode (polyphonic pressure, system
// messages).
func kindOf(status byte) Kind {
	switch k := Kind(status & statusMask); k {
	case NoteOff, NoteOn, ControlChange, ProgramChange, ChannelPressure, PitchBendChange:
		return k
	}
	return invalid
}

// DataLen is the number of data bytes that complete a message of this kind.
func (k Kind) DataLen() int {
	switch k {
	case NoteOff, NoteOn, ControlChange, PitchBendChange:
		return 2
	case ProgramChange, ChannelPressure:
		return 1
	default:
		return 0
	}
}

func (k Kind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return fmt.Sprintf("Kind0x%02X", uint8(k))
}

// Event is a decoded channel message. Only the fields belonging to Kind are
// set; the constructors below are the only way the parser builds one.
type Event struct {
	Kind     Kind
	Channel  Channel
	Note     Note
	Velocity Velocity
	Control  Control
	Value    Value
	Program  Program
	Bend     PitchBend
}

func NewNoteOn(channel Channel, note Note, velocity Velocity) Event {
	return Event{Kind: NoteOn, Channel: channel, Note: note, Velocity: velocity}
}

func NewNoteOff(channel Channel, note Note, velocity Velocity) Event {
	return Event{Kind: NoteOff, Channel: channel, Note: note, Velocity: velocity}
}

func NewControlChange(channel Channel, control Control, value Value) Event {
	return Event{Kind: ControlChange, Channel: channel, Control: control, Value: value}
}

func NewProgramChange(channel Channel, program Program) Event {
	return Event{Kind: ProgramChange, Channel: channel, Program: program}
}

func NewChannelPressure(channel Channel, value Value) Event {
	return Event{Kind: ChannelPressure, Channel: channel, Value: value}
}

func NewPitchBendChange(channel Channel, bend PitchBend) Event {
	return Event{Kind: PitchBendChange, Channel: channel, Bend: bend}
}

// Status is the status byte that starts this event on the wire.
func (e Event) Status() byte {
	return byte(e.Kind) | byte(e.Channel)&channelMask
}

func (e Event) String() string {
	s := fmt.Sprintf("%02d %s", e.Channel, e.Kind)
	switch e.Kind {
	case NoteOn, NoteOff:
		s += fmt.Sprintf(" %s:%d", e.Note.Name(), e.Velocity)
	case ControlChange:
		s += fmt.Sprintf(" %s %d", e.Control.Name(), e.Value)
	case ProgramChange:
		s += fmt.Sprintf(" %d", e.Program)
	case ChannelPressure:
		s += fmt.Sprintf(" %d", e.Value)
	case PitchBendChange:
		s += fmt.Sprintf(" %+d", e.Bend.Relative())
	}
	return "{" + s + "}"
}
