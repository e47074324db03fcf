package midi

type parserState uint8

// parserState values
const (
	idle parserState = iota
	awaitingFirstByte
	awaitingSecondByte
)

// Parser decodes a MIDI byte stream one byte at a time, honoring running
// status. The zero value is ready to use. A Parser is not safe for
// concurrent use; give every input stream its own.
type Parser struct {
	state   parserState
	kind    Kind
	channel Channel
	first   byte
}

func NewParser() *Parser {
	return &Parser{}
}

// IsStatusByte reports whether b starts a message (top bit set).
func IsStatusByte(b byte) bool {
	return b&statusFlag != 0
}

// SplitStatus separates a status byte into its message nibble and channel.
func SplitStatus(b byte) (message byte, channel Channel) {
	return b & statusMask, Channel(b & channelMask)
}

// Reset discards any partial message and forgets the running status.
func (p *Parser) Reset() {
	*p = Parser{}
}

// ParseByte consumes the next byte of the stream. It returns the decoded
// event and true when b completes a message.
//
// Unsupported status bytes (system common and real-time messages) leave
// the state untouched, so real-time bytes may appear between the data
// bytes of a channel message. Data bytes that arrive before any status
// byte are dropped.
func (p *Parser) ParseByte(b byte) (Event, bool) {
	if IsStatusByte(b) {
		message, channel := SplitStatus(b)
		if kind := kindOf(message); kind != invalid {
			p.state = awaitingFirstByte
			p.kind = kind
			p.channel = channel
			p.first = 0
		}
		return Event{}, false
	}

	switch p.state {
	case awaitingFirstByte:
		if p.kind.DataLen() == 2 {
			p.state = awaitingSecondByte
			p.first = b
			return Event{}, false
		}
		return p.complete(b, 0), true
	case awaitingSecondByte:
		p.state = awaitingFirstByte
		return p.complete(p.first, b), true
	default:
		return Event{}, false
	}
}

// complete builds the event for the current kind and channel from its data
// bytes. The state stays on the same kind and channel for running status.
func (p *Parser) complete(data1, data2 byte) Event {
	switch p.kind {
	case NoteOff:
		return NewNoteOff(p.channel, Note(data1), Velocity(data2))
	case NoteOn:
		return NewNoteOn(p.channel, Note(data1), Velocity(data2))
	case ControlChange:
		return NewControlChange(p.channel, Control(data1), Value(data2))
	case ProgramChange:
		return NewProgramChange(p.channel, Program(data1))
	case ChannelPressure:
		return NewChannelPressure(p.channel, Value(data1))
	default:
		return NewPitchBendChange(p.channel, NewPitchBend(data1, data2))
	}
}

// Parse feeds every byte of data to the parser and returns the events
// completed along the way.
func (p *Parser) Parse(data []byte) []Event {
	var events []Event
	for _, b := range data {
		if ev, ok := p.ParseByte(b); ok {
			events = append(events, ev)
		}
	}
	return events
}
