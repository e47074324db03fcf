package monitor

import (
	"encoding/json"

	"github.com/thiefmaster/midibridge/midi"
)

// eventJSON is the wire form of an event. Only the fields of the event's
// kind are present.
type eventJSON struct {
	Seq      uint64 `json:"seq"`
	Kind     string `json:"kind"`
	Channel  uint8  `json:"channel"`
	Note     *uint8 `json:"note,omitempty"`
	Velocity *uint8 `json:"velocity,omitempty"`
	Control  *uint8 `json:"control,omitempty"`
	Value    *uint8 `json:"value,omitempty"`
	Program  *uint8 `json:"program,omitempty"`
	Bend     *int16 `json:"bend,omitempty"`
}

func u8(v uint8) *uint8 { return &v }

func marshalEvent(seq uint64, ev midi.Event) ([]byte, error) {
	e := eventJSON{Seq: seq, Kind: ev.Kind.String(), Channel: uint8(ev.Channel)}
	switch ev.Kind {
	case midi.NoteOn, midi.NoteOff:
		e.Note, e.Velocity = u8(uint8(ev.Note)), u8(uint8(ev.Velocity))
	case midi.ControlChange:
		e.Control, e.Value = u8(uint8(ev.Control)), u8(uint8(ev.Value))
	case midi.ProgramChange:
		e.Program = u8(uint8(ev.Program))
	case midi.ChannelPressure:
		e.Value = u8(uint8(ev.Value))
	case midi.PitchBendChange:
		bend := ev.Bend.Relative()
		e.Bend = &bend
	}
	return json.Marshal(e)
}
