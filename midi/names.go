package midi

import "fmt"

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// General MIDI controller assignments. The LSB controllers (32-63) share the
// name of their MSB counterpart.
var controlNames = map[Control]string{
	0:   "Bank Select",
	1:   "Modulation Wheel",
	2:   "Breath Controller",
	4:   "Foot Controller",
	5:   "Portamento Time",
	6:   "Data Entry",
	7:   "Channel Volume",
	8:   "Balance",
	10:  "Pan",
	11:  "Expression Controller",
	12:  "Effect Control 1",
	13:  "Effect Control 2",
	16:  "General Purpose Controller 1",
	17:  "General Purpose Controller 2",
	18:  "General Purpose Controller 3",
	19:  "General Purpose Controller 4",
	64:  "Sustain On/Off",
	65:  "Portamento On/Off",
	66:  "Sostenuto On/Off",
	67:  "Soft Pedal On/Off",
	68:  "Legato On/Off",
	69:  "Hold 2 On/Off",
	70:  "Sound Controller 1",
	71:  "Sound Controller 2",
	72:  "Sound Controller 3",
	73:  "Sound Controller 4",
	74:  "Sound Controller 5",
	75:  "Sound Controller 6",
	76:  "Sound Controller 7",
	77:  "Sound Controller 8",
	78:  "Sound Controller 9",
	79:  "Sound Controller 10",
	80:  "General Purpose Controller 5",
	81:  "General Purpose Controller 6",
	82:  "General Purpose Controller 7",
	83:  "General Purpose Controller 8",
	84:  "Portamento Control",
	88:  "High Resolution Velocity Prefix",
	91:  "Effects 1 Depth",
	92:  "Effects 2 Depth",
	93:  "Effects 3 Depth",
	94:  "Effects 4 Depth",
	95:  "Effects 5 Depth",
	96:  "Data Increment",
	97:  "Data Decrement",
	98:  "Non Registered Parameter Number LSB",
	99:  "Non Registered Parameter Number MSB",
	100: "Registered Parameter Number LSB",
	101: "Registered Parameter Number MSB",
	120: "All Sound Off",
	121: "Reset All Controllers",
	122: "Local Control On/Off",
	123: "All Notes Off",
	124: "Omni Mode Off",
	125: "Omni Mode On",
	126: "Mono Mode On",
	127: "Poly Mode On",
}

// Octave uses the convention where note 60 is C3.
func (n Note) Octave() int {
	return int(n)/12 - 2
}

// Name returns the pitch class and octave, e.g. "C3" for note 60.
func (n Note) Name() string {
	return noteNames[n%12] + fmt.Sprint(n.Octave())
}

func (c Control) Name() string {
	if v, ok := controlNames[c]; ok {
		return v
	}
	if c >= 32 && c < 64 {
		if v, ok := controlNames[c-32]; ok {
			return v + " LSB"
		}
	}
	return fmt.Sprintf("Control0x%02X", uint8(c))
}
