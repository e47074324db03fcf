package midi

// Channel is one of the 16 logical MIDI channels (0-15).
type Channel uint8

// Note is a 7-bit note number.
type Note uint8

// Control is a 7-bit controller number.
type Control uint8

// Program is a 7-bit program number.
type Program uint8

// Velocity is a 7-bit note velocity.
type Velocity uint8

// Value is a 7-bit controller or pressure value.
type Value uint8

// PitchBend is a 14-bit pitch bend amount. PitchBendCenter means no bend.
type PitchBend uint16

const (
	PitchBendCenter PitchBend = 0x2000
	PitchBendMax    PitchBend = 0x3fff
)

// NewPitchBend combines the two data bytes of a pitch bend message,
// least significant 7 bits first.
func NewPitchBend(lsb, msb byte) PitchBend {
	return PitchBend(lsb&dataMask) | PitchBend(msb&dataMask)<<7
}

// Bytes splits the value back into its wire data bytes.
func (p PitchBend) Bytes() (lsb, msb byte) {
	return byte(p) & dataMask, byte(p>>7) & dataMask
}

// Relative returns the bend relative to the center, in [-8192, 8191].
func (p PitchBend) Relative() int16 {
	return int16(p) - int16(PitchBendCenter)
}

// Float maps the value to [0, 1] so that the center detent (64) is exactly 0.5.
func (v Value) Float() float64 {
	switch {
	case v == 0:
		return 0
	case v == 64:
		return 0.5
	case v >= 127:
		return 1
	case v < 64:
		return float64(v) / 128
	default:
		return float64(v-1) / 126
	}
}
