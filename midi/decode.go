package midi

import "io"

// Decode runs a fresh Parser over r, calling fn for every completed event.
// It returns nil once r reports io.EOF and any other read error as is.
func Decode(r io.ByteReader, fn func(Event)) error {
	var p Parser
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if ev, ok := p.ParseByte(b); ok {
			fn(ev)
		}
	}
}
