package monitor

import "strconv"

const sseChannel = "midi"

// sseEvent adapts a marshalled event to eventsource.Event.
type sseEvent struct {
	seq  uint64
	data []byte
}

func (e sseEvent) Id() string    { return strconv.FormatUint(e.seq, 10) }
func (e sseEvent) Event() string { return sseChannel }
func (e sseEvent) Data() string  { return string(e.data) }
