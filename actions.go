package main

import (
	"log"

	"github.com/thiefmaster/midibridge/midi"
)

const allNotesOff midi.Control = 123

type appState struct {
	channels [16]bool
	thru     bool
	held     [16]map[midi.Note]bool
}

func newAppState(config appConfig) *appState {
	s := &appState{thru: config.Thru}
	for _, ch := range config.Channels {
		s.channels[ch] = true
	}
	if len(config.Channels) == 0 {
		for ch := range s.channels {
			s.channels[ch] = true
		}
	}
	s.reset()
	return s
}

func (s *appState) reset() {
	for ch := range s.held {
		s.held[ch] = make(map[midi.Note]bool)
	}
}

func (s *appState) accepts(ev midi.Event) bool {
	return s.channels[ev.Channel&0x0f]
}

// trackNotes keeps the set of sounding notes per channel. A note on with
// zero velocity releases the note.
func (s *appState) trackNotes(ev midi.Event) {
	held := s.held[ev.Channel&0x0f]
	switch {
	case ev.Kind == midi.NoteOn && ev.Velocity > 0:
		held[ev.Note] = true
	case ev.Kind == midi.NoteOn, ev.Kind == midi.NoteOff:
		delete(held, ev.Note)
	case ev.Kind == midi.ControlChange && ev.Control == allNotesOff:
		log.Printf("channel %d: all notes off\n", ev.Channel)
		for note := range held {
			delete(held, note)
		}
	}
}

func (s *appState) heldNotes() int {
	n := 0
	for _, held := range s.held {
		n += len(held)
	}
	return n
}

// handleEvent is called for every decoded event in arrival order.
func handleEvent(state *appState, ev midi.Event, publish func(midi.Event), cmdChan chan<- midi.Event) {
	if !state.accepts(ev) {
		return
	}
	log.Printf("%v\n", ev)
	state.trackNotes(ev)
	publish(ev)
	if state.thru {
		select {
		case cmdChan <- ev:
		default:
			log.Printf("output queue full, discarding %v\n", ev)
		}
	}
}
