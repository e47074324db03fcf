package comm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/thiefmaster/midibridge/midi"
)

// fakeLine reads from r and records everything written.
type fakeLine struct {
	r io.Reader

	mu      sync.Mutex
	written bytes.Buffer
	closed  bool
	onClose func()
}

func (f *fakeLine) Read(b []byte) (int, error) {
	return f.r.Read(b)
}

func (f *fakeLine) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written.Write(b)
}

func (f *fakeLine) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.onClose != nil {
		f.onClose()
	}
	return nil
}

func (f *fakeLine) bytes() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.written.Bytes()...)
}

type brokenReader struct{ err error }

func (r brokenReader) Read([]byte) (int, error) { return 0, r.err }

func collect(p *Port) []midi.Event {
	var events []midi.Event
	for ev := range p.Events() {
		events = append(events, ev)
	}
	return events
}

func TestRunDecodesUntilEOF(t *testing.T) {
	line := &fakeLine{r: bytes.NewReader([]byte{0xFE, 0x92, 0x76, 0x34, 0x33, 0x65, 0xC9, 0x15})}
	p := NewPort(line)

	errc := make(chan error, 1)
	go func() { errc <- p.Run(context.Background()) }()

	got := collect(p)
	if err := <-errc; err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []midi.Event{
		midi.NewNoteOn(2, 0x76, 0x34),
		midi.NewNoteOn(2, 0x33, 0x65),
		midi.NewProgramChange(9, 0x15),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if !line.closed {
		t.Error("port not closed after Run")
	}
}

func TestRunWritesCommands(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	line := &fakeLine{r: pr, onClose: func() { pr.Close() }}
	p := NewPort(line)
	p.RunningStatus = true

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- p.Run(ctx) }()

	p.Commands() <- midi.NewNoteOn(2, 0x76, 0x34)
	p.Commands() <- midi.NewNoteOn(2, 0x33, 0x65)
	p.Commands() <- midi.NewPitchBendChange(8, 0x2B14)

	want := []byte{0x92, 0x76, 0x34, 0x33, 0x65, 0xE8, 0x14, 0x56}
	deadline := time.Now().Add(2 * time.Second)
	for !bytes.Equal(line.bytes(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("written % X, want % X", line.bytes(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	if err := <-errc; err != context.Canceled {
		t.Errorf("Run error = %v, want %v", err, context.Canceled)
	}
	if _, ok := <-p.Events(); ok {
		t.Error("events channel still open after Run")
	}
}

func TestRunReturnsReadError(t *testing.T) {
	unplugged := errors.New("device unplugged")
	p := NewPort(&fakeLine{r: brokenReader{unplugged}})

	err := p.Run(context.Background())
	if pkgerrors.Cause(err) != unplugged {
		t.Fatalf("Run error = %v, want cause %v", err, unplugged)
	}
	if len(collect(p)) != 0 {
		t.Error("events decoded from a broken line")
	}
}
