package comm

import (
	"bufio"
	"context"
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/tarm/serial"

	"github.com/thiefmaster/midibridge/midi"
)

func OpenPort(cfg Config) (*Port, error) {
	baud := cfg.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	log.Printf("opening serial port %s at %d baud\n", cfg.Name, baud)
	conn, err := serial.OpenPort(&serial.Config{Name: cfg.Name, Baud: baud})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", cfg.Name)
	}
	return NewPort(conn), nil
}

// Run decodes incoming bytes and transmits queued commands until the stream
// ends, an I/O error occurs or ctx is cancelled. The end of the input stream
// is not an error. The port is closed when Run returns; Events is closed
// once the pending read returns.
func (p *Port) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	readErr := make(chan error, 1)
	writeErr := make(chan error, 1)
	writerDone := make(chan struct{})
	go func() {
		defer close(p.events)
		readErr <- p.reader(ctx)
	}()
	go func() {
		defer close(writerDone)
		writeErr <- p.writer(ctx)
	}()

	var err error
	select {
	case err = <-readErr:
	case err = <-writeErr:
	case <-ctx.Done():
		err = ctx.Err()
	}
	cancel()
	if cerr := p.conn.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "close port")
	}
	// Not every serial driver unblocks a pending read on close, so only the
	// writer is waited for.
	<-writerDone
	return err
}

func (p *Port) reader(ctx context.Context) error {
	var parser midi.Parser
	r := bufio.NewReader(p.conn)
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}
		ev, ok := parser.ParseByte(b)
		if !ok {
			continue
		}
		select {
		case p.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (p *Port) writer(ctx context.Context) error {
	enc := midi.NewEncoder(p.conn)
	enc.RunningStatus = p.RunningStatus
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-p.commands:
			if err := enc.Encode(ev); err != nil {
				return errors.Wrapf(err, "write %v", ev)
			}
		}
	}
}
