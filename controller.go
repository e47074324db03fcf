package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/thiefmaster/midibridge/comm"
	"github.com/thiefmaster/midibridge/monitor"
)

// replayFile is a capture file opened as a port; transmitted events are
// discarded.
type replayFile struct {
	*os.File
}

func (replayFile) Write(b []byte) (int, error) {
	return len(b), nil
}

func openPort(config appConfig, replay string) (*comm.Port, error) {
	if replay == "" {
		return comm.OpenPort(config.Serial)
	}
	log.Printf("replaying capture %s\n", replay)
	f, err := os.Open(replay)
	if err != nil {
		return nil, err
	}
	return comm.NewPort(replayFile{f}), nil
}

func main() {
	configPath := flag.String("config", "midibridge.yaml", "path to the YAML config file")
	replay := flag.String("replay", "", "decode a raw MIDI capture file instead of the serial port")
	flag.Parse()

	var config appConfig
	if _, err := os.Stat(*configPath); err == nil || *replay == "" {
		if err := config.load(*configPath); err != nil {
			log.Fatalf("%v\n", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port, err := openPort(config, *replay)
	if err != nil {
		log.Fatalf("OpenPort: %v\n", err)
	}
	port.RunningStatus = config.RunningStatus

	mon := monitor.NewServer(config.Monitor)
	go func() {
		if err := mon.Run(ctx); err != nil {
			log.Printf("monitor exited: %v\n", err)
		}
	}()

	state := newAppState(config)
	runErr := make(chan error, 1)
	go func() { runErr <- port.Run(ctx) }()

	events := port.Events()
loop:
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				break loop
			}
			handleEvent(state, ev, mon.Publish, port.Commands())
		case <-ctx.Done():
			break loop
		}
	}

	if n := state.heldNotes(); n > 0 {
		log.Printf("%d notes still held at end of stream\n", n)
	}
	if err := <-runErr; err != nil && err != context.Canceled {
		log.Fatalf("port: %v\n", err)
	}
	log.Println("stream closed")
}
