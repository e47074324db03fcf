// Package monitor publishes decoded MIDI events to browsers and scripts over
// Server-Sent Events (/events) and WebSocket (/ws).
package monitor

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/donovanhide/eventsource"
	"github.com/gorilla/websocket"

	"github.com/thiefmaster/midibridge/midi"
)

type Config struct {
	Listen         string   `yaml:"listen"`
	AllowedOrigins []string `yaml:"origins"`
}

const queueDepth = 256

type Server struct {
	cfg      Config
	sse      *eventsource.Server
	upgrader websocket.Upgrader
	queue    chan midi.Event
	seq      uint64

	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewServer(cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		sse:     eventsource.NewServer(),
		queue:   make(chan midi.Event, queueDepth),
		clients: make(map[*client]struct{}),
	}
	s.sse.AllowCORS = len(cfg.AllowedOrigins) == 0
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.sse.Handler(sseChannel))
	mux.HandleFunc("/ws", s.ws)
	return mux
}

// Publish queues ev for all subscribers. It never blocks; events are
// dropped while the queue is full.
func (s *Server) Publish(ev midi.Event) {
	select {
	case s.queue <- ev:
	default:
		log.Printf("monitor queue full, discarding %v\n", ev)
	}
}

// Run delivers published events until ctx is cancelled. When cfg.Listen is
// set it also serves Handler on that address.
func (s *Server) Run(ctx context.Context) error {
	if s.cfg.Listen == "" {
		s.dispatch(ctx)
		return nil
	}

	srv := &http.Server{Addr: s.cfg.Listen, Handler: s.Handler()}
	errc := make(chan error, 1)
	go func() {
		log.Printf("monitor listening on %s\n", s.cfg.Listen)
		errc <- srv.ListenAndServe()
	}()
	go s.dispatch(ctx)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	// Open event streams would keep Shutdown waiting.
	return srv.Close()
}

func (s *Server) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case ev := <-s.queue:
			s.broadcast(ev)
		}
	}
}

func (s *Server) broadcast(ev midi.Event) {
	s.seq++
	data, err := marshalEvent(s.seq, ev)
	if err != nil {
		log.Printf("could not marshal %v: %v\n", ev, err)
		return
	}
	s.sse.Publish([]string{sseChannel}, sseEvent{seq: s.seq, data: data})

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			log.Printf("websocket client %s too slow, dropping\n", c.conn.RemoteAddr())
			delete(s.clients, c)
			close(c.send)
		}
	}
}

func (s *Server) closeAll() {
	s.mu.Lock()
	for c := range s.clients {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
	s.sse.Close()
}
