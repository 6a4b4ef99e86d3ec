// Package server implements the TCP battle arena
package server

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"

	"battleserver/internal/config"
	"battleserver/internal/game"
	"battleserver/internal/network"
	"battleserver/pkg/logger"
)

// ErrServerClosed is returned by Serve after Stop.
var ErrServerClosed = errors.New("server closed")

type eventKind int

const (
	evConnect eventKind = iota
	evLine
	evClosed
)

// event is the only way goroutines other than Serve reach arena state.
type event struct {
	kind eventKind
	conn net.Conn
	id   uuid.UUID
	line string
	err  error
}

// Server represents the TCP battle server. All arena state is owned by the
// goroutine running Serve.
type Server struct {
	cfg      config.Config
	listener net.Listener
	registry *Registry
	engine   *game.Engine
	roller   game.Roller
	events   chan event
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	mu       sync.Mutex // guards listener
	logger   *logger.Logger
}

// Option customizes a Server.
type Option func(*Server)

// WithRoller makes combat rolls come from r.
func WithRoller(r game.Roller) Option {
	return func(s *Server) { s.roller = r }
}

// WithLogger replaces the default server logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a new battle server instance
func NewServer(cfg config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		registry: NewRegistry(),
		events:   make(chan event, 64),
		done:     make(chan struct{}),
		logger:   logger.Server,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = game.NewEngine(cfg.Combat, s.roller)
	return s
}

// Listen binds the listening socket.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("Server listening on %s", ln.Addr())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start listens and serves until Stop is called.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Serve runs the event loop. Matchmaking runs before every wait, so any
// pairing made possible by the previous event happens before the next one.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()
	if ln == nil {
		return errors.New("server is not listening")
	}

	s.wg.Add(1)
	go s.acceptLoop(ln)

	for {
		s.runMatchmaking()
		if s.reap() > 0 {
			continue
		}

		select {
		case <-s.done:
			s.shutdown()
			return ErrServerClosed
		case ev := <-s.events:
			s.dispatch(ev)
			s.reap()
		}
	}
}

// Stop closes the listener and makes Serve return. It is safe to call more than once.
func (s *Server) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		if s.listener != nil {
			err = s.listener.Close()
		}
		s.mu.Unlock()
	})
	return err
}

func (s *Server) shutdown() {
	for c := range s.registry.All() {
		s.registry.Remove(c.ID)
		c.conn.Close()
	}
	s.wg.Wait()
	s.logger.Info("Server stopped")
}

// post hands an event to the loop. It reports false once the server is stopping.
func (s *Server) post(ev event) bool {
	select {
	case s.events <- ev:
		return true
	case <-s.done:
		return false
	}
}

func (s *Server) acceptLoop(ln net.Listener) {
	defer s.wg.Done()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Error("Failed to accept connection: %v", err)
			continue
		}

		if !s.post(event{kind: evConnect, conn: conn}) {
			conn.Close()
			return
		}
	}
}

// readLoop owns c.framer. Every complete line becomes its own event.
func (s *Server) readLoop(c *Client) {
	defer s.wg.Done()

	for {
		if err := c.framer.Fill(c.conn); err != nil {
			s.post(event{kind: evClosed, id: c.ID, err: err})
			return
		}
		for {
			line, ok := c.framer.Next()
			if !ok {
				break
			}
			if !s.post(event{kind: evLine, id: c.ID, line: line}) {
				return
			}
		}
	}
}

func (s *Server) dispatch(ev event) {
	switch ev.kind {
	case evConnect:
		c := s.attach(ev.conn)
		s.wg.Add(1)
		go s.readLoop(c)

	case evLine:
		c, ok := s.registry.Get(ev.id)
		if !ok {
			return
		}
		s.handleLine(c, ev.line)

	case evClosed:
		c, ok := s.registry.Get(ev.id)
		if !ok {
			return
		}
		if errors.Is(ev.err, network.ErrClosed) {
			s.logger.Info("Client disconnected: %s", c)
		} else {
			s.logger.Warn("Read from %s failed: %v", c, ev.err)
		}
		s.dropClient(c)
	}
}

// attach registers a fresh connection and greets it.
func (s *Server) attach(conn net.Conn) *Client {
	c := newClient(conn, network.NewFramer(s.cfg.Framing.BufferSize, s.cfg.Framing.MaxMessage))
	if s.cfg.Arrival == config.ArrivalBack {
		s.registry.PushBack(c)
	} else {
		s.registry.PushFront(c)
	}

	s.logger.Info("New client connected: %s (%d online)", c.Addr, s.registry.Len())
	s.send(c, network.MsgGreeting)
	return c
}

// send writes msg to c. A failed write marks c dead; it is removed by reap.
func (s *Server) send(c *Client, msg string) {
	if c.dead {
		return
	}
	if err := network.Send(c.conn, msg, s.cfg.WriteTimeout); err != nil {
		s.logger.Warn("Write to %s failed: %v", c, err)
		c.dead = true
	}
}

// reap drops every client whose write failed. Dropping one can fail writes to
// others, so it loops until none are left.
func (s *Server) reap() int {
	dropped := 0
	for {
		var victim *Client
		for c := range s.registry.All() {
			if c.dead {
				victim = c
				break
			}
		}
		if victim == nil {
			return dropped
		}
		s.dropClient(victim)
		dropped++
	}
}
