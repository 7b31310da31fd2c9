package httpd

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bulletinhq/bulletin-api/internal/api/metrics"
)

const (
	defaultWorkers   = 8
	defaultQueueSize = 256
)

// Handler turns a decoded request into a response. Returning nil drops the
// connection without writing anything.
type Handler interface {
	Handle(req *Request) *Response
}

// Options configures a Server.
type Options struct {
	Addr    string
	Handler Handler
	Logger  zerolog.Logger

	// Workers bounds how many connections are handled concurrently; QueueSize
	// bounds how many accepted connections may wait for a worker. Accept
	// blocks once the queue is full.
	Workers   int
	QueueSize int

	// ReadTimeout and WriteTimeout are per-connection socket deadlines. A
	// timed-out read is treated like any malformed request: the connection is
	// dropped silently. Zero disables the deadline.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server owns the TCP listener and the fixed worker pool that drives
// connections through decode → handle → encode. Each connection carries
// exactly one request.
type Server struct {
	addr         string
	handler      Handler
	log          zerolog.Logger
	workers      int
	readTimeout  time.Duration
	writeTimeout time.Duration

	queue chan net.Conn
	wg    sync.WaitGroup
	ln    net.Listener
}

func NewServer(opts Options) *Server {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	return &Server{
		addr:         opts.Addr,
		handler:      opts.Handler,
		log:          opts.Logger,
		workers:      opts.Workers,
		readTimeout:  opts.ReadTimeout,
		writeTimeout: opts.WriteTimeout,
		queue:        make(chan net.Conn, opts.QueueSize),
	}
}

// Listen binds the TCP port. Addr reports the bound address afterwards.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// Addr returns the bound listener address. Only valid after Listen.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// ListenAndServe binds the port and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve accepts connections until ctx is cancelled, then drains the queue
// and waits for in-flight connections. The per-connection deadlines bound
// how long the drain can take.
func (s *Server) Serve(ctx context.Context) error {
	ln := s.ln
	s.log.Info().
		Str("addr", ln.Addr().String()).
		Int("workers", s.workers).
		Msg("server listening")

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.runWorker(i)
	}

	// Cancelling ctx closes the listener, which unblocks Accept.
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			s.log.Warn().Err(err).Msg("accept failed")
			continue
		}
		metrics.ConnectionsAcceptedTotal.Inc()
		s.queue <- conn
		metrics.ConnectionQueueDepth.Set(float64(len(s.queue)))
	}

	close(s.queue)
	s.wg.Wait()
	s.log.Info().Msg("server stopped")
	return nil
}

func (s *Server) runWorker(id int) {
	defer s.wg.Done()
	for conn := range s.queue {
		metrics.ConnectionQueueDepth.Set(float64(len(s.queue)))
		s.handleConn(conn, id)
	}
}

// handleConn drives one connection end to end and always closes it.
func (s *Server) handleConn(conn net.Conn, workerID int) {
	defer conn.Close()

	log := s.log.With().
		Str("conn_id", uuid.NewString()).
		Str("remote", conn.RemoteAddr().String()).
		Int("worker_id", workerID).
		Logger()

	if s.readTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	}
	req, err := ReadRequest(conn)
	if err != nil {
		// Unparseable or timed out: no response goes on the wire.
		metrics.ConnectionsDroppedTotal.Inc()
		log.Debug().Err(err).Msg("connection dropped")
		return
	}

	start := time.Now()
	resp := s.safeHandle(req, log)
	if resp == nil {
		metrics.ConnectionsDroppedTotal.Inc()
		return
	}

	if s.writeTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if err := resp.Encode(conn); err != nil {
		log.Debug().Err(err).Msg("response write failed")
		return
	}

	elapsed := time.Since(start)
	metrics.RequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.Status)).Inc()
	metrics.RequestDuration.WithLabelValues(req.Method).Observe(elapsed.Seconds())
	log.Info().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.Status).
		Dur("elapsed", elapsed).
		Msg("request handled")
}

// safeHandle keeps a panicking handler from taking its worker down.
func (s *Server) safeHandle(req *Request, log zerolog.Logger) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("method", req.Method).
				Str("path", req.Path).
				Msg("handler panicked")
			resp = nil
		}
	}()
	return s.handler.Handle(req)
}
