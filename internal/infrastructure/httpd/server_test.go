package httpd

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type echoHandler struct{}

func (echoHandler) Handle(req *Request) *Response {
	resp := NewResponse()
	resp.Body = []byte(`{"path":"` + req.Path + `"}`)
	return resp
}

type panicHandler struct{}

func (panicHandler) Handle(*Request) *Response {
	panic("boom")
}

func startServer(t *testing.T, h Handler, readTimeout time.Duration) string {
	t.Helper()
	srv := NewServer(Options{
		Addr:         "127.0.0.1:0",
		Handler:      h,
		Logger:       zerolog.Nop(),
		Workers:      4,
		QueueSize:    16,
		ReadTimeout:  readTimeout,
		WriteTimeout: 2 * time.Second,
	})
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = srv.Serve(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("server did not stop")
		}
	})
	return srv.Addr().String()
}

// roundTrip sends raw bytes and returns everything the server wrote back
// before closing the connection.
func roundTrip(t *testing.T, addr, raw string) string {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(raw)); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	data, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func TestServer_ServesOneRequestThenCloses(t *testing.T) {
	addr := startServer(t, echoHandler{}, 2*time.Second)

	got := roundTrip(t, addr, "GET /hello HTTP/1.1\r\nHost: x\r\n\r\n")
	if !strings.HasPrefix(got, "HTTP/1.1 200 OK\r\n") {
		t.Fatalf("status line: %q", got)
	}
	if !strings.Contains(got, "Connection: close\r\n") {
		t.Fatalf("missing Connection: close in %q", got)
	}
	if !strings.HasSuffix(got, `{"path":"/hello"}`) {
		t.Fatalf("body: %q", got)
	}
}

func TestServer_MalformedRequestDroppedSilently(t *testing.T) {
	addr := startServer(t, echoHandler{}, 2*time.Second)

	// Start line without a request-target: connection closes, zero bytes sent.
	if got := roundTrip(t, addr, "GET\r\n\r\n"); got != "" {
		t.Fatalf("expected silent drop, got %q", got)
	}
}

func TestServer_SilentClientTimesOut(t *testing.T) {
	addr := startServer(t, echoHandler{}, 150*time.Millisecond)

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Send nothing; the read deadline must close the connection without a
	// response.
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	data, _ := io.ReadAll(conn)
	if len(data) != 0 {
		t.Fatalf("expected no bytes, got %q", data)
	}
}

func TestServer_PanickingHandlerDoesNotKillWorker(t *testing.T) {
	addr := startServer(t, panicHandler{}, 2*time.Second)

	// The panicking request is dropped...
	if got := roundTrip(t, addr, "GET /a HTTP/1.1\r\n\r\n"); got != "" {
		t.Fatalf("expected drop, got %q", got)
	}
	// ...and the pool keeps accepting connections afterwards.
	if got := roundTrip(t, addr, "GET /b HTTP/1.1\r\n\r\n"); got != "" {
		t.Fatalf("expected drop, got %q", got)
	}
}

func TestServer_ConcurrentConnections(t *testing.T) {
	addr := startServer(t, echoHandler{}, 2*time.Second)

	const n = 24
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path := fmt.Sprintf("/req/%d", i)
			conn, err := net.Dial("tcp", addr)
			if err != nil {
				errs <- err
				return
			}
			defer conn.Close()
			if _, err := fmt.Fprintf(conn, "GET %s HTTP/1.1\r\n\r\n", path); err != nil {
				errs <- err
				return
			}
			_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
			data, err := io.ReadAll(conn)
			if err != nil {
				errs <- err
				return
			}
			if !strings.HasSuffix(string(data), fmt.Sprintf(`{"path":"%s"}`, path)) {
				errs <- fmt.Errorf("wrong body for %s: %q", path, data)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
