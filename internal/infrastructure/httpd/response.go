package httpd

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// Response is a structured response, serialized by Encode. The zero value is
// not usable; construct with NewResponse.
type Response struct {
	Status      int
	ContentType string
	Body        []byte

	// extra preserves handler-supplied headers in insertion order.
	extra [][2]string
}

// NewResponse returns a 200 response with the JSON content type every /api
// endpoint uses.
func NewResponse() *Response {
	return &Response{
		Status:      200,
		ContentType: "application/json; charset=utf-8",
	}
}

// SetHeader appends a handler-supplied header. Fixed headers (Content-Type,
// Content-Length, Connection) are emitted by Encode and cannot be overridden.
func (r *Response) SetHeader(key, value string) {
	r.extra = append(r.extra, [2]string{key, value})
}

// Encode writes the response to the wire: status line, fixed headers, extra
// headers, blank line, body. Every response closes the connection.
func (r *Response) Encode(w io.Writer) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", r.Status, statusText(r.Status))
	fmt.Fprintf(&b, "Content-Type: %s\r\n", r.ContentType)
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(r.Body))
	b.WriteString("Connection: close\r\n")
	for _, h := range r.extra {
		fmt.Fprintf(&b, "%s: %s\r\n", h[0], h[1])
	}
	b.WriteString("\r\n")
	b.Write(r.Body)

	data := b.Bytes()
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// statusText resolves the reason phrase. Codes outside the usual set fall
// back to the standard registry rather than claiming "OK".
func statusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 409:
		return "Conflict"
	case 500:
		return "Internal Server Error"
	}
	if t := http.StatusText(code); t != "" {
		return t
	}
	return "Unknown"
}
