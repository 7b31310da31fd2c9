// Package httpd is the hand-built HTTP/1.1 serving engine: wire codec,
// bounded-worker listener and the static file collaborator. It knows nothing
// about the business payload it carries; routing and handlers plug in via
// the Handler interface.
//
// The engine deliberately speaks a narrow dialect: one request per
// connection, no keep-alive, no pipelining, no chunked transfer-encoding.
package httpd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const readChunkSize = 8192

// ErrMalformed marks a request that could not be parsed. The connection is
// dropped without a response.
var ErrMalformed = errors.New("httpd: malformed request")

// Request is a decoded HTTP/1.1 request.
type Request struct {
	Method string
	// Target is the raw request-target from the start line.
	Target string
	// Path is the target with its query string stripped; never empty.
	Path string
	// Proto is the protocol version as received. It is parsed but the engine
	// does not branch on it.
	Proto string
	Body  []byte

	headers map[string]string
	query   map[string]string
	form    map[string]string
}

// Header returns the value for a header key, matched case-insensitively.
// Duplicate keys keep the last value seen.
func (r *Request) Header(key string) string {
	return r.headers[strings.ToLower(key)]
}

// Param looks a parameter up in the decoded form body first, then in the
// query string. Absent keys return the empty string, never an error.
func (r *Request) Param(key string) string {
	if v, ok := r.form[key]; ok {
		return v
	}
	return r.query[key]
}

// ReadRequest decodes one request from the connection. It reads in fixed
// chunks until the blank-line header terminator is seen, then keeps reading
// until Content-Length more bytes have arrived. There is no cap on the
// buffered size beyond what the read deadline bounds.
func ReadRequest(r io.Reader) (*Request, error) {
	var (
		raw           []byte
		req           *Request
		headerEnd     = -1
		contentLength = 0
	)

	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			raw = append(raw, buf[:n]...)
		}

		if headerEnd < 0 {
			if i := bytes.Index(raw, []byte("\r\n\r\n")); i >= 0 {
				headerEnd = i
				req, contentLength = parseHeaderSection(raw[:i])
				if req == nil {
					return nil, ErrMalformed
				}
			}
		}
		if headerEnd >= 0 {
			total := headerEnd + 4 + contentLength
			if len(raw) >= total {
				req.Body = raw[headerEnd+4 : total]
				break
			}
		}

		if err != nil {
			// Stream ended before a complete request arrived.
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	if strings.Contains(req.Header("Content-Type"), "application/x-www-form-urlencoded") {
		req.form = parseParams(string(req.Body))
	}
	return req, nil
}

// parseHeaderSection parses the start line and header lines. A nil request
// means the section was unusable (no request-target).
func parseHeaderSection(section []byte) (*Request, int) {
	lines := strings.Split(string(section), "\n")

	fields := strings.Fields(strings.TrimSuffix(lines[0], "\r"))
	if len(fields) < 2 {
		return nil, 0
	}
	req := &Request{
		Method:  fields[0],
		Target:  fields[1],
		headers: make(map[string]string),
		query:   map[string]string{},
		form:    map[string]string{},
	}
	if len(fields) > 2 {
		req.Proto = fields[2]
	}

	if i := strings.IndexByte(req.Target, '?'); i >= 0 {
		req.Path = req.Target[:i]
		req.query = parseParams(req.Target[i+1:])
	} else {
		req.Path = req.Target
	}
	if req.Path == "" {
		req.Path = "/"
	}

	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}
		key := strings.ToLower(line[:colon])
		req.headers[key] = strings.TrimSpace(line[colon+1:])
	}

	contentLength := 0
	if v := req.headers["content-length"]; v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			contentLength = n
		}
	}
	return req, contentLength
}

// parseParams decodes key=value&key=value data, percent-decoding both keys
// and values. A pair without '=' is stored with an empty value; on duplicate
// keys the last value wins.
func parseParams(data string) map[string]string {
	params := make(map[string]string)
	for _, token := range strings.Split(data, "&") {
		if token == "" {
			continue
		}
		if eq := strings.IndexByte(token, '='); eq >= 0 {
			params[urlDecode(token[:eq])] = urlDecode(token[eq+1:])
		} else {
			params[urlDecode(token)] = ""
		}
	}
	return params
}

// urlDecode applies percent-decoding: %XX becomes the byte with that hex
// value, '+' becomes a space, everything else passes through. A '%' with
// fewer than two characters left is kept literally.
func urlDecode(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		switch {
		case value[i] == '%' && i+2 < len(value):
			b.WriteByte(hexByte(value[i+1 : i+3]))
			i += 2
		case value[i] == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// hexByte converts up to two hex digits, stopping at the first non-hex
// character; an unparseable pair yields zero.
func hexByte(s string) byte {
	var v byte
	for i := 0; i < len(s); i++ {
		d, ok := unhex(s[i])
		if !ok {
			break
		}
		v = v<<4 | d
	}
	return v
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
