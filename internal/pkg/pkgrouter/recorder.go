package pkgrouter

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"net/http"
)

const maxCapturedBodyBytes = 16 * 1024

// statusRecorder remembers the status written by the handler and, when body
// is set, keeps the first maxCapturedBodyBytes of the response.
type statusRecorder struct {
	http.ResponseWriter
	status    int
	written   int
	body      *bytes.Buffer
	truncated bool
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.capture(p)

	n, err := w.ResponseWriter.Write(p)
	w.written += n
	return n, err
}

func (w *statusRecorder) capture(p []byte) {
	if w.body == nil || w.truncated || len(p) == 0 {
		return
	}
	room := maxCapturedBodyBytes - w.body.Len()
	if room <= 0 {
		w.truncated = true
		return
	}
	if len(p) > room {
		p = p[:room]
		w.truncated = true
	}
	w.body.Write(p)
}

// Status reports the written status, defaulting to 200 when the handler
// never wrote anything.
func (w *statusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("pkgrouter: response writer does not support hijacking")
	}
	return h.Hijack()
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
