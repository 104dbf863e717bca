package middleware

import "net/http"

// statusRecorder remembers what a handler sent so outer layers can log it,
// put it on the span, or decide whether a problem document can still be
// written.
type statusRecorder struct {
	http.ResponseWriter
	status int
	sent   bool
	size   int64
}

func record(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.sent {
		return
	}
	sr.status = code
	sr.sent = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.sent = true
	n, err := sr.ResponseWriter.Write(b)
	sr.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the connection's writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
