package serve

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fatih/color"
)

// statusWriter records the status code the wrapped handler sends so the
// request logger can color the line afterwards.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

var (
	logFresh    = color.New(color.FgGreen)  // 2xx
	logMissing  = color.New(color.FgRed)    // 404
	logNotMod   = color.New(color.FgYellow) // 304
	logFallback = color.New(color.FgBlue)   // everything else
)

// statusColor maps a response status to its log color.
func statusColor(status int) *color.Color {
	switch {
	case status == http.StatusNotFound:
		return logMissing
	case status == http.StatusNotModified:
		return logNotMod
	case status >= 200 && status < 300:
		return logFresh
	default:
		return logFallback
	}
}

// requestLine reproduces the first line of the request for the log.
func requestLine(r *http.Request) string {
	return fmt.Sprintf("%s %s %s", r.Method, r.URL.RequestURI(), r.Proto)
}

// clientIP strips the port from a request's RemoteAddr.
func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

// WithRequestLog prints one line per request with timestamp, client IP,
// request line and status, colored by status class.
func WithRequestLog(out io.Writer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := newStatusWriter(w)
		next.ServeHTTP(sw, r)

		c := statusColor(sw.status)
		c.Fprintf(out, "[%s] %s - %s %d\n",
			time.Now().Format("2006-01-02 15:04:05"),
			clientIP(r.RemoteAddr), requestLine(r), sw.status)
	})
}

// WithSPALog prints one marker-prefixed line per request with the client
// address and request line.
func WithSPALog(out io.Writer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := newStatusWriter(w)
		next.ServeHTTP(sw, r)
		fmt.Fprintf(out, "🌐 %s - %s %d\n", clientIP(r.RemoteAddr), requestLine(r), sw.status)
	})
}
