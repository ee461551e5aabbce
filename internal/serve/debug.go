package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// DebugOptions configure the debug file server.
type DebugOptions struct {
	Port   int
	Dir    string // absolute path of the served tree
	Reload bool   // inject the auto-reload poller into HTML pages
	Out    io.Writer
}

// DebugHandler assembles the debug server's middleware chain: request
// logging around CORS and no-cache headers around static file serving,
// plus the reload endpoint when enabled.
func DebugHandler(opts DebugOptions) http.Handler {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	files := debugFiles(opts.Dir)
	mux := http.NewServeMux()
	if opts.Reload {
		mux.Handle(StampRoute, StampHandler(opts.Dir))
		files = WithReload(files)
	}
	mux.Handle("/", files)

	return WithRequestLog(opts.Out, WithDebugHeaders(mux))
}

// debugFiles serves the directory tree, answering index.html paths with
// the document bytes instead of http.FileServer's redirect to "./".
func debugFiles(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := path.Clean("/" + r.URL.Path)
		if path.Base(p) == "index.html" {
			serveDocBytes(w, r, filepath.Join(dir, filepath.FromSlash(p)))
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}

// Debug is the CORS-open, cache-disabled development file server.
type Debug struct {
	opts DebugOptions
	srv  *http.Server
	ln   net.Listener
}

// NewDebug registers the MIME overrides and binds the listener, scanning
// forward up to 100 ports when the requested one is busy.
func NewDebug(opts DebugOptions) (*Debug, error) {
	if err := RegisterMIMETypes(); err != nil {
		return nil, fmt.Errorf("register MIME types: %w", err)
	}

	ln, err := ListenWithScan(opts.Port, PortScanAttempts)
	if err != nil {
		return nil, err
	}

	d := &Debug{opts: opts, ln: ln}
	d.srv = &http.Server{Handler: DebugHandler(opts)}
	return d, nil
}

// Port returns the port actually bound, which differs from the requested
// one when the scan had to move forward.
func (d *Debug) Port() int { return listenerPort(d.ln) }

// Serve moves into the served directory and runs the accept loop until
// Shutdown or a listener error. The previous working directory is
// restored before Serve returns.
func (d *Debug) Serve() error {
	orig, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("save working directory: %w", err)
	}
	if err := os.Chdir(d.opts.Dir); err != nil {
		return fmt.Errorf("enter serve directory: %w", err)
	}
	defer os.Chdir(orig)

	if err := d.srv.Serve(d.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the accept loop and waits for in-flight requests.
func (d *Debug) Shutdown(ctx context.Context) error { return d.srv.Shutdown(ctx) }
