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
	"strings"
)

// SPAOptions configure the single-page-application server.
type SPAOptions struct {
	Port  int
	Dir   string
	Index string    // root index document, defaults to index.html
	Out   io.Writer // request log destination, defaults to os.Stdout
}

// SPAHandler serves dir as a single-page application. Paths whose last
// segment contains a dot are treated as asset references and served
// directly, missing or not; any other GET path that does not resolve to
// an existing file is rewritten to the index document so the client-side
// router can handle it.
func SPAHandler(opts SPAOptions) http.Handler {
	if opts.Index == "" {
		opts.Index = "index.html"
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return WithSPALog(opts.Out, WithSPAHeaders(spaFiles(opts.Dir, opts.Index)))
}

func spaFiles(dir, index string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			fileServer.ServeHTTP(w, r)
			return
		}

		p := path.Clean("/" + r.URL.Path)
		if p == "/" {
			serveDocBytes(w, r, filepath.Join(dir, index))
			return
		}
		// FileServer redirects index-named paths to "./"; serve them
		// directly instead.
		if path.Base(p) == index {
			serveDocBytes(w, r, filepath.Join(dir, filepath.FromSlash(p)))
			return
		}

		// A dot in the last segment means a static asset reference; no
		// rewrite even when the file is missing.
		if strings.Contains(path.Base(p), ".") {
			fileServer.ServeHTTP(w, r)
			return
		}

		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p))); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		serveDocBytes(w, r, filepath.Join(dir, index))
	})
}

// serveDocBytes sends an HTML document's bytes directly. http.ServeFile
// and http.FileServer are avoided on purpose: both answer index.html
// paths with a redirect to "./".
func serveDocBytes(w http.ResponseWriter, r *http.Request, fullPath string) {
	b, err := os.ReadFile(fullPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b)
}

// SPA is a bound, ready-to-serve SPA file server.
type SPA struct {
	opts SPAOptions
	srv  *http.Server
	ln   net.Listener
}

// NewSPA resolves the serve directory and binds the listener. Unlike the
// debug server there is no port scan; a busy port is a hard error.
func NewSPA(opts SPAOptions) (*SPA, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	abs, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}
	opts.Dir = abs

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.Port))
	if err != nil {
		return nil, fmt.Errorf("bind port %d: %w", opts.Port, err)
	}

	s := &SPA{opts: opts, ln: ln}
	s.srv = &http.Server{Handler: SPAHandler(opts)}
	return s, nil
}

// Port returns the port actually bound.
func (s *SPA) Port() int { return listenerPort(s.ln) }

// Serve runs the accept loop until Shutdown or a listener error.
func (s *SPA) Serve() error {
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the accept loop and waits for in-flight requests.
func (s *SPA) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
