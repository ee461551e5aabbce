package serve

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/f4ah6o/devserve-go/internal/page"
)

// StampRoute is the poll endpoint the injected reload script talks to.
const StampRoute = "/__devserve/stamp"

// TreeStamp returns the newest modification time under root in unix
// nanoseconds. Walk errors are skipped; a file the server cannot stat is
// a file the browser cannot fetch either.
func TreeStamp(root string) int64 {
	var newest int64
	filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			// 巨大なディレクトリはスキップ
			switch d.Name() {
			case ".git", "node_modules":
				if p != root {
					return filepath.SkipDir
				}
			}
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if m := info.ModTime().UnixNano(); m > newest {
			newest = m
		}
		return nil
	})
	return newest
}

// StampHandler serves the current tree stamp as JSON.
func StampHandler(root string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"stamp":%d}`, TreeStamp(root))
	})
}

// htmlRewriter buffers successful text/html responses so the reload
// script can be appended before anything reaches the client. All other
// responses stream through untouched.
type htmlRewriter struct {
	rw        http.ResponseWriter
	status    int
	started   bool
	buffering bool
	buf       bytes.Buffer
}

func (w *htmlRewriter) Header() http.Header { return w.rw.Header() }

func (w *htmlRewriter) WriteHeader(code int) {
	if w.started {
		return
	}
	w.started = true
	w.status = code

	ct := w.rw.Header().Get("Content-Type")
	if code == http.StatusOK && strings.HasPrefix(ct, "text/html") {
		w.buffering = true
		return
	}
	w.rw.WriteHeader(code)
}

func (w *htmlRewriter) Write(b []byte) (int, error) {
	if !w.started {
		w.WriteHeader(http.StatusOK)
	}
	if w.buffering {
		return w.buf.Write(b)
	}
	return w.rw.Write(b)
}

// flush rewrites and releases a buffered HTML response. Content-Length is
// recomputed because the injection grows the body.
func (w *htmlRewriter) flush() {
	if !w.buffering {
		return
	}
	out := page.InjectReload(w.buf.Bytes())
	w.rw.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.rw.WriteHeader(w.status)
	w.rw.Write(out)
}

// WithReload wraps next so HTML pages leave the server with the
// auto-reload poller injected.
func WithReload(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &htmlRewriter{rw: w}
		next.ServeHTTP(hw, r)
		hw.flush()
	})
}
