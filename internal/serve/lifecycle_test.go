package serve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

func TestDebug_ServeShutdownRestoresWorkingDirectory(t *testing.T) {
	dir := newDebugSite(t)
	d, err := NewDebug(DebugOptions{Port: 0, Dir: dir, Out: io.Discard})
	if err != nil {
		t.Fatalf("NewDebug() error: %v", err)
	}

	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- d.Serve() }()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/app.js", d.Port()))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if string(body) != `console.log("hi");` {
		t.Errorf("unexpected body: %q", body)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := d.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("Serve() error: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd after shutdown: %v", err)
	}
	if wd != orig {
		t.Errorf("working directory not restored: got %q, want %q", wd, orig)
	}
}

func TestSPA_ServeAndShutdown(t *testing.T) {
	s, err := NewSPA(SPAOptions{Port: 0, Dir: newSPASite(t), Out: io.Discard})
	if err != nil {
		t.Fatalf("NewSPA() error: %v", err)
	}

	errc := make(chan error, 1)
	go func() { errc <- s.Serve() }()

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/app/settings", s.Port()))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if string(body) != indexDoc {
		t.Errorf("expected the index document on a client route, got %q", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("Serve() error: %v", err)
	}
}
