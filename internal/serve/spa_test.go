package serve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const indexDoc = `<!DOCTYPE html><html><head><title>Demo App</title></head><body>app shell</body></html>`

func newSPASite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexDoc), 0644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{margin:0}"), 0644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
	return dir
}

func spaGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestSPAHandler_RootServesIndexBytes(t *testing.T) {
	h := SPAHandler(SPAOptions{Dir: newSPASite(t), Out: io.Discard})

	root := spaGet(t, h, "/")
	direct := spaGet(t, h, "/index.html")

	if root.Code != http.StatusOK || direct.Code != http.StatusOK {
		t.Fatalf("expected 200/200, got %d/%d", root.Code, direct.Code)
	}
	if root.Body.String() != direct.Body.String() {
		t.Errorf("root and /index.html differ:\n%q\n%q", root.Body.String(), direct.Body.String())
	}
	if root.Body.String() != indexDoc {
		t.Errorf("unexpected index bytes: %q", root.Body.String())
	}
}

func TestSPAHandler_RouteWithoutExtensionFallsBack(t *testing.T) {
	h := SPAHandler(SPAOptions{Dir: newSPASite(t), Out: io.Discard})

	rr := spaGet(t, h, "/app/settings")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != indexDoc {
		t.Errorf("expected index document, got %q", rr.Body.String())
	}
}

func TestSPAHandler_MissingAssetStays404(t *testing.T) {
	h := SPAHandler(SPAOptions{Dir: newSPASite(t), Out: io.Discard})

	rr := spaGet(t, h, "/logo.png")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if rr.Body.String() == indexDoc {
		t.Error("missing asset must not be rewritten to the index document")
	}
}

func TestSPAHandler_ExistingAssetServedDirectly(t *testing.T) {
	h := SPAHandler(SPAOptions{Dir: newSPASite(t), Out: io.Discard})

	rr := spaGet(t, h, "/app.css")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Body.String(); got != "body{margin:0}" {
		t.Errorf("unexpected asset body: %q", got)
	}
}

func TestSPAHandler_CORSHeadersOnEveryResponse(t *testing.T) {
	h := SPAHandler(SPAOptions{Dir: newSPASite(t), Out: io.Discard})

	for _, path := range []string{"/", "/app/settings", "/logo.png", "/app.css"} {
		t.Run(path, func(t *testing.T) {
			rr := spaGet(t, h, path)
			if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
			}
			if got := rr.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
				t.Errorf("Access-Control-Allow-Methods = %q", got)
			}
		})
	}
}

func TestSPAHandler_MissingIndexIs404(t *testing.T) {
	h := SPAHandler(SPAOptions{Dir: t.TempDir(), Out: io.Discard})

	rr := spaGet(t, h, "/app/settings")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without an index document, got %d", rr.Code)
	}
}
