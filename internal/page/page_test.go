package page

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "plain title",
			doc:  `<html><head><title>Demo App</title></head><body></body></html>`,
			want: "Demo App",
		},
		{
			name: "whitespace trimmed",
			doc:  "<html><head><title>\n  Demo App  \n</title></head></html>",
			want: "Demo App",
		},
		{
			name: "no title element",
			doc:  `<html><head></head><body>hi</body></html>`,
			want: "",
		},
		{
			name: "empty document",
			doc:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(strings.NewReader(tt.doc)); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleOf_MissingFile(t *testing.T) {
	if got := TitleOf(filepath.Join(t.TempDir(), "nope.html")); got != "" {
		t.Errorf("expected empty title for a missing file, got %q", got)
	}
}

func TestInjectReload(t *testing.T) {
	in := []byte(`<!DOCTYPE html><html><head><title>x</title></head><body><p>content</p></body></html>`)
	out := string(InjectReload(in))

	if n := strings.Count(out, "__devserve/stamp"); n != 1 {
		t.Fatalf("expected exactly one injected poller, found %d in %q", n, out)
	}
	if !strings.Contains(out, "<p>content</p>") {
		t.Error("original content lost during injection")
	}

	script := strings.Index(out, "<script>")
	bodyEnd := strings.Index(out, "</body>")
	if script == -1 || bodyEnd == -1 || script > bodyEnd {
		t.Errorf("script must sit inside the body, got %q", out)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("doctype lost during injection: %q", out)
	}
}

func TestInjectReload_BareDocument(t *testing.T) {
	in := []byte(`<html><body>x</body></html>`)
	out := InjectReload(in)

	if len(out) <= len(in) {
		t.Error("injection did not grow the document")
	}
	if !strings.Contains(string(out), "__devserve/stamp") {
		t.Errorf("poller missing from %q", out)
	}
}
