package yamlet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yamlet-format/go-yamlet/parse"
)

func parseDoc(t *testing.T, text string) *Document {
	t.Helper()
	doc, err := Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return doc
}

func TestParseAndView(t *testing.T) {
	doc := parseDoc(t, "server:\n  host: localhost\n  port: 8080\nflags: [a, b]\n")
	v := doc.View()
	if got := v.At("server.port").IntOr(0); got != 8080 {
		t.Errorf("server.port: got %d", got)
	}
	if got := v.At("server.host").StrOr(""); got != "localhost" {
		t.Errorf("server.host: got %q", got)
	}
	if got := v.At("flags[1]").StrOr(""); got != "b" {
		t.Errorf("flags[1]: got %q", got)
	}
	if got := v.At("server.timeout").IntOr(30); got != 30 {
		t.Errorf("absent path: got %d, want the default", got)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yl")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if got := doc.View().At("a").IntOr(0); got != 1 {
		t.Errorf("a: got %d", got)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.yl"))
	if !errors.Is(err, parse.ErrFile) {
		t.Errorf("got %v, want ErrFile", err)
	}
}

func TestParseFileNamesErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yl")
	if err := os.WriteFile(path, []byte("\ta: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	if !errors.Is(err, parse.ErrIndent) {
		t.Fatalf("got %v, want ErrIndent", err)
	}
	if !strings.Contains(err.Error(), "bad.yl") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestMarshalStable(t *testing.T) {
	in := "name: demo\nserver: {host:localhost, port:8080}\ntags: [a, b]\n"
	doc := parseDoc(t, in)
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != in {
		t.Errorf("got %q, want %q", out, in)
	}
}

func TestDiff(t *testing.T) {
	a := parseDoc(t, "a: 1\nb: 2\n")
	b := parseDoc(t, "a: 1\nb: 3\n")
	d, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	want := "  a: 1\n- b: 2\n+ b: 3\n"
	if d != want {
		t.Errorf("got %q, want %q", d, want)
	}
	same, err := Diff(a, a)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if same != "" {
		t.Errorf("diff of a document with itself: %q", same)
	}
}

func TestPatch(t *testing.T) {
	doc := parseDoc(t, "server:\n  host: localhost\n  port: 8080\n")
	patch := []byte(`[
		{"op": "replace", "path": "/server/port", "value": 9090},
		{"op": "add", "path": "/server/tls", "value": true}
	]`)
	got, err := Patch(doc, patch)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	v := got.View()
	if p := v.At("server.port").IntOr(0); p != 9090 {
		t.Errorf("server.port: got %d", p)
	}
	if tls := v.At("server.tls").BoolOr(false); !tls {
		t.Error("server.tls: got false")
	}
	if h := v.At("server.host").StrOr(""); h != "localhost" {
		t.Errorf("server.host: got %q", h)
	}
	if p := doc.View().At("server.port").IntOr(0); p != 8080 {
		t.Errorf("source document changed: port %d", p)
	}
}

func TestPatchErrors(t *testing.T) {
	doc := parseDoc(t, "a: 1\n")
	if _, err := Patch(doc, []byte(`not json`)); err == nil {
		t.Error("malformed patch: no error")
	}
	if _, err := Patch(doc, []byte(`[{"op": "replace", "path": "/missing/x", "value": 1}]`)); err == nil {
		t.Error("replace at a missing path: no error")
	}
}
