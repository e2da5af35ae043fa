package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToAny(t *testing.T) {
	m := NewMapping()
	m.Set("count", FromString("42"))
	m.Set("ratio", FromString("92.5"))
	m.Set("ok", FromString("yes"))
	m.Set("none", FromString("~"))
	m.Set("name", FromString("alice"))
	m.Set("list", NewSequence(FromString("1"), FromString("x")))

	want := map[string]any{
		"count": int64(42),
		"ratio": 92.5,
		"ok":    true,
		"none":  nil,
		"name":  "alice",
		"list":  []any{int64(1), "x"},
	}
	if diff := cmp.Diff(want, ToAny(m)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	in := map[string]any{
		"b": true,
		"n": nil,
		"i": 42,
		"f": 1.5,
		"s": "text",
		"seq": []any{
			int64(1),
			map[string]any{"k": "v"},
		},
	}
	n, err := FromAny(in)
	if err != nil {
		t.Fatalf("FromAny error: %v", err)
	}
	want := map[string]any{
		"b": true,
		"n": nil,
		"i": int64(42),
		"f": 1.5,
		"s": "text",
		"seq": []any{
			int64(1),
			map[string]any{"k": "v"},
		},
	}
	if diff := cmp.Diff(want, ToAny(n)); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestFromAnySortsKeys(t *testing.T) {
	n, err := FromAny(map[string]any{"zeta": 1, "alpha": 2, "mid": 3})
	if err != nil {
		t.Fatalf("FromAny error: %v", err)
	}
	m := n.(*Mapping)
	want := []string{"alpha", "mid", "zeta"}
	if diff := cmp.Diff(want, m.Keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestFromAnyStruct(t *testing.T) {
	type server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}
	n, err := FromAny(server{Host: "localhost", Port: 8080})
	if err != nil {
		t.Fatalf("FromAny error: %v", err)
	}
	v := NewView(n)
	if got := v.At("host").StrOr(""); got != "localhost" {
		t.Errorf("host = %q, want localhost", got)
	}
	if got := v.At("port").IntOr(-1); got != 8080 {
		t.Errorf("port = %v, want 8080", got)
	}
}

func TestFromAnyNodePassthrough(t *testing.T) {
	orig := KeyVal("a", FromInt(1))
	n, err := FromAny(orig)
	if err != nil {
		t.Fatalf("FromAny error: %v", err)
	}
	// The value is cloned, not aliased.
	n.(*Mapping).Set("a", FromInt(2))
	got, _ := orig.Get("a")
	if v, _ := Int(got); v != 1 {
		t.Errorf("original mutated through FromAny result")
	}
}

func TestToJSON(t *testing.T) {
	m := NewMapping()
	m.Set("n", FromString("42"))
	m.Set("b", FromString("true"))
	m.Set("z", Null())
	m.Set("s", FromString("hi"))

	d, err := ToJSON(m)
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	want := `{"b":true,"n":42,"s":"hi","z":null}`
	if string(d) != want {
		t.Errorf("ToJSON = %s, want %s", d, want)
	}
}

func TestFromJSON(t *testing.T) {
	n, err := FromJSON([]byte(`{"a": {"b": [1, 2]}, "c": "three"}`))
	if err != nil {
		t.Fatalf("FromJSON error: %v", err)
	}
	v := NewView(n)
	if got := v.At("a.b[1]").IntOr(-1); got != 2 {
		t.Errorf("a.b[1] = %v, want 2", got)
	}
	if got := v.At("c").StrOr(""); got != "three" {
		t.Errorf("c = %q, want three", got)
	}
}
