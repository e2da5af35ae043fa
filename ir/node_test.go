package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMappingInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("zebra", FromInt(1))
	m.Set("alpha", FromInt(2))
	m.Set("mike", FromInt(3))

	want := []string{"zebra", "alpha", "mike"}
	if diff := cmp.Diff(want, m.Keys); diff != "" {
		t.Errorf("mapping keys (-want +got):\n%s", diff)
	}
}

func TestMappingSetReplaces(t *testing.T) {
	m := NewMapping()
	m.Set("a", FromInt(1))
	m.Set("b", FromInt(2))
	m.Set("a", FromInt(3))

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	n, ok := m.Get("a")
	if !ok {
		t.Fatalf("Get(a) missing")
	}
	if v, _ := Int(n); v != 3 {
		t.Errorf("Get(a) = %v, want 3", v)
	}
	// Replacement keeps the original position.
	if m.Keys[0] != "a" {
		t.Errorf("Keys[0] = %q, want a", m.Keys[0])
	}
}

func TestMappingGetMissing(t *testing.T) {
	m := NewMapping()
	m.Set("a", Null())
	if _, ok := m.Get("b"); ok {
		t.Errorf("Get(b) ok, want missing")
	}
	if i := m.Index("b"); i != -1 {
		t.Errorf("Index(b) = %d, want -1", i)
	}
}

func TestSequenceAt(t *testing.T) {
	s := NewSequence(FromString("a"), FromString("b"))
	if n := s.At(1); n == nil {
		t.Errorf("At(1) = nil")
	}
	if n := s.At(2); n != nil {
		t.Errorf("At(2) = %v, want nil", n)
	}
	if n := s.At(-1); n != nil {
		t.Errorf("At(-1) = %v, want nil", n)
	}
}

func TestCheckedAccessors(t *testing.T) {
	if _, err := AsScalar(NewMapping()); !errors.Is(err, ErrNotScalar) {
		t.Errorf("AsScalar(mapping) err = %v, want ErrNotScalar", err)
	}
	if _, err := AsSequence(FromString("x")); !errors.Is(err, ErrNotSequence) {
		t.Errorf("AsSequence(scalar) err = %v, want ErrNotSequence", err)
	}
	if _, err := AsMapping(NewSequence()); !errors.Is(err, ErrNotMapping) {
		t.Errorf("AsMapping(sequence) err = %v, want ErrNotMapping", err)
	}
	s, err := AsScalar(FromString("x"))
	if err != nil || s.Value != "x" {
		t.Errorf("AsScalar(scalar) = %v, %v", s, err)
	}
}

func TestClone(t *testing.T) {
	m := NewMapping()
	m.Set("list", NewSequence(FromInt(1), FromInt(2)))
	m.Set("name", FromString("alice"))

	c := Clone(m).(*Mapping)
	if diff := cmp.Diff(m, c); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	// Mutating the clone must not touch the original.
	c.Set("name", FromString("bob"))
	seq, _ := c.Get("list")
	seq.(*Sequence).Items[0] = FromInt(9)

	n, _ := m.Get("name")
	if v, _ := Str(n); v != "alice" {
		t.Errorf("original name = %q after clone mutation", v)
	}
	orig, _ := m.Get("list")
	if v, _ := Int(orig.(*Sequence).Items[0]); v != 1 {
		t.Errorf("original list[0] = %v after clone mutation", v)
	}
}

func TestVisit(t *testing.T) {
	m := NewMapping()
	m.Set("a", FromInt(1))
	m.Set("b", NewSequence(FromString("x"), FromString("y")))

	count := 0
	err := Visit(m, func(Node) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("Visit error = %v", err)
	}
	// mapping + scalar + sequence + 2 items
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}

	stop := errors.New("stop")
	if err := Visit(m, func(Node) error { return stop }); !errors.Is(err, stop) {
		t.Errorf("Visit err = %v, want stop", err)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		n    *Scalar
		want string
	}{
		{n: FromInt(42), want: "42"},
		{n: FromFloat(92.5), want: "92.5"},
		{n: FromBool(true), want: "true"},
		{n: FromBool(false), want: "false"},
		{n: Null(), want: "null"},
		{n: FromString("hi"), want: "hi"},
	}
	for _, tt := range tests {
		if tt.n.Value != tt.want {
			t.Errorf("scalar value = %q, want %q", tt.n.Value, tt.want)
		}
		if tt.n.Style != Plain {
			t.Errorf("scalar style = %v, want Plain", tt.n.Style)
		}
	}
}
