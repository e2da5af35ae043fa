package ir

import "strconv"

// Node is the sealed interface over the three yamlet tree variants. The
// only implementations are *Scalar, *Sequence and *Mapping.
type Node interface {
	Kind() Kind
	node()
}

// Scalar holds a scalar's raw text as written. Value carries no type
// information; use Classify and the typed accessors for that.
type Scalar struct {
	Value string
	Style Style
}

func (s *Scalar) Kind() Kind { return KindScalar }
func (s *Scalar) node()      {}

// Sequence is an ordered list of nodes. Order is parse order.
type Sequence struct {
	Items []Node
}

func (s *Sequence) Kind() Kind { return KindSequence }
func (s *Sequence) node()      {}

func (s *Sequence) Len() int {
	return len(s.Items)
}

// At returns the i'th item, or nil if i is out of range.
func (s *Sequence) At(i int) Node {
	if i < 0 || i >= len(s.Items) {
		return nil
	}
	return s.Items[i]
}

func (s *Sequence) Append(items ...Node) {
	s.Items = append(s.Items, items...)
}

// Mapping holds key/value pairs in insertion order. Keys[i] is the key for
// the value at Values[i], so both slices always have the same length. Keys
// are unique; Set replaces in place.
type Mapping struct {
	Keys   []string
	Values []Node
}

func (m *Mapping) Kind() Kind { return KindMapping }
func (m *Mapping) node()      {}

func (m *Mapping) Len() int {
	return len(m.Keys)
}

// Index returns the position of key, or -1.
func (m *Mapping) Index(key string) int {
	for i, k := range m.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

func (m *Mapping) Get(key string) (Node, bool) {
	i := m.Index(key)
	if i == -1 {
		return nil, false
	}
	return m.Values[i], true
}

// Set stores n under key, replacing the existing value in place if the key
// is already present and appending otherwise.
func (m *Mapping) Set(key string, n Node) {
	if i := m.Index(key); i != -1 {
		m.Values[i] = n
		return
	}
	m.Keys = append(m.Keys, key)
	m.Values = append(m.Values, n)
}

// Constructors.

func FromString(v string) *Scalar {
	return &Scalar{Value: v}
}

func FromInt(v int64) *Scalar {
	return &Scalar{Value: strconv.FormatInt(v, 10)}
}

func FromFloat(v float64) *Scalar {
	return &Scalar{Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

func FromBool(v bool) *Scalar {
	return &Scalar{Value: strconv.FormatBool(v)}
}

func Null() *Scalar {
	return &Scalar{Value: "null"}
}

func NewSequence(items ...Node) *Sequence {
	return &Sequence{Items: items}
}

func NewMapping() *Mapping {
	return &Mapping{}
}

// KeyVal returns a one-entry mapping.
func KeyVal(key string, v Node) *Mapping {
	return &Mapping{Keys: []string{key}, Values: []Node{v}}
}

// Checked variant accessors.

func AsScalar(n Node) (*Scalar, error) {
	s, ok := n.(*Scalar)
	if !ok {
		return nil, ErrNotScalar
	}
	return s, nil
}

func AsSequence(n Node) (*Sequence, error) {
	s, ok := n.(*Sequence)
	if !ok {
		return nil, ErrNotSequence
	}
	return s, nil
}

func AsMapping(n Node) (*Mapping, error) {
	m, ok := n.(*Mapping)
	if !ok {
		return nil, ErrNotMapping
	}
	return m, nil
}

// Clone returns a deep copy of the tree rooted at n.
func Clone(n Node) Node {
	switch t := n.(type) {
	case nil:
		return nil
	case *Scalar:
		c := *t
		return &c
	case *Sequence:
		items := make([]Node, len(t.Items))
		for i, item := range t.Items {
			items[i] = Clone(item)
		}
		return &Sequence{Items: items}
	case *Mapping:
		keys := make([]string, len(t.Keys))
		copy(keys, t.Keys)
		vals := make([]Node, len(t.Values))
		for i, v := range t.Values {
			vals[i] = Clone(v)
		}
		return &Mapping{Keys: keys, Values: vals}
	}
	return nil
}

// Visit walks the tree rooted at n depth-first, calling f for each node
// before its children. Visiting stops at the first error, which is
// returned.
func Visit(n Node, f func(Node) error) error {
	if n == nil {
		return nil
	}
	if err := f(n); err != nil {
		return err
	}
	switch t := n.(type) {
	case *Sequence:
		for _, item := range t.Items {
			if err := Visit(item, f); err != nil {
				return err
			}
		}
	case *Mapping:
		for _, v := range t.Values {
			if err := Visit(v, f); err != nil {
				return err
			}
		}
	}
	return nil
}
