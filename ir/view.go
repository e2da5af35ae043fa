package ir

// View is a non-owning, read-only reference into a node tree. The zero
// View is absent, and every View operation is total: lookups that miss and
// conversions that fail produce the absent view or the caller's default,
// never an error. A View is valid only while the tree it references is
// alive and unmutated.
type View struct {
	n Node
}

func NewView(n Node) View {
	return View{n: n}
}

// Ok reports whether the view references a node.
func (v View) Ok() bool {
	return v.n != nil
}

// Node returns the referenced node, or nil for the absent view.
func (v View) Node() Node {
	return v.n
}

func (v View) IsScalar() bool {
	_, ok := v.n.(*Scalar)
	return ok
}

func (v View) IsSequence() bool {
	_, ok := v.n.(*Sequence)
	return ok
}

func (v View) IsMapping() bool {
	_, ok := v.n.(*Mapping)
	return ok
}

// Len returns the child count of a sequence or mapping, and 0 otherwise.
func (v View) Len() int {
	switch t := v.n.(type) {
	case *Sequence:
		return t.Len()
	case *Mapping:
		return t.Len()
	}
	return 0
}

// Key subscripts a mapping. Absent if the view is not a mapping or the key
// is missing.
func (v View) Key(key string) View {
	m, ok := v.n.(*Mapping)
	if !ok {
		return View{}
	}
	n, ok := m.Get(key)
	if !ok {
		return View{}
	}
	return View{n: n}
}

// Index subscripts a sequence. Absent if the view is not a sequence or the
// index is out of range.
func (v View) Index(i int) View {
	s, ok := v.n.(*Sequence)
	if !ok {
		return View{}
	}
	n := s.At(i)
	if n == nil {
		return View{}
	}
	return View{n: n}
}

func (v View) Str() (string, bool) {
	return Str(v.n)
}

func (v View) Int() (int64, bool) {
	return Int(v.n)
}

func (v View) Float() (float64, bool) {
	return Float(v.n)
}

func (v View) Bool() (bool, bool) {
	return Bool(v.n)
}

// StrOr returns the scalar's raw text, or def when the view is absent or
// not a scalar.
func (v View) StrOr(def string) string {
	if s, ok := v.Str(); ok {
		return s
	}
	return def
}

func (v View) IntOr(def int64) int64 {
	if i, ok := v.Int(); ok {
		return i
	}
	return def
}

func (v View) FloatOr(def float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return def
}

func (v View) BoolOr(def bool) bool {
	if b, ok := v.Bool(); ok {
		return b
	}
	return def
}
