package yamlet

import (
	"github.com/yamlet-format/go-yamlet/debug"
	"github.com/yamlet-format/go-yamlet/ir"
)

// Match reports whether doc matches pattern. Mappings match by
// containment: every pattern entry must match the document's entry for
// that key, extra document entries are ignored. Sequences match element
// by element at equal length. Scalars compare by classified value, so
// "yes" matches "true" and "1" does not match "1.0". A null pattern
// matches any node.
func Match(doc, pattern ir.Node) bool {
	if debug.Match() {
		debug.Logf("match: %v against %v\n", doc.Kind(), pattern.Kind())
	}
	switch p := pattern.(type) {
	case *ir.Scalar:
		if ir.Classify(p.Value) == ir.ClassNull {
			return true
		}
		d, ok := doc.(*ir.Scalar)
		if !ok {
			return false
		}
		return ir.ToAny(d) == ir.ToAny(p)
	case *ir.Sequence:
		d, ok := doc.(*ir.Sequence)
		if !ok || d.Len() != p.Len() {
			return false
		}
		for i := range p.Items {
			if !Match(d.Items[i], p.Items[i]) {
				return false
			}
		}
		return true
	case *ir.Mapping:
		d, ok := doc.(*ir.Mapping)
		if !ok {
			return false
		}
		for i, key := range p.Keys {
			dv, ok := d.Get(key)
			if !ok || !Match(dv, p.Values[i]) {
				return false
			}
		}
		return true
	default:
		panic("kind")
	}
}

// Trim returns a copy of doc reduced to the shape of pattern: mapping
// entries absent from the pattern are dropped, and sequence elements are
// kept only where some pattern element matches them, first match wins.
// Scalar and null patterns keep the node whole. Document order is
// preserved.
func Trim(doc, pattern ir.Node) ir.Node {
	switch p := pattern.(type) {
	case *ir.Scalar:
		return ir.Clone(doc)
	case *ir.Sequence:
		d, ok := doc.(*ir.Sequence)
		if !ok {
			return ir.Clone(doc)
		}
		res := ir.NewSequence()
		used := make([]bool, d.Len())
		for _, pe := range p.Items {
			for i, de := range d.Items {
				if used[i] || !Match(de, pe) {
					continue
				}
				res.Append(Trim(de, pe))
				used[i] = true
				break
			}
		}
		return res
	case *ir.Mapping:
		d, ok := doc.(*ir.Mapping)
		if !ok {
			return ir.Clone(doc)
		}
		res := ir.NewMapping()
		for i, key := range d.Keys {
			pv, ok := p.Get(key)
			if !ok {
				continue
			}
			res.Set(key, Trim(d.Values[i], pv))
		}
		return res
	default:
		panic("kind")
	}
}
