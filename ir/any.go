package ir

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ToAny converts the tree rooted at n to plain Go values: mappings become
// map[string]any, sequences []any, and scalars are classified into int64,
// float64, bool, nil or string. Insertion order is lost in the map
// projection.
func ToAny(n Node) any {
	switch t := n.(type) {
	case nil:
		return nil
	case *Scalar:
		switch Classify(t.Value) {
		case ClassInt:
			v, _ := strconv.ParseInt(t.Value, 10, 64)
			return v
		case ClassFloat:
			v, _ := strconv.ParseFloat(t.Value, 64)
			return v
		case ClassBool:
			v, _ := boolText(t.Value)
			return v
		case ClassNull:
			return nil
		default:
			return t.Value
		}
	case *Sequence:
		res := make([]any, len(t.Items))
		for i, item := range t.Items {
			res[i] = ToAny(item)
		}
		return res
	case *Mapping:
		res := make(map[string]any, len(t.Keys))
		for i, k := range t.Keys {
			res[k] = ToAny(t.Values[i])
		}
		return res
	default:
		panic("impossible variant")
	}
}

// FromAny converts a plain Go value to a node tree. Map keys are sorted so
// the result is deterministic. Values outside the directly handled types
// are round-tripped through JSON, so struct values marshal into mappings.
func FromAny(v any) (Node, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Node:
		return Clone(t), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromString(strconv.FormatUint(uint64(t), 10)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return FromString(strconv.FormatUint(t, 10)), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return FromString(t.String()), nil
	case []any:
		seq := &Sequence{Items: make([]Node, len(t))}
		for i, elt := range t {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			seq.Items[i] = n
		}
		return seq, nil
	case []Node:
		seq := &Sequence{Items: make([]Node, len(t))}
		for i, elt := range t {
			seq.Items[i] = Clone(elt)
		}
		return seq, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			n, err := FromAny(t[k])
			if err != nil {
				return nil, err
			}
			m.Set(k, n)
		}
		return m, nil
	case map[string]Node:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMapping()
		for _, k := range keys {
			m.Set(k, Clone(t[k]))
		}
		return m, nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %T", ErrBadValue, v)
		}
		return FromJSON(d)
	}
}
