package ir

import (
	"strconv"
	"strings"
)

// Class is the semantic type of a scalar's raw text. Classification is
// applied on demand, never during parsing.
type Class int

const (
	ClassInt Class = iota
	ClassFloat
	ClassBool
	ClassNull
	ClassString
)

func (c Class) String() string {
	s, ok := map[Class]string{
		ClassInt:    "Int",
		ClassFloat:  "Float",
		ClassBool:   "Bool",
		ClassNull:   "Null",
		ClassString: "String",
	}[c]
	if ok {
		return s
	}
	return "<unknown class>"
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(d []byte) error {
	cc, ok := map[string]Class{
		"Int":    ClassInt,
		"Float":  ClassFloat,
		"Bool":   ClassBool,
		"Null":   ClassNull,
		"String": ClassString,
	}[string(d)]
	if !ok {
		return strconv.ErrSyntax
	}
	*c = cc
	return nil
}

func Classes() []Class {
	return []Class{
		ClassInt,
		ClassFloat,
		ClassBool,
		ClassNull,
		ClassString,
	}
}

// Classify reports the class of raw scalar text. The order is fixed: a
// token that parses as an integer is ClassInt even though it also parses
// as a float, and the boolean words win over the null words.
func Classify(s string) Class {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ClassInt
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return ClassFloat
	}
	if _, ok := boolText(s); ok {
		return ClassBool
	}
	if nullText(s) {
		return ClassNull
	}
	return ClassString
}

// nullText reports whether s is one of the null spellings: "null" in any
// case, "~", or empty.
func nullText(s string) bool {
	return s == "" || s == "~" || strings.EqualFold(s, "null")
}

func boolText(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "true"),
		strings.EqualFold(s, "yes"),
		strings.EqualFold(s, "on"):
		return true, true
	case strings.EqualFold(s, "false"),
		strings.EqualFold(s, "no"),
		strings.EqualFold(s, "off"):
		return false, true
	}
	return false, false
}

// Str returns a scalar's raw text. Unlike the typed accessors it does not
// filter null spellings; the raw text of a null scalar is still text.
func Str(n Node) (string, bool) {
	s, ok := n.(*Scalar)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// Int converts a scalar's raw text to an integer. Non-scalars, null
// spellings and unparseable text are absent, never an error.
func Int(n Node) (int64, bool) {
	s, ok := n.(*Scalar)
	if !ok || nullText(s.Value) {
		return 0, false
	}
	v, err := strconv.ParseInt(s.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float converts a scalar's raw text to a float. Absence rules match Int.
func Float(n Node) (float64, bool) {
	s, ok := n.(*Scalar)
	if !ok || nullText(s.Value) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Bool converts a scalar's raw text to a boolean. The word sets are
// case-insensitive: true/yes/on and false/no/off.
func Bool(n Node) (bool, bool) {
	s, ok := n.(*Scalar)
	if !ok || nullText(s.Value) {
		return false, false
	}
	return boolText(s.Value)
}
