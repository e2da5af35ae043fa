package ir

import "fmt"

type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindScalar:   "Scalar",
		KindSequence: "Sequence",
		KindMapping:  "Mapping",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Scalar":   KindScalar,
		"Sequence": KindSequence,
		"Mapping":  KindMapping,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindScalar,
		KindSequence,
		KindMapping,
	}
}

func (k Kind) IsLeaf() bool {
	return k == KindScalar
}
