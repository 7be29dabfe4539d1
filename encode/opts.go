package encode

import (
	"errors"
	"fmt"
)

type EncodeOption func(*EncState)

// KeyOrder selects how object keys are ordered on the wire.
type KeyOrder int

const (
	// InsertionOrder keeps the order of the object's Fields.
	InsertionOrder KeyOrder = iota
	// LengthFirstOrder sorts encoded keys shortest first, then bytewise
	// (RFC 7049 canonical CBOR).
	LengthFirstOrder
	// BytewiseOrder sorts encoded keys bytewise (RFC 8949 core
	// deterministic encoding).
	BytewiseOrder
)

var ErrBadKeyOrder = errors.New("bad key order")

func ParseKeyOrder(v string) (KeyOrder, error) {
	o, ok := map[string]KeyOrder{
		"i":         InsertionOrder,
		"insertion": InsertionOrder,
		"l":         LengthFirstOrder,
		"length":    LengthFirstOrder,
		"b":         BytewiseOrder,
		"bytewise":  BytewiseOrder,
	}[v]
	if ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKeyOrder, v)
}

func (o KeyOrder) String() string {
	d, err := o.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (o KeyOrder) MarshalText() ([]byte, error) {
	switch o {
	case InsertionOrder:
		return []byte("insertion"), nil
	case LengthFirstOrder:
		return []byte("length"), nil
	case BytewiseOrder:
		return []byte("bytewise"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a key order>", o)
	}
}

func (o *KeyOrder) UnmarshalText(d []byte) error {
	po, err := ParseKeyOrder(string(d))
	if err != nil {
		return err
	}
	*o = po
	return nil
}

func EncodeKeyOrder(o KeyOrder) EncodeOption {
	return func(es *EncState) { es.order = o }
}

// EncodeShortestFloat encodes floats as float16 or float32 when that
// preserves the value.
func EncodeShortestFloat(v bool) EncodeOption {
	return func(es *EncState) { es.shortestFloat = v }
}

func EncodeMaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// OptsString summarizes the effective options, for logging.
func OptsString(opts ...EncodeOption) string {
	es := newEncState(opts...)
	return fmt.Sprintf("order=%s shortest-float=%t max-depth=%d", es.order, es.shortestFloat, es.maxDepth)
}
