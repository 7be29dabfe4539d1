package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/tony-format/cborfix/ir"

	"github.com/fxamacker/cbor/v2"
)

var ErrEncoding = errors.New("encoding error")

const defaultMaxDepth = 32

// CBOR major types, shifted into the high 3 bits of the initial byte.
const (
	majorArray byte = 4 << 5
	majorMap   byte = 5 << 5
)

type EncState struct {
	order         KeyOrder
	shortestFloat bool
	maxDepth      int

	em cbor.UserBufferEncMode
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) encMode() error {
	encOpts := cbor.EncOptions{
		ShortestFloat: cbor.ShortestFloatNone,
		NaNConvert:    cbor.NaNConvertNone,
		InfConvert:    cbor.InfConvertNone,
		NilContainers: cbor.NilContainerAsEmpty,
		IndefLength:   cbor.IndefLengthForbidden,
		TagsMd:        cbor.TagsForbidden,
	}
	if es.shortestFloat {
		encOpts.ShortestFloat = cbor.ShortestFloat16
		encOpts.NaNConvert = cbor.NaNConvert7e00
		encOpts.InfConvert = cbor.InfConvertFloat16
	}
	em, err := encOpts.UserBufferEncMode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	es.em = em
	return nil
}

// Encode writes the CBOR encoding of node to w. Nothing is written if
// encoding fails.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Bytes(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Bytes returns the CBOR encoding of node.
func Bytes(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts...)
	if err := es.encMode(); err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(node, "$", buf, es, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encode writes node to buf. path locates node in the tree being encoded
// and only feeds error messages.
func encode(node *ir.Node, path string, buf *bytes.Buffer, es *EncState, depth int) error {
	if node == nil {
		return fmt.Errorf("%w: %s: nil node", ErrEncoding, path)
	}
	if depth > es.maxDepth {
		return fmt.Errorf("%w: %s exceeds max depth %d", ErrEncoding, path, es.maxDepth)
	}
	switch node.Type {
	case ir.NullType:
		return es.marshal(path, buf, nil)
	case ir.BoolType:
		return es.marshal(path, buf, node.Bool)
	case ir.IntType:
		return es.marshal(path, buf, node.Int64)
	case ir.FloatType:
		return es.marshal(path, buf, node.Float64)
	case ir.StringType:
		if !utf8.ValidString(node.String) {
			return fmt.Errorf("%w: %s: invalid utf-8 text", ErrEncoding, path)
		}
		return es.marshal(path, buf, node.String)
	case ir.BytesType:
		return es.marshal(path, buf, node.Bytes)
	case ir.ArrayType:
		return encodeArray(node, path, buf, es, depth)
	case ir.ObjectType:
		return encodeObject(node, path, buf, es, depth)
	default:
		return fmt.Errorf("%w: %s: unsupported node type %s", ErrEncoding, path, node.Type)
	}
}

func (es *EncState) marshal(path string, buf *bytes.Buffer, v any) error {
	if err := es.em.MarshalToBuffer(v, buf); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoding, path, err)
	}
	return nil
}

func encodeArray(node *ir.Node, path string, buf *bytes.Buffer, es *EncState, depth int) error {
	writeHead(buf, majorArray, uint64(len(node.Values)))
	for i, v := range node.Values {
		if err := encode(v, indexPath(path, i), buf, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

type encodedPair struct {
	key, val []byte
}

func encodeObject(node *ir.Node, path string, buf *bytes.Buffer, es *EncState, depth int) error {
	if len(node.Fields) != len(node.Values) {
		return fmt.Errorf("%w: %s: %d fields but %d values", ErrEncoding, path, len(node.Fields), len(node.Values))
	}
	pairs := make([]encodedPair, len(node.Fields))
	seen := make(map[string]bool, len(node.Fields))
	for i, field := range node.Fields {
		if field == nil || field.Type != ir.StringType {
			return fmt.Errorf("%w: %s: object key %d is not a string", ErrEncoding, path, i)
		}
		if seen[field.String] {
			return fmt.Errorf("%w: %s: duplicate key %q", ErrEncoding, path, field.String)
		}
		seen[field.String] = true

		kBuf := bytes.NewBuffer(nil)
		if err := encode(field, keyPath(path, i), kBuf, es, depth+1); err != nil {
			return err
		}
		vBuf := bytes.NewBuffer(nil)
		if err := encode(node.Values[i], fieldPath(path, field.String), vBuf, es, depth+1); err != nil {
			return err
		}
		pairs[i] = encodedPair{key: kBuf.Bytes(), val: vBuf.Bytes()}
	}
	sortPairs(pairs, es.order)

	writeHead(buf, majorMap, uint64(len(pairs)))
	for i := range pairs {
		buf.Write(pairs[i].key)
		buf.Write(pairs[i].val)
	}
	return nil
}

// fieldPath, indexPath and keyPath extend a JSONPath style location such
// as "$.nested.list[1]". A key is named by its position, "$.nested<key 0>".
func fieldPath(path, f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]<>") == -1 {
		return path + "." + f
	}
	return path + ".'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func keyPath(path string, i int) string {
	return path + "<key " + strconv.Itoa(i) + ">"
}

func sortPairs(pairs []encodedPair, order KeyOrder) {
	switch order {
	case LengthFirstOrder:
		slices.SortStableFunc(pairs, func(a, b encodedPair) int {
			if len(a.key) != len(b.key) {
				return len(a.key) - len(b.key)
			}
			return bytes.Compare(a.key, b.key)
		})
	case BytewiseOrder:
		slices.SortStableFunc(pairs, func(a, b encodedPair) int {
			return bytes.Compare(a.key, b.key)
		})
	}
}

// writeHead writes the shortest initial byte and argument for major
// type mt and argument n.
func writeHead(buf *bytes.Buffer, mt byte, n uint64) {
	switch {
	case n < 24:
		buf.WriteByte(mt | byte(n))
	case n <= 0xff:
		buf.Write([]byte{mt | 24, byte(n)})
	case n <= 0xffff:
		buf.Write([]byte{mt | 25, byte(n >> 8), byte(n)})
	case n <= 0xffffffff:
		buf.Write([]byte{mt | 26, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
	default:
		buf.WriteByte(mt | 27)
		for shift := 56; shift >= 0; shift -= 8 {
			buf.WriteByte(byte(n >> uint(shift)))
		}
	}
}
