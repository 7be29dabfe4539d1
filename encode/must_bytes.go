package encode

import "github.com/signadot/tony-format/cborfix/ir"

func MustBytes(node *ir.Node, opts ...EncodeOption) []byte {
	d, err := Bytes(node, opts...)
	if err != nil {
		panic(err)
	}
	return d
}
