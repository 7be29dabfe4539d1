package debug

import (
	"fmt"

	"github.com/signadot/tony-format/cborfix/encode"
	"github.com/signadot/tony-format/cborfix/ir"
)

func diagNode(x *ir.Node) string {
	d, err := encode.Bytes(x)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return diagBytes(d)
}

func diagBytes(d []byte) string {
	s, err := encode.Diagnose(d)
	if err != nil {
		return fmt.Sprintf("[raw cbor] % x", d)
	}
	return s
}

// Logf writes to stderr, rendering *ir.Node and []byte arguments in
// CBOR diagnostic notation.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			args[i] = diagNode(x)
		case []byte:
			args[i] = diagBytes(x)
		case bool, string, float64, int:
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
