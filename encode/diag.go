package encode

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var ErrMalformed = errors.New("malformed cbor")

var diagMode cbor.DiagMode

func init() {
	dm, err := cbor.DiagOptions{
		ByteStringEncoding:      cbor.ByteStringBase16Encoding,
		FloatPrecisionIndicator: true,
	}.DiagMode()
	if err != nil {
		panic(err)
	}
	diagMode = dm
}

// Diagnose returns the RFC 8949 diagnostic notation of the single CBOR
// data item in d, with float precision indicators such as "3.14159_3".
func Diagnose(d []byte) (string, error) {
	res, err := diagMode.Diagnose(d)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return res, nil
}
