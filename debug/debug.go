package debug

import (
	"io"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Write  bool
	Check  bool
}

var (
	d   *debug
	out io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Encode = boolEnv("CBORFIX_DEBUG_ENCODE")
	d.Write = boolEnv("CBORFIX_DEBUG_WRITE")
	d.Check = boolEnv("CBORFIX_DEBUG_CHECK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Write() bool {
	return d.Write
}
func Check() bool {
	return d.Check
}
