package ir

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
	Bytes   []byte
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromBytes copies v, so later changes to v do not reach the tree.
func FromBytes(v []byte) *Node {
	b := make([]byte, len(v))
	copy(b, v)
	return &Node{
		Type:  BytesType,
		Bytes: b,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals creates an object whose fields appear in the order of kvs.
// Nil keys and values are kept as is; encoding reports them.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i, kv := range kvs {
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

// FromInts is a shorthand for an array of integers.
func FromInts(vs ...int64) *Node {
	nodes := make([]*Node, len(vs))
	for i, v := range vs {
		nodes[i] = FromInt(v)
	}
	return FromSlice(nodes)
}

func Get(y *Node, field string) *Node {
	for i, f := range y.Fields {
		if f != nil && f.String == field && i < len(y.Values) {
			return y.Values[i]
		}
	}
	return nil
}

// Keys returns the object keys of y in insertion order.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, 0, len(y.Fields))
	for _, f := range y.Fields {
		if f == nil {
			continue
		}
		res = append(res, f.String)
	}
	return res
}
