package configparser

// Kind identifies the active variant of a Value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindUint
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Type is the closed set of Go types a Value can hold.
type Type interface {
	string | int32 | uint32 | float32 | bool
}

// Value is a typed configuration value. Exactly one payload is active,
// selected by Kind. The zero Value is an empty string.
type Value struct {
	kind Kind
	str  string
	i    int32
	u    uint32
	f    float32
	b    bool
}

func StringValue(s string) Value { return Value{kind: KindString, str: s} }

func IntValue(i int32) Value { return Value{kind: KindInt, i: i} }

func UintValue(u uint32) Value { return Value{kind: KindUint, u: u} }

func FloatValue(f float32) Value { return Value{kind: KindFloat, f: f} }

func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// ValueOf wraps a Go value in the matching variant.
func ValueOf[T Type](v T) Value {
	switch x := any(v).(type) {
	case string:
		return StringValue(x)
	case int32:
		return IntValue(x)
	case uint32:
		return UintValue(x)
	case float32:
		return FloatValue(x)
	case bool:
		return BoolValue(x)
	}
	panic("configparser: unreachable value type")
}

// kindOf returns the Kind a Go type maps to.
func kindOf[T Type]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindString
	case int32:
		return KindInt
	case uint32:
		return KindUint
	case float32:
		return KindFloat
	default:
		return KindBool
	}
}

// valueAs extracts the payload as T; ok is false if the kinds differ.
func valueAs[T Type](v Value) (T, bool) {
	var out T
	if v.kind != kindOf[T]() {
		return out, false
	}
	var payload any
	switch v.kind {
	case KindString:
		payload = v.str
	case KindInt:
		payload = v.i
	case KindUint:
		payload = v.u
	case KindFloat:
		payload = v.f
	case KindBool:
		payload = v.b
	}
	return payload.(T), true
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

func (v Value) Int() (int32, bool) { return v.i, v.kind == KindInt }

func (v Value) Uint() (uint32, bool) { return v.u, v.kind == KindUint }

func (v Value) Float() (float32, bool) { return v.f, v.kind == KindFloat }

func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Interface returns the payload as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return v.str
	}
}

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindUint:
		return v.u == o.u
	case KindFloat:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	default:
		return v.str == o.str
	}
}

// String renders the value in its file token form.
func (v Value) String() string { return FormatValue(v) }
