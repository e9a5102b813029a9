package configparser

import (
	"io"
	"strconv"
	"strings"
)

// FormatValue renders v as a value token.
//
// Strings are wrapped in double quotes without escaping, so a string
// containing '"' or a newline does not load back. Floats always carry a
// '.' so they reload as floats rather than ints.
func FormatValue(v Value) string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(v.i), 10)
	case KindUint:
		return strconv.FormatUint(uint64(v.u), 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return `"` + v.str + `"`
	}
}

// formatFloat uses the shortest decimal form that reads back as the same
// float32. NaN and infinities have no token form and render as Go does.
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 32)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}

// WriteTo writes every entry as a newline-terminated key=token line.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, line := range s.Save() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), &IOError{Op: "write", Err: err}
	}
	return int64(n), nil
}
