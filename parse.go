package configparser

import (
	"strconv"
	"strings"
)

// ParseValue classifies a trimmed value token.
//
// Rules are tried in order and the first whose shape matches decides the
// kind, even if the numeric conversion then fails:
//
//  1. "text"             string, quotes stripped, no escapes
//  2. digits and '-'     int (base 10, 32-bit)
//  3. digits, '-', one . float (32-bit)
//  4. true/false/1/0     bool
//
// Because rule 2 comes first, "0" and "1" are ints. No rule yields a uint.
func ParseValue(token string) (Value, error) {
	if token != "" && token[0] == '"' && token[len(token)-1] == '"' {
		// a lone quote both opens and closes an empty string
		if len(token) == 1 {
			return StringValue(""), nil
		}
		return StringValue(token[1 : len(token)-1]), nil
	}

	if isIntShape(token) {
		n, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			return Value{}, &ValueError{Token: token, Cause: err}
		}
		return IntValue(int32(n)), nil
	}

	if isFloatShape(token) {
		f, err := strconv.ParseFloat(token, 32)
		if err != nil {
			return Value{}, &ValueError{Token: token, Cause: err}
		}
		return FloatValue(float32(f)), nil
	}

	switch token {
	case "true", "1":
		return BoolValue(true), nil
	case "false", "0":
		return BoolValue(false), nil
	}

	return Value{}, &ValueError{Token: token}
}

// isIntShape reports whether token uses only digits and '-' and is not
// made of '-' alone.
func isIntShape(token string) bool {
	if token == "" {
		return false
	}
	digit := false
	for i := 0; i < len(token); i++ {
		switch c := token[i]; {
		case isDigit(c):
			digit = true
		case c == '-':
		default:
			return false
		}
	}
	return digit
}

// isFloatShape reports whether token uses only digits, '-' and exactly one
// '.', starting with one of those characters.
func isFloatShape(token string) bool {
	if token == "" {
		return false
	}
	dots := 0
	for i := 0; i < len(token); i++ {
		switch c := token[i]; {
		case isDigit(c), c == '-':
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return dots == 1
}

// trim strips spaces and tabs only.
func trim(s string) string {
	return strings.Trim(s, " \t")
}

// parseLines runs the line state machine and returns the staged entries.
// existing is consulted for duplicates but never modified.
func parseLines(lines []string, existing map[string]Value) (map[string]Value, error) {
	staged := make(map[string]Value)

	for i, raw := range lines {
		lineNo := i + 1
		line := trim(raw)

		// Skip blank lines and full-line comments
		if line == "" || line[0] == '#' {
			continue
		}

		pos := strings.IndexByte(line, '=')
		if pos < 0 {
			return nil, &ParseError{Line: lineNo, Err: ErrSyntax}
		}

		key := trim(line[:pos])
		token := trim(line[pos+1:])

		if !IsKeyValid(key) {
			return nil, &ParseError{Line: lineNo, Key: key, Err: ErrInvalidKey}
		}

		if _, ok := existing[key]; ok {
			return nil, &ParseError{Line: lineNo, Key: key, Err: ErrDuplicateKey}
		}
		if _, ok := staged[key]; ok {
			return nil, &ParseError{Line: lineNo, Key: key, Err: ErrDuplicateKey}
		}

		v, err := ParseValue(token)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Key: key, Token: token, Err: err}
		}
		staged[key] = v
	}

	return staged, nil
}
