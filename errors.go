package configparser

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports a non-comment line without a '=' separator.
	ErrSyntax = errors.New("no '=' sign")
	// ErrInvalidKey reports a key that fails IsKeyValid.
	ErrInvalidKey = errors.New("invalid key name")
	// ErrDuplicateKey reports a key defined twice during a load.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnknownValueType reports a value token no inference rule accepts.
	ErrUnknownValueType = errors.New("unknown value type")
	// ErrKeyNotFound reports access to an absent key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrTypeMismatch reports typed access to a key holding another kind.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ParseError represents a load error with location information.
type ParseError struct {
	Line  int
	Key   string
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownValueType):
		return fmt.Sprintf("line %d: %v: %q", e.Line, ErrUnknownValueType, e.Token)
	case e.Key != "":
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Key)
	default:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValueError is returned by ParseValue when a token cannot be classified.
// Cause holds the numeric conversion failure when the token had the shape
// of a number but did not convert.
type ValueError struct {
	Token string
	Cause error
}

func (e *ValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %q: %v", ErrUnknownValueType, e.Token, e.Cause)
	}
	return fmt.Sprintf("%v: %q", ErrUnknownValueType, e.Token)
}

func (e *ValueError) Is(target error) bool { return target == ErrUnknownValueType }

func (e *ValueError) Unwrap() error { return e.Cause }

// KeyError reports a per-call access failure for a single key.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }

// TypeMismatchError reports typed access with the wrong kind.
type TypeMismatchError struct {
	Key  string
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: key %q holds %s, requested %s", ErrTypeMismatch, e.Key, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// IOError wraps a failure of the underlying reader, writer or file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
