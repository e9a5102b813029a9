// Package configparser implements a typed key=value configuration store.
//
// A configuration file is a sequence of lines. Blank lines and lines whose
// first non-indentation character is '#' are ignored; every other line is
// key=value, where the key is an ASCII identifier and the value is one of:
//
//	"text"     string
//	-42        int (32-bit signed)
//	1.5        float (32-bit)
//	true       bool (also false)
//
// Values are held in a Store and read back with the generic accessors
// Get and Set, which check the stored kind. The uint kind has no textual
// inference rule and can only be stored programmatically.
//
// A Store has no internal locking; callers sharing one across goroutines
// must serialize every call themselves.
package configparser

import "strings"

// Store maps keys to typed values. Iteration order is unspecified.
// The zero Store is empty and ready to use.
type Store struct {
	values map[string]Value
}

// New returns an empty Store.
func New() *Store {
	return &Store{values: map[string]Value{}}
}

// Load parses lines into the store. Loading is all or nothing: on the
// first malformed line a *ParseError is returned and the store is left
// exactly as it was. Keys already present in the store count as
// duplicates.
func (s *Store) Load(lines []string) error {
	staged, err := parseLines(lines, s.values)
	if err != nil {
		return err
	}
	s.lazyInit()
	for k, v := range staged {
		s.values[k] = v
	}
	return nil
}

// LoadString splits text into lines and loads them.
func (s *Store) LoadString(text string) error {
	return s.Load(splitLines(text))
}

// Save renders every entry as a key=token line.
func (s *Store) Save() []string {
	lines := make([]string, 0, len(s.values))
	for k, v := range s.values {
		lines = append(lines, k+"="+FormatValue(v))
	}
	return lines
}

func (s *Store) lazyInit() {
	if s.values == nil {
		s.values = map[string]Value{}
	}
}

// Lookup returns the value stored under key.
func (s *Store) Lookup(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// SetValue stores v under key, overwriting any previous value.
func (s *Store) SetValue(key string, v Value) error {
	if !IsKeyValid(key) {
		return &KeyError{Key: key, Err: ErrInvalidKey}
	}
	s.lazyInit()
	s.values[key] = v
	return nil
}

// Clear removes all entries.
func (s *Store) Clear() {
	clear(s.values)
}

// ClearKeys removes the listed keys. Absent keys are ignored.
func (s *Store) ClearKeys(keys ...string) {
	for _, k := range keys {
		delete(s.values, k)
	}
}

// Keys returns the stored keys in unspecified order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.values)
}

// Get returns the value under key as T.
func Get[T Type](s *Store, key string) (T, error) {
	var zero T
	v, ok := s.values[key]
	if !ok {
		return zero, &KeyError{Key: key, Err: ErrKeyNotFound}
	}
	out, ok := valueAs[T](v)
	if !ok {
		return zero, &TypeMismatchError{Key: key, Want: kindOf[T](), Got: v.kind}
	}
	return out, nil
}

// Set stores v under key, overwriting any previous value of any kind.
func Set[T Type](s *Store, key string, v T) error {
	return s.SetValue(key, ValueOf(v))
}

// splitLines splits on '\n', dropping a trailing '\r' from each line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
