package configparser

import (
	"bufio"
	"io"
	"os"
)

// LoadFrom reads lines from r until EOF and loads them.
func (s *Store) LoadFrom(r io.Reader) error {
	lines, err := readLines(r)
	if err != nil {
		return &IOError{Op: "read", Err: err}
	}
	return s.Load(lines)
}

// LoadFile opens path and loads its lines.
func (s *Store) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return &IOError{Op: "read", Path: path, Err: err}
	}
	return s.Load(lines)
}

// SaveFile writes the store to path, creating or truncating it.
func (s *Store) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: unwrapIO(err)}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	// values have no length limit
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func unwrapIO(err error) error {
	if e, ok := err.(*IOError); ok {
		return e.Err
	}
	return err
}
