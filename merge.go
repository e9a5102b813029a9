package configparser

// Merge copies every entry of other into s. Keys present in both take
// other's value, with the same overwrite semantics as SetValue; this is
// not a load, so no duplicate check applies.
func (s *Store) Merge(other *Store) {
	s.lazyInit()
	for k, v := range other.values {
		s.values[k] = v
	}
}

