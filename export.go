package configparser

// Map returns the store as plain Go values: string, int32, uint32,
// float32 or bool per key. The result is a copy.
func (s *Store) Map() map[string]any {
	result := make(map[string]any, len(s.values))
	for k, v := range s.values {
		result[k] = v.Interface()
	}
	return result
}

// FromMap builds a store from plain Go values as produced by Map. Values of
// any other Go type are reported as ErrUnknownValueType.
func FromMap(data map[string]any) (*Store, error) {
	s := New()
	for k, raw := range data {
		var v Value
		switch x := raw.(type) {
		case string:
			v = StringValue(x)
		case int32:
			v = IntValue(x)
		case uint32:
			v = UintValue(x)
		case float32:
			v = FloatValue(x)
		case bool:
			v = BoolValue(x)
		default:
			return nil, &KeyError{Key: k, Err: ErrUnknownValueType}
		}
		if err := s.SetValue(k, v); err != nil {
			return nil, err
		}
	}
	return s, nil
}
