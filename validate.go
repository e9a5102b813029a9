package configparser

// IsKeyValid reports whether key is an acceptable identifier: a non-empty
// ASCII string starting with a letter or underscore, followed by letters,
// digits or underscores.
func IsKeyValid(key string) bool {
	if key == "" {
		return false
	}
	if !isLetter(key[0]) && key[0] != '_' {
		return false
	}
	for i := 1; i < len(key); i++ {
		c := key[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
