package util

// FalseIfNil returns the dereferenced bool or false if the pointer is nil.
func FalseIfNil(b *bool) bool {
	if b == nil {
		return false
	}

	return *b
}

// TrueIfNil returns the dereferenced bool or true if the pointer is nil.
func TrueIfNil(b *bool) bool {
	if b == nil {
		return true
	}

	return *b
}
