package memory

// Tap is an in-memory location whose size is known up front
type Tap struct {
	id   string
	size int64
}

// CreateTap is a factory for Taps with a known size. A negative size indicates an unknown size.
func CreateTap(id string, size int64) *Tap {
	return &Tap{id, size}
}

// Identifier returns a description of this Tap, for logging
func (t *Tap) Identifier() string {
	return "memory:" + t.id
}

// SizeHint returns the number of bytes held by this Tap, if known
func (t *Tap) SizeHint() (int64, bool) {
	if t.size < 0 {
		return 0, false
	}
	return t.size, true
}
