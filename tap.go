package sifplan

// A Tap describes a location data is read from or written to. Taps are
// declared on a flow as sources, sinks, traps and checkpoints.
type Tap interface {
	Identifier() string      // Identifier returns a description of the underlying location, for logging
	SizeHint() (int64, bool) // SizeHint returns the number of bytes stored at this location, if known
}
