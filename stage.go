package sifplan

// A Stage is a unit of planned execution, ending at (at most) one
// parallel-reduce boundary. Stages are consumed by reducer estimation.
type Stage interface {
	ID() int                       // ID returns the ID for this Stage
	Signature() string             // Signature returns a stable fingerprint of the work performed by this Stage
	InputSizeBytes() (int64, bool) // InputSizeBytes returns the measured or estimated volume of data entering this Stage, if known
	ExplicitReducers() (int, bool) // ExplicitReducers returns the reducer count requested by the user for this Stage, if any
	EndsInShuffle() bool           // EndsInShuffle returns true iff this Stage ends with a reduction
}
