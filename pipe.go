package sifplan

// A Pipe is a processing node within a flow. Pipes are linked to their
// predecessors, forming a graph which is walked from the tails upwards.
type Pipe interface {
	ID() string            // ID returns the unique identity of this Pipe
	Name() string          // Name returns the name of this Pipe, which is not guaranteed to be unique
	Type() PipeType        // Type returns the PipeType of this Pipe
	Upstream() []Pipe      // Upstream returns the ordered predecessors of this Pipe. A Pipe without predecessors is a head.
	Reducers() (int, bool) // Reducers returns the explicit reducer count requested for this Pipe, if any
}
