package pipe

import (
	"github.com/go-sif/sifplan"
	"github.com/gofrs/uuid"
)

// Pipe is a processing node within a flow. Its predecessors may be extended
// after construction with Connect.
type Pipe struct {
	id       string
	name     string
	pipeType sifplan.PipeType
	upstream []sifplan.Pipe
	reducers int // explicit reducer count, or -1 if none was requested
}

func createPipe(name string, pipeType sifplan.PipeType, upstream []sifplan.Pipe) *Pipe {
	return &Pipe{
		id:       uuid.Must(uuid.NewV4()).String(),
		name:     name,
		pipeType: pipeType,
		upstream: append([]sifplan.Pipe{}, upstream...),
		reducers: -1,
	}
}

// CreateHead is a factory for head Pipes, which read from the source declared under the same name
func CreateHead(name string) *Pipe {
	return createPipe(name, sifplan.HeadPipeType, nil)
}

// CreateEach is a factory for Pipes which transform records one at a time
func CreateEach(name string, previous sifplan.Pipe) *Pipe {
	return createPipe(name, sifplan.EachPipeType, []sifplan.Pipe{previous})
}

// CreateMerge is a factory for Pipes which union several upstream Pipes
func CreateMerge(name string, previous ...sifplan.Pipe) *Pipe {
	return createPipe(name, sifplan.MergePipeType, previous)
}

// CreateGroupBy is a factory for Pipes which group records with a shuffle
func CreateGroupBy(name string, previous ...sifplan.Pipe) *Pipe {
	return createPipe(name, sifplan.GroupByPipeType, previous)
}

// CreateCoGroup is a factory for Pipes which join several upstream Pipes with a shuffle
func CreateCoGroup(name string, previous ...sifplan.Pipe) *Pipe {
	return createPipe(name, sifplan.CoGroupPipeType, previous)
}

// ID returns the unique identity of this Pipe
func (p *Pipe) ID() string {
	return p.id
}

// Name returns the name of this Pipe
func (p *Pipe) Name() string {
	return p.name
}

// Type returns the PipeType of this Pipe
func (p *Pipe) Type() sifplan.PipeType {
	return p.pipeType
}

// Upstream returns the ordered predecessors of this Pipe
func (p *Pipe) Upstream() []sifplan.Pipe {
	return append([]sifplan.Pipe{}, p.upstream...)
}

// Reducers returns the explicit reducer count requested for this Pipe, if any
func (p *Pipe) Reducers() (int, bool) {
	if p.reducers < 0 {
		return 0, false
	}
	return p.reducers, true
}

// WithReducers requests an explicit reducer count for the shuffle this Pipe triggers.
// Non-positive counts are ignored.
func (p *Pipe) WithReducers(n int) *Pipe {
	if n > 0 {
		p.reducers = n
	}
	return p
}

// Connect appends predecessors to this Pipe
func (p *Pipe) Connect(previous ...sifplan.Pipe) *Pipe {
	p.upstream = append(p.upstream, previous...)
	return p
}
