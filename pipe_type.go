package sifplan

// PipeType describes the type of a Pipe, used internally to control planning behaviour
type PipeType string

const (
	// HeadPipeType indicates that this pipe reads from a declared source
	HeadPipeType PipeType = "head"
	// EachPipeType indicates that this pipe transforms records one at a time
	EachPipeType PipeType = "each"
	// MergePipeType indicates that this pipe unions several upstream pipes without a shuffle
	MergePipeType PipeType = "merge"
	// GroupByPipeType indicates that this pipe triggers a grouping shuffle
	GroupByPipeType PipeType = "group_by"
	// CoGroupPipeType indicates that this pipe triggers a join shuffle across several upstream pipes
	CoGroupPipeType PipeType = "co_group"
)

// IsReduceBoundary returns true iff a Pipe of this type ends a Stage with a shuffle
func (t PipeType) IsReduceBoundary() bool {
	return t == GroupByPipeType || t == CoGroupPipeType
}
