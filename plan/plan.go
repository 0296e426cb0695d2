package plan

import (
	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/flow"
)

// Plan is an execution plan for a FlowDef
type Plan struct {
	stages []*Stage
	flow   *flow.FlowDef
}

// Size returns the number of stages in this Plan
func (p *Plan) Size() int {
	return len(p.stages)
}

// GetStage returns a particular Stage in this Plan
func (p *Plan) GetStage(idx int) *Stage {
	return p.stages[idx]
}

// Flow returns the pruned FlowDef this Plan was built from
func (p *Plan) Flow() *flow.FlowDef {
	return p.flow
}

// ShuffleStages returns the Stages of this Plan which require reducers, in ID order
func (p *Plan) ShuffleStages() []sifplan.Stage {
	res := []sifplan.Stage{}
	for _, s := range p.stages {
		if s.EndsInShuffle() {
			res = append(res, s)
		}
	}
	return res
}
