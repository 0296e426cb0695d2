package pipe

import (
	"github.com/go-sif/sifplan"
	"github.com/go-sif/sifplan/errors"
)

// UpstreamClosure returns every Pipe reachable from p by following Upstream links,
// including p itself, in depth-first order. A cycle, a nil Pipe or a nil predecessor
// produces a MalformedGraphError.
func UpstreamClosure(p sifplan.Pipe) ([]sifplan.Pipe, error) {
	if p == nil {
		return nil, errors.MalformedGraphError{Pipe: "<nil>", Reason: "nil pipe"}
	}
	visited := make(map[string]bool)
	onPath := make(map[string]bool)
	closure := []sifplan.Pipe{}

	var dfs func(sifplan.Pipe, []string) error
	dfs = func(next sifplan.Pipe, path []string) error {
		visited[next.ID()] = true
		onPath[next.ID()] = true
		path = append(path, next.Name())
		closure = append(closure, next)
		for _, up := range next.Upstream() {
			if up == nil {
				return errors.MalformedGraphError{Pipe: next.Name(), Reason: "nil upstream pipe"}
			}
			if onPath[up.ID()] {
				cycle := append(append([]string{}, path...), up.Name())
				return errors.MalformedGraphError{Pipe: up.Name(), Path: cycle, Reason: "cycle detected"}
			}
			if !visited[up.ID()] {
				if err := dfs(up, path); err != nil {
					return err
				}
			}
		}
		onPath[next.ID()] = false
		return nil
	}

	if err := dfs(p, nil); err != nil {
		return nil, err
	}
	return closure, nil
}

// Heads returns the Pipes within the upstream closure of p which have no predecessors
func Heads(p sifplan.Pipe) ([]sifplan.Pipe, error) {
	closure, err := UpstreamClosure(p)
	if err != nil {
		return nil, err
	}
	heads := []sifplan.Pipe{}
	for _, c := range closure {
		if len(c.Upstream()) == 0 {
			heads = append(heads, c)
		}
	}
	return heads, nil
}
