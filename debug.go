package nodegraph

import (
	"errors"
	"fmt"
)

// Validate checks the graph's structural invariants: every link joins an
// output to an input on nodes in the graph, connector parent handles match
// their owners, per-role indices are unique, and linked flags agree with the
// link list.
func (g *Graph) Validate() error {
	var errs []error

	owner := make(map[*Connector]*Node)
	for _, n := range g.nodes {
		seen := make(map[[2]int]bool)
		for _, c := range n.connectors {
			owner[c] = n
			if c.Node != n.ID {
				errs = append(errs, fmt.Errorf("connector %v owned by node %d", c, n.ID))
			}
			key := [2]int{int(c.Role), c.Index}
			if seen[key] {
				errs = append(errs, fmt.Errorf("node %d: duplicate %s index %d", n.ID, c.Role, c.Index))
			}
			seen[key] = true
		}
	}

	referenced := make(map[*Connector]bool)
	for _, l := range g.links {
		if l.Output == nil || l.Input == nil {
			errs = append(errs, fmt.Errorf("%v: missing endpoint", l))
			continue
		}
		if l.Output.Role != RoleOutput || l.Input.Role != RoleInput {
			errs = append(errs, fmt.Errorf("%v: endpoint roles reversed", l))
		}
		for _, c := range [...]*Connector{l.Output, l.Input} {
			referenced[c] = true
			if owner[c] == nil {
				errs = append(errs, fmt.Errorf("%v: endpoint %v is not on a node in the graph", l, c))
			}
		}
	}

	for c, n := range owner {
		if c.linked != referenced[c] {
			errs = append(errs, fmt.Errorf("node %d: connector %v linked=%v but referenced=%v",
				n.ID, c, c.linked, referenced[c]))
		}
	}

	return errors.Join(errs...)
}

// debugValidate logs graph invariant violations. Only called in debug mode.
func (p *Panel) debugValidate() {
	if err := p.graph.Validate(); err != nil {
		Logger().Warn("nodegraph: graph invariant violated", "mode", p.mode.String(), "err", err)
	}
}
