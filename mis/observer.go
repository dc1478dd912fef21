// SPDX-License-Identifier: MIT
package mis

// Observer receives search events. Calls happen on the solving goroutine, in
// search order; implementations must not retain the solver's graph.
type Observer interface {
	// OnReduction fires after a rule is applied.
	OnReduction(s Solver, r Rule)
	// OnBranch fires when a left branch is opened.
	OnBranch(s Solver)
	// OnNode fires once per search-loop iteration.
	OnNode(s Solver)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnReduction(Solver, Rule) {}
func (NopObserver) OnBranch(Solver)          {}
func (NopObserver) OnNode(Solver)            {}

// MultiObserver fans events out to each member in order.
type MultiObserver []Observer

func (m MultiObserver) OnReduction(s Solver, r Rule) {
	for _, o := range m {
		o.OnReduction(s, r)
	}
}

func (m MultiObserver) OnBranch(s Solver) {
	for _, o := range m {
		o.OnBranch(s)
	}
}

func (m MultiObserver) OnNode(s Solver) {
	for _, o := range m {
		o.OnNode(s)
	}
}
