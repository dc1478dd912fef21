// SPDX-License-Identifier: MIT
// Package mis defines the shared types of the independent-set solvers:
// kernel rules, kernel profiles, search statistics and results.
package mis

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// Sentinel errors for solver execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mis: graph is nil")

	// ErrNegativeBudget is returned by Solve for k < 0.
	ErrNegativeBudget = errors.New("mis: negative budget")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mis: invalid option supplied")

	// ErrNotInResidual is returned by Reduction.Lift for a vertex the residual
	// graph does not contain.
	ErrNotInResidual = errors.New("mis: vertex not in residual graph")

	// ErrCanceled wraps the context error when a search is abandoned.
	ErrCanceled = errors.New("mis: search canceled")
)

// Rule identifies one kernelization rule.
type Rule uint8

const (
	// RuleDegree0 takes an isolated vertex.
	RuleDegree0 Rule = iota
	// RuleDegree1 takes a pendant vertex and drops its neighbor.
	RuleDegree1
	// RuleTriangle takes a degree-2 vertex whose neighbors are adjacent.
	RuleTriangle
	// RuleFold merges a degree-2 vertex and its non-adjacent neighbors.
	RuleFold

	ruleCount
)

// Rules lists every rule in declaration order.
var Rules = []Rule{RuleDegree0, RuleDegree1, RuleTriangle, RuleFold}

func (r Rule) String() string {
	switch r {
	case RuleDegree0:
		return "degree0"
	case RuleDegree1:
		return "degree1"
	case RuleTriangle:
		return "triangle"
	case RuleFold:
		return "fold"
	default:
		return fmt.Sprintf("rule(%d)", uint8(r))
	}
}

// KernelProfile selects which rules a solver applies between branches.
type KernelProfile uint8

const (
	// KernelDefault lets each entry point pick its own profile:
	// KernelBasic for Size, KernelFull for Reduce. Solve always runs KernelFull.
	KernelDefault KernelProfile = iota
	// KernelBasic applies the degree-0 and degree-1 rules.
	KernelBasic
	// KernelFull applies all four rules.
	KernelFull
)

func (p KernelProfile) String() string {
	switch p {
	case KernelDefault:
		return "default"
	case KernelBasic:
		return "basic"
	case KernelFull:
		return "full"
	default:
		return fmt.Sprintf("profile(%d)", uint8(p))
	}
}

// ParseKernelProfile maps "basic", "full" or "" (default) to a profile.
func ParseKernelProfile(s string) (KernelProfile, error) {
	switch s {
	case "", "default":
		return KernelDefault, nil
	case "basic":
		return KernelBasic, nil
	case "full":
		return KernelFull, nil
	}

	return KernelDefault, errors.Wrapf(ErrOptionViolation, "unknown kernel profile %q", s)
}

// allowsDegree2 reports whether the profile applies degree-2 rules.
func (p KernelProfile) allowsDegree2() bool { return p == KernelFull }

// Solver names the search that emitted an event.
type Solver uint8

const (
	// SolverDecide is the decision search run by Solve.
	SolverDecide Solver = iota
	// SolverSize is the optimization search run by Size.
	SolverSize
	// SolverReduce is the budget-free kernel run by Reduce.
	SolverReduce
)

func (s Solver) String() string {
	switch s {
	case SolverDecide:
		return "decide"
	case SolverSize:
		return "size"
	case SolverReduce:
		return "reduce"
	default:
		return fmt.Sprintf("solver(%d)", uint8(s))
	}
}

// Stats counts the work done by one call.
type Stats struct {
	// Nodes is the number of search-loop iterations.
	Nodes int64
	// Branches is the number of left branches opened.
	Branches int64
	// Reductions counts rule applications, indexed by Rule.
	Reductions [ruleCount]int64
}

// Count returns how often r fired.
func (s Stats) Count(r Rule) int64 {
	if r >= ruleCount {
		return 0
	}

	return s.Reductions[r]
}

// TotalReductions sums Reductions over all rules.
func (s Stats) TotalReductions() int64 {
	var n int64
	for _, c := range s.Reductions {
		n += c
	}

	return n
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Branches += o.Branches
	for i := range s.Reductions {
		s.Reductions[i] += o.Reductions[i]
	}
}

// Result is the outcome of Solve.
//   - Feasible: an independent set of the requested size exists.
//   - Set: such a set in ascending vertex order (nil when infeasible).
//   - Stats: search counters.
type Result struct {
	Feasible bool
	Set      []core.Vertex
	Stats    Stats
}
