package planning

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/atomind-ai/agency/atomspace"
)

// Sentinel errors for planning operations.
var (
	// ErrEmptyName indicates an action was created without a name.
	ErrEmptyName = errors.New("planning: empty action name")

	// ErrNegativeCost indicates an action cost below zero.
	ErrNegativeCost = errors.New("planning: negative action cost")

	// ErrNilGoal indicates a plan was created without a goal atom.
	ErrNilGoal = errors.New("planning: nil goal")

	// ErrNilAction indicates a nil action was added to a plan.
	ErrNilAction = errors.New("planning: nil action")
)

// Names and costs of the two template actions appended for each qualifying
// belief when a plan is built.
const (
	ActionAnalyzeState        = "analyze_state"
	ActionExecuteOptimization = "execute_optimization"

	analyzeStateCost = 1.0
	optimizationCost = 2.0
)

// BeliefStrengthFloor is the strength a belief must exceed to contribute
// template actions to a plan.
const BeliefStrengthFloor = 0.5

// Action is one templated step of a plan. Precondition and effect are
// references used as templates; executing the action does not check them.
type Action struct {
	name         string
	precondition *atomspace.Atom
	effect       *atomspace.Atom
	cost         float64
	priority     int
	completed    atomic.Bool
}

// NewAction creates an action with the given name, precondition, effect, and
// cost. Returns ErrEmptyName or ErrNegativeCost on invalid input.
func NewAction(name string, precondition, effect *atomspace.Atom, cost float64) (*Action, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if cost < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeCost, cost)
	}
	return &Action{
		name:         name,
		precondition: precondition,
		effect:       effect,
		cost:         cost,
	}, nil
}

// Name returns the action's name.
func (a *Action) Name() string { return a.name }

// Precondition returns the belief atom this action was templated from.
func (a *Action) Precondition() *atomspace.Atom { return a.precondition }

// Effect returns the goal atom this action is intended to realize.
func (a *Action) Effect() *atomspace.Atom { return a.effect }

// Cost returns the action's cost.
func (a *Action) Cost() float64 { return a.cost }

// Priority returns the action's priority. Zero is the default.
func (a *Action) Priority() int { return a.priority }

// Completed reports whether the action has been executed.
func (a *Action) Completed() bool {
	return a.completed.Load()
}

// complete marks the action executed. Returns false if it was already
// completed.
func (a *Action) complete() bool {
	return a.completed.CompareAndSwap(false, true)
}
