package planning

import (
	"sync"

	"github.com/atomind-ai/agency/atomspace"
)

// Plan is an ordered list of actions intended to realize a goal. A plan
// holds one reference to its goal atom for its lifetime; Release gives it
// back.
type Plan struct {
	goal *atomspace.Atom

	mu        sync.Mutex
	actions   []*Action
	totalCost float64
	valid     bool
	released  bool
}

// NewPlan creates an empty, valid plan for the given goal and retains the
// goal on the plan's behalf.
func NewPlan(goal *atomspace.Atom) (*Plan, error) {
	if goal == nil {
		return nil, ErrNilGoal
	}
	goal.Retain()
	return &Plan{goal: goal, valid: true}, nil
}

// Goal returns the goal atom this plan targets.
func (p *Plan) Goal() *atomspace.Atom { return p.goal }

// Add appends an action to the plan and accumulates its cost.
func (p *Plan) Add(a *Action) error {
	if a == nil {
		return ErrNilAction
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = append(p.actions, a)
	p.totalCost += a.cost
	return nil
}

// Actions returns a snapshot of the plan's actions in order.
func (p *Plan) Actions() []*Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	actions := make([]*Action, len(p.actions))
	copy(actions, p.actions)
	return actions
}

// Len returns the number of actions in the plan.
func (p *Plan) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.actions)
}

// TotalCost returns the sum of all action costs.
func (p *Plan) TotalCost() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalCost
}

// Valid reports whether the plan is still executable. Plans become invalid
// once fully executed.
func (p *Plan) Valid() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.valid
}

// Invalidate marks the plan no longer executable.
func (p *Plan) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.valid = false
}

// CompleteAll marks every not-yet-completed action as completed and returns
// how many were newly completed. No precondition checking occurs.
func (p *Plan) CompleteAll() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	completed := 0
	for _, a := range p.actions {
		if a.complete() {
			completed++
		}
	}
	return completed
}

// Completed reports whether every action in the plan has been executed.
// An empty plan is trivially complete.
func (p *Plan) Completed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, a := range p.actions {
		if !a.Completed() {
			return false
		}
	}
	return true
}

// Release gives back the plan's reference to its goal atom. Safe to call
// more than once; only the first call releases.
func (p *Plan) Release() {
	p.mu.Lock()
	if p.released {
		p.mu.Unlock()
		return
	}
	p.released = true
	p.mu.Unlock()

	p.goal.Release()
}

// BuildPlan constructs a plan for goal from the given beliefs. For each
// belief whose strength exceeds BeliefStrengthFloor, two template actions
// are appended: analyze_state (cost 1.0) and execute_optimization
// (cost 2.0), both using that belief as precondition and the goal as
// effect. Beliefs are considered in the order given.
func BuildPlan(goal *atomspace.Atom, beliefs []*atomspace.Atom) (*Plan, error) {
	plan, err := NewPlan(goal)
	if err != nil {
		return nil, err
	}

	for _, belief := range beliefs {
		if belief == nil {
			continue
		}
		if belief.Truth().Strength <= BeliefStrengthFloor {
			continue
		}

		analyze, err := NewAction(ActionAnalyzeState, belief, goal, analyzeStateCost)
		if err != nil {
			plan.Release()
			return nil, err
		}
		if err := plan.Add(analyze); err != nil {
			plan.Release()
			return nil, err
		}

		optimize, err := NewAction(ActionExecuteOptimization, belief, goal, optimizationCost)
		if err != nil {
			plan.Release()
			return nil, err
		}
		if err := plan.Add(optimize); err != nil {
			plan.Release()
			return nil, err
		}
	}

	return plan, nil
}
