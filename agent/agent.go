package agent

import (
	"sync"

	"github.com/atomind-ai/agency/atomspace"
	"github.com/atomind-ai/agency/mailbox"
	"github.com/atomind-ai/agency/planning"
)

// maxNameLen bounds agent names the same way atom names are bounded.
const maxNameLen = 64

// Thresholds marking a belief "strong" during the relevance phase of a
// reasoning cycle. A strong belief produces no further effect in this core;
// the check is the extension point for real goal/belief matching.
const (
	strongStrengthFloor   = 0.7
	strongConfidenceFloor = 0.6
)

// confidenceStep is the fixed linear reinforcement applied by Learn.
const confidenceStep = 0.05

// Stats is a snapshot of an agent's activity counters.
type Stats struct {
	// ReasoningCycles is the number of reasoning cycles started.
	ReasoningCycles uint64

	// ActionsExecuted is the number of actions executed, planned or not.
	ActionsExecuted uint64

	// MessagesSent is the number of messages this agent has sent.
	MessagesSent uint64

	// MessagesReceived is the number of messages delivered to this agent's
	// inbox.
	MessagesReceived uint64
}

// Agent is an autonomous entity owning goals, beliefs, a private knowledge
// set, a message inbox, and at most one active plan.
//
// The agent's lock guards its state, collections, and counters, and is
// never held while an atom's or another agent's lock is taken. The inbox
// carries its own lock.
type Agent struct {
	id     uint64
	name   string
	handle any

	inbox *mailbox.Inbox

	mu        sync.Mutex
	state     State
	goals     []*atomspace.Atom
	beliefs   []*atomspace.Atom
	knowledge []*atomspace.Atom
	plans     []*planning.Plan
	current   *planning.Plan
	stats     Stats
	destroyed bool
}

// New creates an idle agent with empty collections. The handle is an opaque
// execution-context reference from the hosting environment; it is stored
// but never inspected. Agents are normally created through an agency
// System, which assigns the ID and registers the agent.
func New(id uint64, name string, handle any) *Agent {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	return &Agent{
		id:     id,
		name:   name,
		handle: handle,
		inbox:  mailbox.NewInbox(),
		state:  StateIdle,
	}
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() uint64 { return a.id }

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// Handle returns the opaque execution-context handle, if any.
func (a *Agent) Handle() any { return a.handle }

// State returns a snapshot of the agent's current lifecycle state.
func (a *Agent) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Stats returns a snapshot of the agent's activity counters.
func (a *Agent) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// AddGoal retains the atom and appends it to the agent's ordered goal set.
// Duplicates are not detected.
func (a *Agent) AddGoal(goal *atomspace.Atom) error {
	if goal == nil {
		return ErrNilAtom
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return ErrDestroyed
	}
	goal.Retain()
	a.goals = append(a.goals, goal)
	return nil
}

// AddBelief retains the atom and appends it to the agent's ordered belief
// set. Duplicates are not detected.
func (a *Agent) AddBelief(belief *atomspace.Atom) error {
	if belief == nil {
		return ErrNilAtom
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return ErrDestroyed
	}
	belief.Retain()
	a.beliefs = append(a.beliefs, belief)
	return nil
}

// AddKnowledge retains the atom and appends it to the agent's knowledge
// set. Used by learning and by the inference engine for new conclusions.
func (a *Agent) AddKnowledge(atom *atomspace.Atom) error {
	if atom == nil {
		return ErrNilAtom
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.destroyed {
		return ErrDestroyed
	}
	atom.Retain()
	a.knowledge = append(a.knowledge, atom)
	return nil
}

// Goals returns a snapshot of the agent's goals in insertion order.
func (a *Agent) Goals() []*atomspace.Atom {
	a.mu.Lock()
	defer a.mu.Unlock()
	return snapshotAtoms(a.goals)
}

// Beliefs returns a snapshot of the agent's beliefs in insertion order.
func (a *Agent) Beliefs() []*atomspace.Atom {
	a.mu.Lock()
	defer a.mu.Unlock()
	return snapshotAtoms(a.beliefs)
}

// Knowledge returns a snapshot of the agent's knowledge set in insertion
// order.
func (a *Agent) Knowledge() []*atomspace.Atom {
	a.mu.Lock()
	defer a.mu.Unlock()
	return snapshotAtoms(a.knowledge)
}

// BeginReasoning starts a reasoning cycle: the agent enters Reasoning, the
// cycle counter is incremented, and each goal is checked against each
// belief for relevance. The relevance check is a threshold heuristic
// (strength > 0.7 and confidence > 0.6 marks a belief strong); it returns
// the number of strong goal/belief pairings found and has no further
// effect. The caller runs inference afterwards and ends the cycle with
// FinishReasoning.
func (a *Agent) BeginReasoning() int {
	a.mu.Lock()
	a.state = StateReasoning
	a.stats.ReasoningCycles++
	goals := snapshotAtoms(a.goals)
	beliefs := snapshotAtoms(a.beliefs)
	a.mu.Unlock()

	strong := 0
	for range goals {
		for _, belief := range beliefs {
			tv := belief.Truth()
			if tv.Strength > strongStrengthFloor && tv.Confidence > strongConfidenceFloor {
				strong++
			}
		}
	}
	return strong
}

// FinishReasoning returns the agent to Idle after a reasoning cycle.
func (a *Agent) FinishReasoning() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = StateIdle
}

// Learn reinforces an experience: the experience atom's confidence rises by
// a fixed step (0.05, clamped to 1.0), its observation count increments,
// and the atom is retained into the agent's knowledge set.
func (a *Agent) Learn(experience *atomspace.Atom) error {
	if experience == nil {
		return ErrNilAtom
	}

	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return ErrDestroyed
	}
	a.state = StateLearning
	a.mu.Unlock()

	experience.Reinforce(confidenceStep)

	a.mu.Lock()
	experience.Retain()
	a.knowledge = append(a.knowledge, experience)
	a.state = StateIdle
	a.mu.Unlock()
	return nil
}

// Act executes the agent's current plan if one is active; otherwise it
// performs a single degenerate action (counted, with no other effect).
// Returns the number of actions executed.
func (a *Agent) Act() (int, error) {
	a.mu.Lock()
	if a.current != nil {
		a.mu.Unlock()
		return a.ExecutePlan()
	}

	a.state = StateActing
	a.stats.ActionsExecuted++
	a.state = StateIdle
	a.mu.Unlock()
	return 1, nil
}

// CreatePlan builds a plan for the goal from the agent's current beliefs
// using the fixed two-action template, adds it to the agent's plan set, and
// makes it the current plan only if none is already active. The first plan
// created stays current until fully executed.
func (a *Agent) CreatePlan(goal *atomspace.Atom) (*planning.Plan, error) {
	if goal == nil {
		return nil, ErrNilAtom
	}

	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return nil, ErrDestroyed
	}
	beliefs := snapshotAtoms(a.beliefs)
	a.mu.Unlock()

	// Plan construction reads belief truth values under each atom's own
	// lock, so the agent lock is not held across it.
	plan, err := planning.BuildPlan(goal, beliefs)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.plans = append(a.plans, plan)
	if a.current == nil {
		a.current = plan
	}
	a.mu.Unlock()
	return plan, nil
}

// CurrentPlan returns the active plan, or nil if none is active.
func (a *Agent) CurrentPlan() *planning.Plan {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// ExecutePlan executes the current plan: every not-yet-completed action is
// marked completed and counted. Once all actions are complete the plan is
// invalidated and cleared, so a later CreatePlan can become active.
// Preconditions are not checked against live belief state.
//
// Returns ErrNoActivePlan if no plan is active.
func (a *Agent) ExecutePlan() (int, error) {
	a.mu.Lock()
	plan := a.current
	if plan == nil {
		a.mu.Unlock()
		return 0, ErrNoActivePlan
	}
	a.state = StateActing
	a.mu.Unlock()

	completed := plan.CompleteAll()

	a.mu.Lock()
	a.stats.ActionsExecuted += uint64(completed)
	if plan.Completed() {
		plan.Invalidate()
		if a.current == plan {
			a.current = nil
		}
	}
	a.state = StateIdle
	a.mu.Unlock()
	return completed, nil
}

// Plans returns a snapshot of every plan the agent has created.
func (a *Agent) Plans() []*planning.Plan {
	a.mu.Lock()
	defer a.mu.Unlock()
	plans := make([]*planning.Plan, len(a.plans))
	copy(plans, a.plans)
	return plans
}

// Destroy releases every reference the agent holds: goals, beliefs,
// knowledge, plan goals, and the payloads of any unconsumed messages.
// Each reference is released exactly once; Destroy is idempotent.
func (a *Agent) Destroy() {
	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return
	}
	a.destroyed = true
	goals := a.goals
	beliefs := a.beliefs
	knowledge := a.knowledge
	plans := a.plans
	a.goals = nil
	a.beliefs = nil
	a.knowledge = nil
	a.plans = nil
	a.current = nil
	a.mu.Unlock()

	for _, atom := range goals {
		atom.Release()
	}
	for _, atom := range beliefs {
		atom.Release()
	}
	for _, atom := range knowledge {
		atom.Release()
	}
	for _, plan := range plans {
		plan.Release()
	}

	// Unconsumed messages still hold payload references taken at send time.
	for msg := a.inbox.Pop(); msg != nil; msg = a.inbox.Pop() {
		if msg.Payload != nil {
			msg.Payload.Release()
		}
	}
}

func snapshotAtoms(atoms []*atomspace.Atom) []*atomspace.Atom {
	out := make([]*atomspace.Atom, len(atoms))
	copy(out, atoms)
	return out
}
