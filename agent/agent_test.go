package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomind-ai/agency/atomspace"
)

func newTestSpace(t *testing.T) *atomspace.Space {
	t.Helper()
	return atomspace.NewSpace(100)
}

func mustAtom(t *testing.T, space *atomspace.Space, typ atomspace.Type, name string) *atomspace.Atom {
	t.Helper()
	atom, err := space.CreateAtom(typ, name)
	require.NoError(t, err)
	return atom
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateReasoning, "reasoning"},
		{StateActing, "acting"},
		{StateLearning, "learning"},
		{StateCommunicating, "communicating"},
		{StateBlocked, "blocked"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}

	assert.True(t, StateIdle.IsValid())
	assert.False(t, State(42).IsValid())
}

func TestNewAgent(t *testing.T) {
	handle := struct{ name string }{"thread-7"}
	a := New(3, "scout", handle)

	assert.Equal(t, uint64(3), a.ID())
	assert.Equal(t, "scout", a.Name())
	assert.Equal(t, handle, a.Handle())
	assert.Equal(t, StateIdle, a.State())
	assert.Equal(t, Stats{}, a.Stats())
	assert.Equal(t, 0, a.PendingMessages())
}

func TestNewAgentNameTruncation(t *testing.T) {
	long := strings.Repeat("n", maxNameLen+10)
	a := New(1, long, nil)
	assert.Len(t, a.Name(), maxNameLen)
}

func TestAddCollections(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "scout", nil)

	goal := mustAtom(t, space, atomspace.TypeGoal, "explore")
	belief := mustAtom(t, space, atomspace.TypeBelief, "safe")
	fact := mustAtom(t, space, atomspace.TypeConcept, "map")

	require.NoError(t, a.AddGoal(goal))
	require.NoError(t, a.AddBelief(belief))
	require.NoError(t, a.AddKnowledge(fact))

	// Each collection holds its own reference.
	assert.Equal(t, int32(2), goal.RefCount())
	assert.Equal(t, int32(2), belief.RefCount())
	assert.Equal(t, int32(2), fact.RefCount())

	assert.Equal(t, []*atomspace.Atom{goal}, a.Goals())
	assert.Equal(t, []*atomspace.Atom{belief}, a.Beliefs())
	assert.Equal(t, []*atomspace.Atom{fact}, a.Knowledge())

	assert.ErrorIs(t, a.AddGoal(nil), ErrNilAtom)
	assert.ErrorIs(t, a.AddBelief(nil), ErrNilAtom)
	assert.ErrorIs(t, a.AddKnowledge(nil), ErrNilAtom)
}

func TestBeginReasoningCountsStrongPairs(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "thinker", nil)

	require.NoError(t, a.AddGoal(mustAtom(t, space, atomspace.TypeGoal, "g1")))
	require.NoError(t, a.AddGoal(mustAtom(t, space, atomspace.TypeGoal, "g2")))

	strong := mustAtom(t, space, atomspace.TypeBelief, "strong")
	require.NoError(t, strong.SetTruth(0.8, 0.7))
	weak := mustAtom(t, space, atomspace.TypeBelief, "weak")
	require.NoError(t, weak.SetTruth(0.4, 0.4))
	require.NoError(t, a.AddBelief(strong))
	require.NoError(t, a.AddBelief(weak))

	// Two goals times one strong belief.
	assert.Equal(t, 2, a.BeginReasoning())
	assert.Equal(t, StateReasoning, a.State())
	assert.Equal(t, uint64(1), a.Stats().ReasoningCycles)

	a.FinishReasoning()
	assert.Equal(t, StateIdle, a.State())
}

func TestBeginReasoningThresholdIsStrict(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "thinker", nil)

	require.NoError(t, a.AddGoal(mustAtom(t, space, atomspace.TypeGoal, "g")))

	// Exactly at the thresholds does not count: both must be exceeded.
	borderline := mustAtom(t, space, atomspace.TypeBelief, "border")
	require.NoError(t, borderline.SetTruth(0.7, 0.6))
	require.NoError(t, a.AddBelief(borderline))

	assert.Equal(t, 0, a.BeginReasoning())
	a.FinishReasoning()
}

func TestLearn(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "learner", nil)

	exp := mustAtom(t, space, atomspace.TypeConcept, "lesson")
	require.NoError(t, a.Learn(exp))

	tv := exp.Truth()
	assert.InDelta(t, 0.55, tv.Confidence, 1e-9)
	assert.Equal(t, uint64(1), tv.Count)
	assert.Equal(t, int32(2), exp.RefCount())
	assert.Equal(t, []*atomspace.Atom{exp}, a.Knowledge())
	assert.Equal(t, StateIdle, a.State())

	assert.ErrorIs(t, a.Learn(nil), ErrNilAtom)
}

func TestLearnClampsConfidence(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "learner", nil)

	exp := mustAtom(t, space, atomspace.TypeConcept, "lesson")
	require.NoError(t, exp.SetTruth(0.5, 0.99))

	require.NoError(t, a.Learn(exp))
	assert.Equal(t, 1.0, exp.Truth().Confidence)
}

func TestActWithoutPlan(t *testing.T) {
	a := New(1, "doer", nil)

	executed, err := a.Act()
	require.NoError(t, err)
	assert.Equal(t, 1, executed)
	assert.Equal(t, uint64(1), a.Stats().ActionsExecuted)
	assert.Equal(t, StateIdle, a.State())
}

func TestCreatePlanTemplate(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "planner", nil)

	goal := mustAtom(t, space, atomspace.TypeGoal, "optimize")
	belief := mustAtom(t, space, atomspace.TypeBelief, "hot")
	require.NoError(t, belief.SetTruth(0.8, 0.5))
	require.NoError(t, a.AddBelief(belief))

	plan, err := a.CreatePlan(goal)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Len())
	assert.Equal(t, 3.0, plan.TotalCost())
	assert.Same(t, plan, a.CurrentPlan())
	assert.Len(t, a.Plans(), 1)

	_, err = a.CreatePlan(nil)
	assert.ErrorIs(t, err, ErrNilAtom)
}

func TestCurrentPlanIsSticky(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "planner", nil)
	goal := mustAtom(t, space, atomspace.TypeGoal, "optimize")

	first, err := a.CreatePlan(goal)
	require.NoError(t, err)
	second, err := a.CreatePlan(goal)
	require.NoError(t, err)

	// The first plan stays current until executed.
	assert.Same(t, first, a.CurrentPlan())
	assert.NotSame(t, first, second)
	assert.Len(t, a.Plans(), 2)
}

func TestExecutePlan(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "doer", nil)

	goal := mustAtom(t, space, atomspace.TypeGoal, "optimize")
	belief := mustAtom(t, space, atomspace.TypeBelief, "hot")
	require.NoError(t, belief.SetTruth(0.9, 0.5))
	require.NoError(t, a.AddBelief(belief))

	plan, err := a.CreatePlan(goal)
	require.NoError(t, err)

	executed, err := a.ExecutePlan()
	require.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Equal(t, uint64(2), a.Stats().ActionsExecuted)

	// The completed plan is invalidated and no longer current.
	assert.False(t, plan.Valid())
	assert.Nil(t, a.CurrentPlan())
	assert.Equal(t, StateIdle, a.State())

	_, err = a.ExecutePlan()
	assert.ErrorIs(t, err, ErrNoActivePlan)
}

func TestActExecutesCurrentPlan(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "doer", nil)

	goal := mustAtom(t, space, atomspace.TypeGoal, "optimize")
	belief := mustAtom(t, space, atomspace.TypeBelief, "hot")
	require.NoError(t, belief.SetTruth(0.9, 0.5))
	require.NoError(t, a.AddBelief(belief))

	_, err := a.CreatePlan(goal)
	require.NoError(t, err)

	executed, err := a.Act()
	require.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Nil(t, a.CurrentPlan())
}

func TestDestroyReleasesEverything(t *testing.T) {
	space := newTestSpace(t)
	a := New(1, "doomed", nil)

	goal := mustAtom(t, space, atomspace.TypeGoal, "g")
	belief := mustAtom(t, space, atomspace.TypeBelief, "b")
	require.NoError(t, belief.SetTruth(0.9, 0.5))
	fact := mustAtom(t, space, atomspace.TypeConcept, "k")

	require.NoError(t, a.AddGoal(goal))
	require.NoError(t, a.AddBelief(belief))
	require.NoError(t, a.AddKnowledge(fact))
	_, err := a.CreatePlan(goal)
	require.NoError(t, err)

	// One undelivered message still holding a payload reference.
	sender := New(2, "peer", nil)
	payload := mustAtom(t, space, atomspace.TypeValue, "note")
	require.NoError(t, sender.Send(a, payload))
	require.Equal(t, int32(2), payload.RefCount())

	a.Destroy()

	// Only the space's reference remains on every atom.
	assert.Equal(t, int32(1), goal.RefCount()) // collection + plan goal both released
	assert.Equal(t, int32(1), belief.RefCount())
	assert.Equal(t, int32(1), fact.RefCount())
	assert.Equal(t, int32(1), payload.RefCount())
	assert.Equal(t, 0, a.PendingMessages())

	// Idempotent: a second destroy must not release anything again.
	a.Destroy()
	assert.Equal(t, int32(1), goal.RefCount())

	assert.ErrorIs(t, a.AddGoal(goal), ErrDestroyed)
	assert.ErrorIs(t, a.AddBelief(belief), ErrDestroyed)
	assert.ErrorIs(t, a.AddKnowledge(fact), ErrDestroyed)
	assert.ErrorIs(t, a.Learn(fact), ErrDestroyed)
	_, err = a.CreatePlan(goal)
	assert.ErrorIs(t, err, ErrDestroyed)
	assert.Nil(t, a.CurrentPlan())
}
