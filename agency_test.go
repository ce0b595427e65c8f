package agency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/atomind-ai/agency/atomspace"
	"github.com/atomind-ai/agency/inference"
)

func newSystem(t *testing.T, opts ...Option) *System {
	t.Helper()
	opts = append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)
	sys, err := New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sys.Shutdown(context.Background())
	})
	return sys
}

func TestNewDefaults(t *testing.T) {
	sys := newSystem(t)
	assert.Equal(t, atomspace.DefaultCapacity, sys.Atomspace().Capacity())
	assert.Equal(t, 0, sys.AgentCount())
	assert.Equal(t, 0, sys.AtomCount())
	assert.Equal(t, 0, sys.RuleCount())
}

func TestWithCapacity(t *testing.T) {
	sys := newSystem(t, WithCapacity(50))
	assert.Equal(t, 50, sys.Atomspace().Capacity())
}

func TestCreateAgent(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	first, err := sys.CreateAgent(ctx, "alpha", nil)
	require.NoError(t, err)
	second, err := sys.CreateAgent(ctx, "beta", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, "alpha", first.Name())
	assert.Equal(t, 2, sys.AgentCount())
}

func TestDestroyAgent(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	a, err := sys.CreateAgent(ctx, "alpha", nil)
	require.NoError(t, err)

	goal, err := sys.Atomspace().CreateAtom(atomspace.TypeGoal, "explore")
	require.NoError(t, err)
	require.NoError(t, a.AddGoal(goal))

	require.NoError(t, sys.DestroyAgent(ctx, a))
	assert.Equal(t, 0, sys.AgentCount())
	assert.Equal(t, int32(1), goal.RefCount())

	// The agent is no longer registered.
	assert.ErrorIs(t, sys.DestroyAgent(ctx, a), ErrAgentNotFound)
	assert.ErrorIs(t, sys.DestroyAgent(ctx, nil), ErrNilAgent)
}

func TestAddRule(t *testing.T) {
	sys := newSystem(t)

	rule, err := inference.NewRule("escalate", atomspace.TypeBelief, atomspace.TypeAction, 0.7)
	require.NoError(t, err)
	require.NoError(t, sys.AddRule(rule))
	assert.Equal(t, 1, sys.RuleCount())
	assert.ErrorIs(t, sys.AddRule(nil), ErrNilRule)
}

func TestReasonPlanAct(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	worker, err := sys.CreateAgent(ctx, "scheduler-observer", nil)
	require.NoError(t, err)

	belief, err := sys.Atomspace().CreateAtom(atomspace.TypeBelief, "cpu_load_high")
	require.NoError(t, err)
	require.NoError(t, belief.SetTruth(0.9, 0.8))
	require.NoError(t, worker.AddBelief(belief))

	goal, err := sys.Atomspace().CreateAtom(atomspace.TypeGoal, "reduce_load")
	require.NoError(t, err)
	require.NoError(t, worker.AddGoal(goal))

	rule, err := inference.NewRule("escalate", atomspace.TypeBelief, atomspace.TypeAction, 0.7)
	require.NoError(t, err)
	require.NoError(t, sys.AddRule(rule))

	fired, err := sys.Reason(ctx, worker)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	assert.Equal(t, uint64(1), worker.Stats().ReasoningCycles)
	assert.Equal(t, uint64(1), rule.TimesApplied())

	knowledge := worker.Knowledge()
	require.Len(t, knowledge, 1)
	assert.Equal(t, atomspace.TypeAction, knowledge[0].Type())
	assert.Equal(t, inference.InferredAtomName, knowledge[0].Name())
	tv := knowledge[0].Truth()
	assert.InDelta(t, 0.72, tv.Strength, 1e-9)
	assert.InDelta(t, 0.72, tv.Confidence, 1e-9)

	plan, err := sys.CreatePlan(ctx, worker, goal)
	require.NoError(t, err)
	assert.Equal(t, 2, plan.Len())
	assert.Equal(t, 3.0, plan.TotalCost())

	executed, err := sys.Act(ctx, worker)
	require.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Nil(t, worker.CurrentPlan())

	// With the plan consumed, Act degrades to a single counted action.
	executed, err = sys.Act(ctx, worker)
	require.NoError(t, err)
	assert.Equal(t, 1, executed)
}

func TestReasonWithoutRules(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	worker, err := sys.CreateAgent(ctx, "idle-observer", nil)
	require.NoError(t, err)

	// Zero firings is a normal outcome, not an error.
	fired, err := sys.Reason(ctx, worker)
	require.NoError(t, err)
	assert.Equal(t, 0, fired)
}

func TestNilAgentOperations(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	_, err := sys.Reason(ctx, nil)
	assert.ErrorIs(t, err, ErrNilAgent)
	_, err = sys.Act(ctx, nil)
	assert.ErrorIs(t, err, ErrNilAgent)
	_, err = sys.CreatePlan(ctx, nil, nil)
	assert.ErrorIs(t, err, ErrNilAgent)
}

func TestShutdown(t *testing.T) {
	sys, err := New(WithCapacity(20))
	require.NoError(t, err)
	ctx := context.Background()

	worker, err := sys.CreateAgent(ctx, "alpha", nil)
	require.NoError(t, err)
	goal, err := sys.Atomspace().CreateAtom(atomspace.TypeGoal, "explore")
	require.NoError(t, err)
	require.NoError(t, worker.AddGoal(goal))

	require.NoError(t, sys.Shutdown(ctx))

	// Agents are destroyed before the space closes, so the agent's reference
	// and the space's own reference are both released.
	assert.Equal(t, int32(0), goal.RefCount())
	assert.Equal(t, 0, sys.AgentCount())
	assert.Equal(t, 0, sys.AtomCount())

	// Idempotent.
	require.NoError(t, sys.Shutdown(ctx))

	_, err = sys.CreateAgent(ctx, "late", nil)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = sys.Reason(ctx, worker)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = sys.Act(ctx, worker)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = sys.CreatePlan(ctx, worker, goal)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, sys.DestroyAgent(ctx, worker), ErrClosed)

	rule, err := inference.NewRule("late", atomspace.TypeBelief, atomspace.TypeAction, 0.5)
	require.NoError(t, err)
	assert.ErrorIs(t, sys.AddRule(rule), ErrClosed)
}

func TestAgentMessagingThroughSystem(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	alpha, err := sys.CreateAgent(ctx, "alpha", nil)
	require.NoError(t, err)
	beta, err := sys.CreateAgent(ctx, "beta", nil)
	require.NoError(t, err)

	note, err := sys.Atomspace().CreateAtom(atomspace.TypeConcept, "handoff")
	require.NoError(t, err)
	require.NoError(t, alpha.Send(beta, note))

	got := beta.Receive()
	require.Same(t, note, got)
	got.Release()
}
