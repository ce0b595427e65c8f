package agency

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// systemMetrics holds the OpenTelemetry metric instruments for a System.
// They are created once at construction and reused for every operation.
type systemMetrics struct {
	// agentsCreated increments for each agent registered with the system
	agentsCreated metric.Int64Counter

	// reasoningCycles increments for each reasoning cycle started
	reasoningCycles metric.Int64Counter

	// inferences counts conclusion atoms produced by rule firings
	inferences metric.Int64Counter

	// plansBuilt increments for each plan constructed
	plansBuilt metric.Int64Counter

	// actionsExecuted counts actions executed during Act calls
	actionsExecuted metric.Int64Counter
}

// newSystemMetrics creates the metric instruments on the given meter.
// A noop meter yields noop instruments, so recording is always safe.
func newSystemMetrics(meter metric.Meter) (*systemMetrics, error) {
	m := &systemMetrics{}
	var err error

	m.agentsCreated, err = meter.Int64Counter(
		"agency.agents.created",
		metric.WithDescription("Number of agents created"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create agents counter: %w", err)
	}

	m.reasoningCycles, err = meter.Int64Counter(
		"agency.reasoning.cycles",
		metric.WithDescription("Number of reasoning cycles started"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create reasoning counter: %w", err)
	}

	m.inferences, err = meter.Int64Counter(
		"agency.inferences",
		metric.WithDescription("Number of conclusion atoms produced by rule firings"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create inferences counter: %w", err)
	}

	m.plansBuilt, err = meter.Int64Counter(
		"agency.plans.built",
		metric.WithDescription("Number of plans constructed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create plans counter: %w", err)
	}

	m.actionsExecuted, err = meter.Int64Counter(
		"agency.actions.executed",
		metric.WithDescription("Number of actions executed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create actions counter: %w", err)
	}

	return m, nil
}

func agentAttrs(agentID uint64, agentName string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.Int64("agent.id", int64(agentID)),
		attribute.String("agent.name", agentName),
	)
}

func (m *systemMetrics) recordAgentCreated(ctx context.Context, agentID uint64, name string) {
	if m == nil || m.agentsCreated == nil {
		return
	}
	m.agentsCreated.Add(ctx, 1, agentAttrs(agentID, name))
}

func (m *systemMetrics) recordReasoning(ctx context.Context, agentID uint64, name string, fired int) {
	if m == nil {
		return
	}
	opts := agentAttrs(agentID, name)
	if m.reasoningCycles != nil {
		m.reasoningCycles.Add(ctx, 1, opts)
	}
	if m.inferences != nil && fired > 0 {
		m.inferences.Add(ctx, int64(fired), opts)
	}
}

func (m *systemMetrics) recordPlanBuilt(ctx context.Context, agentID uint64, name string) {
	if m == nil || m.plansBuilt == nil {
		return
	}
	m.plansBuilt.Add(ctx, 1, agentAttrs(agentID, name))
}

func (m *systemMetrics) recordActions(ctx context.Context, agentID uint64, name string, executed int) {
	if m == nil || m.actionsExecuted == nil || executed <= 0 {
		return
	}
	m.actionsExecuted.Add(ctx, int64(executed), agentAttrs(agentID, name))
}
