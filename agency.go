package agency

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/atomind-ai/agency/agent"
	"github.com/atomind-ai/agency/atomspace"
	"github.com/atomind-ai/agency/inference"
	"github.com/atomind-ai/agency/planning"
)

// System composes one atomspace, the rule registry, and the set of live
// agents, and owns their global lifecycle. Multiple independent Systems
// may coexist; each follows a construct, ready, Shutdown lifecycle, and
// no operation is valid after Shutdown.
//
// The system's lock guards only the agent set and lifecycle flag. It is
// never held while an agent's, atom's, or the space's lock is taken.
type System struct {
	logger  *zap.Logger
	tracer  trace.Tracer
	metrics *systemMetrics

	space *atomspace.Space
	rules *inference.Registry

	mu          sync.Mutex
	agents      []*agent.Agent
	nextAgentID uint64
	closed      bool
}

// New constructs a ready System. Options configure logging, telemetry, and
// atomspace capacity; WithConfigFile additionally loads capacity and
// declarative rules from YAML with environment overrides.
func New(opts ...Option) (*System, error) {
	cfg := &systemConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.tracer == nil {
		cfg.tracer = tracenoop.NewTracerProvider().Tracer("agency")
	}
	if cfg.meter == nil {
		cfg.meter = metricnoop.NewMeterProvider().Meter("agency")
	}

	var fileRules []*inference.Rule
	capacity := cfg.capacity
	if cfg.configPath != "" {
		fileCfg, err := LoadConfig(cfg.configPath)
		if err != nil {
			return nil, err
		}
		if fileCfg.Atomspace.Capacity > 0 {
			capacity = fileCfg.Atomspace.Capacity
		}
		fileRules, err = fileCfg.BuildRules()
		if err != nil {
			return nil, err
		}
	}

	metrics, err := newSystemMetrics(cfg.meter)
	if err != nil {
		return nil, err
	}

	s := &System{
		logger:  cfg.logger,
		tracer:  cfg.tracer,
		metrics: metrics,
		space:   atomspace.NewSpace(capacity),
		rules:   inference.NewRegistry(),
	}
	for _, rule := range fileRules {
		if err := s.rules.Add(rule); err != nil {
			return nil, err
		}
	}

	s.logger.Info("cognitive agency initialized",
		zap.Int("capacity", s.space.Capacity()),
		zap.Int("rules", s.rules.Len()))
	return s, nil
}

// Shutdown destroys every agent, then closes the atomspace. Agent handles
// are collected under the lock and destroyed after it is released, so no
// destruction happens while iterating live state. Shutdown is idempotent;
// every other operation on the system fails with ErrClosed afterwards.
func (s *System) Shutdown(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "agency.shutdown")
	defer span.End()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	agents := s.agents
	s.agents = nil
	s.mu.Unlock()

	for _, a := range agents {
		a.Destroy()
	}
	s.space.Close()

	s.logger.Info("cognitive agency shut down", zap.Int("agents_destroyed", len(agents)))
	return nil
}

// Atomspace returns the shared atomspace.
func (s *System) Atomspace() *atomspace.Space {
	return s.space
}

// Rules returns the system's rule registry.
func (s *System) Rules() *inference.Registry {
	return s.rules
}

// CreateAgent allocates an agent with a unique ID, registers it, and
// returns its handle. The handle argument is the hosting environment's
// opaque execution context; it is stored on the agent but never inspected.
func (s *System) CreateAgent(ctx context.Context, name string, handle any) (*agent.Agent, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	s.nextAgentID++
	a := agent.New(s.nextAgentID, name, handle)
	s.agents = append(s.agents, a)
	s.mu.Unlock()

	s.metrics.recordAgentCreated(ctx, a.ID(), a.Name())
	s.logger.Info("agent created", zap.Uint64("id", a.ID()), zap.String("name", a.Name()))
	return a, nil
}

// DestroyAgent releases every atom reference the agent holds and
// deregisters it from the system.
func (s *System) DestroyAgent(ctx context.Context, a *agent.Agent) error {
	if a == nil {
		return ErrNilAgent
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	found := false
	for i, registered := range s.agents {
		if registered == a {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrAgentNotFound
	}

	a.Destroy()
	s.logger.Info("agent destroyed", zap.Uint64("id", a.ID()), zap.String("name", a.Name()))
	return nil
}

// AddRule registers a forward-chaining rule. Rules are evaluated in
// registration order.
func (s *System) AddRule(rule *inference.Rule) error {
	if rule == nil {
		return ErrNilRule
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.mu.Unlock()

	if err := s.rules.Add(rule); err != nil {
		return err
	}
	s.logger.Debug("rule registered",
		zap.String("name", rule.Name()),
		zap.Stringer("condition", rule.Condition()),
		zap.Stringer("conclusion", rule.Conclusion()),
		zap.Float64("threshold", rule.Threshold()))
	return nil
}

// Reason runs one reasoning cycle for the agent: the goal/belief relevance
// phase, then a single forward-chaining pass over the rule registry.
// Returns the number of rule firings; zero firings is a normal outcome.
func (s *System) Reason(ctx context.Context, a *agent.Agent) (int, error) {
	if a == nil {
		return 0, ErrNilAgent
	}
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	ctx, span := s.tracer.Start(ctx, "agency.reason")
	defer span.End()

	strong := a.BeginReasoning()
	fired, err := inference.Apply(s.space, s.rules, a)
	a.FinishReasoning()
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	span.SetAttributes(
		attribute.Int64("agent.id", int64(a.ID())),
		attribute.Int("reason.strong_beliefs", strong),
		attribute.Int("reason.inferences", fired),
	)
	s.metrics.recordReasoning(ctx, a.ID(), a.Name(), fired)
	s.logger.Debug("reasoning cycle complete",
		zap.Uint64("agent", a.ID()),
		zap.Int("strong_beliefs", strong),
		zap.Int("inferences", fired))
	return fired, nil
}

// Act executes the agent's current plan, or a single degenerate action if
// no plan is active. Returns the number of actions executed.
func (s *System) Act(ctx context.Context, a *agent.Agent) (int, error) {
	if a == nil {
		return 0, ErrNilAgent
	}
	if err := s.checkOpen(); err != nil {
		return 0, err
	}

	ctx, span := s.tracer.Start(ctx, "agency.act")
	defer span.End()

	executed, err := a.Act()
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	span.SetAttributes(
		attribute.Int64("agent.id", int64(a.ID())),
		attribute.Int("act.executed", executed),
	)
	s.metrics.recordActions(ctx, a.ID(), a.Name(), executed)
	return executed, nil
}

// CreatePlan builds a plan for the goal from the agent's current beliefs
// and registers it with the agent; it becomes the current plan only if
// none is already active.
func (s *System) CreatePlan(ctx context.Context, a *agent.Agent, goal *atomspace.Atom) (*planning.Plan, error) {
	if a == nil {
		return nil, ErrNilAgent
	}
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "agency.plan")
	defer span.End()

	plan, err := a.CreatePlan(goal)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("agent.id", int64(a.ID())),
		attribute.Int("plan.actions", plan.Len()),
		attribute.Float64("plan.total_cost", plan.TotalCost()),
	)
	s.metrics.recordPlanBuilt(ctx, a.ID(), a.Name())
	return plan, nil
}

// AgentCount returns the number of registered agents.
func (s *System) AgentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.agents)
}

// AtomCount returns the number of live atoms in the shared atomspace.
func (s *System) AtomCount() int {
	return s.space.Len()
}

// RuleCount returns the number of registered inference rules.
func (s *System) RuleCount() int {
	return s.rules.Len()
}

func (s *System) checkOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}
