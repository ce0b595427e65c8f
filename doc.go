// Package agency provides an in-process knowledge representation and
// multi-agent reasoning SDK: a shared graph of typed, weighted knowledge
// atoms, autonomous agents with goals and beliefs, forward-chaining
// inference, simple action planning, and inter-agent messaging.
//
// # Core Concepts
//
//   - Atoms: typed, named, truth-valued knowledge units linked into a graph
//   - Atomspace: the bounded container owning every atom it creates
//   - Agents: autonomous entities with goals, beliefs, knowledge, and an inbox
//   - Rules: forward-chaining inference rules matched by type and threshold
//   - Plans: templated action sequences intended to realize a goal
//
// # Getting Started
//
// Construct a System, which composes one atomspace, one rule registry, and
// the set of live agents:
//
//	sys, err := agency.New(agency.WithCapacity(10000))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer sys.Shutdown(context.Background())
//
//	worker, _ := sys.CreateAgent(ctx, "scheduler-observer", nil)
//	belief, _ := sys.Atomspace().CreateAtom(atomspace.TypeBelief, "cpu_load_high")
//	_ = belief.SetTruth(0.9, 0.7)
//	_ = worker.AddBelief(belief)
//
//	rule, _ := inference.NewRule("belief-to-action", atomspace.TypeBelief, atomspace.TypeAction, 0.6)
//	_ = sys.AddRule(rule)
//
//	fired, _ := sys.Reason(ctx, worker)
//
// Every call is synchronous and bounded; there are no blocking waits, no
// retries, and no persistence. Multiple independent System instances may
// coexist, which the test suite relies on.
package agency
