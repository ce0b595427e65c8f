package inference

import (
	"github.com/atomind-ai/agency/agent"
	"github.com/atomind-ai/agency/atomspace"
)

// InferredAtomName is the fixed name given to every conclusion atom. It is
// deliberately not derived from the matched belief; many atoms share this
// name, which is why name lookups are first-match by design.
const InferredAtomName = "inferred_knowledge"

// Discount factors applied to a matched belief's truth value when deriving
// the conclusion's truth value.
const (
	strengthDiscount   = 0.8
	confidenceDiscount = 0.9
)

// Apply runs every registered rule against the agent's beliefs. A rule
// fires for each belief whose type equals the rule's condition type and
// whose confidence meets the rule's threshold; each firing creates a new
// conclusion atom in the shared space with truth value
// (strength x 0.8, confidence x 0.9), adds it to the agent's knowledge,
// and increments the rule's application counter.
//
// Firing is not idempotent: re-running with unchanged beliefs produces
// fresh conclusion atoms. A pass that fires nothing returns zero without
// error; an empty match set is a normal outcome. If the space reaches
// capacity mid-pass, the remaining matches are skipped without firing.
func Apply(space *atomspace.Space, reg *Registry, a *agent.Agent) (int, error) {
	if space == nil {
		return 0, ErrNilSpace
	}
	if reg == nil {
		return 0, ErrNilRegistry
	}
	if a == nil {
		return 0, ErrNilAgent
	}

	rules := reg.Rules()
	beliefs := a.Beliefs()

	applied := 0
	for _, rule := range rules {
		for _, belief := range beliefs {
			if belief.Type() != rule.Condition() {
				continue
			}
			tv := belief.Truth()
			if tv.Confidence < rule.Threshold() {
				continue
			}

			conclusion, err := space.CreateAtom(rule.Conclusion(), InferredAtomName)
			if err != nil {
				continue
			}
			// Both products stay within [0, 1], so SetTruth cannot fail.
			_ = conclusion.SetTruth(tv.Strength*strengthDiscount, tv.Confidence*confidenceDiscount)

			if err := a.AddKnowledge(conclusion); err != nil {
				continue
			}
			rule.recordApplication()
			applied++
		}
	}
	return applied, nil
}
