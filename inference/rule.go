package inference

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/atomind-ai/agency/atomspace"
)

// Sentinel errors for inference operations.
var (
	// ErrEmptyName indicates a rule was created without a name.
	ErrEmptyName = errors.New("inference: empty rule name")

	// ErrInvalidThreshold indicates a confidence threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("inference: threshold out of range")

	// ErrInvalidType indicates a condition or conclusion atom type outside
	// the known range.
	ErrInvalidType = errors.New("inference: invalid atom type")

	// ErrNilRule indicates a nil rule was added to a registry.
	ErrNilRule = errors.New("inference: nil rule")

	// ErrNilSpace indicates inference was run without an atomspace.
	ErrNilSpace = errors.New("inference: nil atomspace")

	// ErrNilRegistry indicates inference was run without a rule registry.
	ErrNilRegistry = errors.New("inference: nil registry")

	// ErrNilAgent indicates inference was run without an agent.
	ErrNilAgent = errors.New("inference: nil agent")
)

// Rule maps a condition atom type to a conclusion atom type above a
// confidence threshold. Rules are immutable after creation except for the
// application counter.
type Rule struct {
	name       string
	condition  atomspace.Type
	conclusion atomspace.Type
	threshold  float64
	applied    atomic.Uint64
}

// NewRule creates a rule. Returns an error for an empty name, an invalid
// atom type, or a threshold outside [0, 1].
func NewRule(name string, condition, conclusion atomspace.Type, threshold float64) (*Rule, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !condition.IsValid() {
		return nil, fmt.Errorf("%w: condition %d", ErrInvalidType, condition)
	}
	if !conclusion.IsValid() {
		return nil, fmt.Errorf("%w: conclusion %d", ErrInvalidType, conclusion)
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	return &Rule{
		name:       name,
		condition:  condition,
		conclusion: conclusion,
		threshold:  threshold,
	}, nil
}

// Name returns the rule's name.
func (r *Rule) Name() string { return r.name }

// Condition returns the belief type the rule matches.
func (r *Rule) Condition() atomspace.Type { return r.condition }

// Conclusion returns the atom type the rule produces.
func (r *Rule) Conclusion() atomspace.Type { return r.conclusion }

// Threshold returns the minimum belief confidence for the rule to fire.
func (r *Rule) Threshold() float64 { return r.threshold }

// TimesApplied returns how many times the rule has fired.
func (r *Rule) TimesApplied() uint64 {
	return r.applied.Load()
}

func (r *Rule) recordApplication() {
	r.applied.Add(1)
}
