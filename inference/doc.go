// Package inference implements forward-chaining inference over an agent's
// beliefs. Rules match beliefs by atom type and confidence threshold only;
// there is no pattern matching or unification. Each match writes a new
// discounted conclusion atom into the shared atomspace and the agent's
// knowledge set.
//
// Evaluation is a single pass: rules fire in registration order, beliefs
// are considered in insertion order, and conclusions created during a cycle
// are never treated as further premises within the same cycle.
package inference
