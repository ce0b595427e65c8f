// Package planning provides goal-directed action plans. The planner is
// deliberately simple: a plan is built from a fixed two-action template per
// qualifying belief, not from general STRIPS/HTN search. Preconditions and
// effects are templates only; they are not verified against live belief
// state when the plan executes.
package planning
