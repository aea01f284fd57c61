// Package flow provides the typed, fluent Workflow[In, Out]: a chain of
// transforms that is built once and run many times, with recovery steps that
// catch the failure of the step right before them.
//
// Key operations:
// - Create/Lift: begin a workflow from a first transform
// - Then/Map: attach a success step (free functions when the type changes)
// - Else: attach a recovery step; consecutive recoveries escalate
// - Combine: splice two workflows where the first one's output feeds the second
// - Run/RunContext: execute over an initial value
// - Try/Finally: collapse a run into a rop.Result or a concrete value
//
// Consecutive Then steps are fused into one step and consecutive Else steps
// into one escalation chain at construction time, so a run is a single pass
// with one step of lookahead after a failure.
package flow
