// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions are the step-level building blocks the core
// engine uses to invoke transforms.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Try: call a function (Out, error) on a success and convert error or panic to failure
// - Rescue: call a recovery function on a failure, leaving successes untouched
// - Escalate: fuse two recovery functions so the second sees the first one's failure
// - Map: transform successful values
// - Finally: reduce to a concrete value via success/error handlers
package solo
