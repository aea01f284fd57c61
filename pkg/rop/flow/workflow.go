package flow

import (
	"context"

	"github.com/google/uuid"
	"github.com/ib-77/railflow/pkg/rop"
	"github.com/ib-77/railflow/pkg/rop/core"
	"github.com/ib-77/railflow/pkg/rop/solo"
)

// Workflow is an immutable pipeline from In to Out. Every builder returns a
// new Workflow, so a value can be extended in several directions and run
// concurrently.
type Workflow[In, Out any] struct {
	node *core.Node
}

// Create starts a workflow with fn as its first step.
func Create[In, Out any](fn func(In) (Out, error)) *Workflow[In, Out] {
	mustFn(fn != nil)
	return &Workflow[In, Out]{node: core.Forward(forward(fn))}
}

// Lift starts a workflow with a transform that cannot fail.
func Lift[In, Out any](fn func(In) Out) *Workflow[In, Out] {
	mustFn(fn != nil)
	return Create(infallible(fn))
}

// Then attaches a success step that may change the value type.
func Then[In, Mid, Out any](w *Workflow[In, Mid], fn func(Mid) (Out, error)) *Workflow[In, Out] {
	mustFn(fn != nil)
	return &Workflow[In, Out]{node: w.node.Then(forward(fn))}
}

// Map attaches a success step that cannot fail.
func Map[In, Mid, Out any](w *Workflow[In, Mid], fn func(Mid) Out) *Workflow[In, Out] {
	mustFn(fn != nil)
	return Then(w, infallible(fn))
}

// Else attaches a recovery step. It only runs when the step right before it
// failed and its value replaces the failure.
func Else[In, Out any](w *Workflow[In, Out], fn func(error) (Out, error)) *Workflow[In, Out] {
	mustFn(fn != nil)
	return &Workflow[In, Out]{node: w.node.Else(recovery(fn))}
}

// Combine runs a to completion and feeds its output into b.
func Combine[In, Mid, Out any](a *Workflow[In, Mid], b *Workflow[Mid, Out]) *Workflow[In, Out] {
	return &Workflow[In, Out]{node: a.node.Combine(b.node)}
}

// Then attaches a success step keeping the value type.
func (w *Workflow[In, Out]) Then(fn func(Out) (Out, error)) *Workflow[In, Out] {
	return Then(w, fn)
}

// Else attaches a recovery step.
func (w *Workflow[In, Out]) Else(fn func(error) (Out, error)) *Workflow[In, Out] {
	return Else(w, fn)
}

// Run executes the workflow. The error is the last failure no recovery step
// absorbed, returned unchanged.
func (w *Workflow[In, Out]) Run(in In) (Out, error) {
	return w.RunContext(context.Background(), in)
}

// RunContext is Run with run options (logger, clock, recorder) taken from ctx.
func (w *Workflow[In, Out]) RunContext(ctx context.Context, in In) (Out, error) {
	out, err := core.Locomotive(ctx, w.node, in)
	if err != nil {
		var zero Out
		return zero, err
	}
	return rop.Cast[Out](out)
}

// Try runs the workflow and returns the outcome as a rop.Result.
func (w *Workflow[In, Out]) Try(in In) rop.Result[Out] {
	return solo.Try(solo.Succeed(in), w.Run)
}

// Finally runs w and collapses the outcome with onSuccess or onError.
func Finally[In, Out, R any](w *Workflow[In, Out], in In,
	onSuccess func(Out) R, onError func(error) R) R {
	return solo.Finally(w.Try(in), onSuccess, onError)
}

func (w *Workflow[In, Out]) ID() uuid.UUID {
	return w.node.ID()
}

// Len is the number of steps left after fusing.
func (w *Workflow[In, Out]) Len() int {
	return w.node.Len()
}

func (w *Workflow[In, Out]) Steps() []core.StepInfo {
	return w.node.Describe()
}

func mustFn(ok bool) {
	if !ok {
		panic(core.ErrNilTransform)
	}
}

func forward[A, B any](fn func(A) (B, error)) core.ForwardFunc {
	return func(v any) (any, error) {
		a, err := rop.Cast[A](v)
		if err != nil {
			return nil, err
		}
		return fn(a)
	}
}

func recovery[T any](fn func(error) (T, error)) core.RecoverFunc {
	return func(err error) rop.Result[any] {
		return solo.Rescue(solo.Fail[any](err), func(e error) (any, error) {
			return fn(e)
		})
	}
}

func infallible[A, B any](fn func(A) B) func(A) (B, error) {
	return func(a A) (B, error) {
		return fn(a), nil
	}
}
