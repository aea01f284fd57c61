package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/ib-77/railflow/pkg/rop"
	"github.com/ib-77/railflow/pkg/rop/solo"
	"github.com/zoobzio/clockz"
)

// Locomotive runs the finalized step sequence of node over initial in a single
// forward pass. A failing forward step consumes exactly one following step: if
// it is a recovery node its result replaces the failure, otherwise the failure
// is returned unchanged. Recovery nodes met without a pending failure are
// skipped. The context only carries run options.
func Locomotive(ctx context.Context, node *Node, initial any) (any, error) {
	t := &trip{
		ctx:      ctx,
		log:      GetLogger(ctx),
		clock:    GetClock(ctx, clockz.RealClock),
		recorder: GetRecorder(ctx),
	}
	steps := node.Steps()
	acc := rop.Success[any](initial)

	for i := 0; i < len(steps); i++ {
		step := steps[i]

		if step.forward == nil {
			t.note(i, step, EventSkipped, t.clock.Now(), nil)
			continue
		}

		started := t.clock.Now()
		res := solo.Try[any, any](acc, step.forward)
		if res.IsSuccess() {
			acc = res
			t.note(i, step, EventApplied, started, nil)
			continue
		}
		t.note(i, step, EventFailed, started, res.Err())

		i++
		if i >= len(steps) || steps[i].recover == nil {
			t.finish(len(steps), res.Err())
			return nil, res.Err()
		}

		handler := steps[i]
		started = t.clock.Now()
		rescued := solo.Rescue(res, func(err error) (any, error) {
			return handler.recover(err).Unwrap()
		})
		if !rescued.IsSuccess() {
			t.note(i, handler, EventFailed, started, rescued.Err())
			t.finish(len(steps), rescued.Err())
			return nil, rescued.Err()
		}
		acc = rescued
		t.note(i, handler, EventRecovered, started, nil)
	}

	t.finish(len(steps), nil)
	return acc.Result(), nil
}

type trip struct {
	ctx      context.Context
	log      *slog.Logger
	clock    clockz.Clock
	recorder *Recorder
}

func (t *trip) note(i int, step *Node, event Event, started time.Time, err error) {
	if t.recorder != nil {
		t.recorder.add(StepRecord{
			Index:     i,
			Kind:      step.Kind(),
			Node:      step.id,
			Event:     event,
			StartedAt: started,
			Duration:  t.clock.Now().Sub(started),
			Err:       err,
		})
	}

	if !t.log.Enabled(t.ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.Int("step", i),
		slog.String("kind", step.Kind().String()),
		slog.String("node", step.id.String()),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	t.log.LogAttrs(t.ctx, slog.LevelDebug, "step "+string(event), attrs...)
}

func (t *trip) finish(steps int, err error) {
	if err != nil {
		t.log.LogAttrs(t.ctx, slog.LevelDebug, "run failed",
			slog.Int("steps", steps), slog.Any("error", err))
		return
	}
	t.log.LogAttrs(t.ctx, slog.LevelDebug, "run finished", slog.Int("steps", steps))
}
