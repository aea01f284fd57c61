package core

import (
	"context"
	"log/slog"

	"github.com/zoobzio/clockz"
)

type OptionKey string

const (
	LoggerOptionKey   OptionKey = "logger_options"
	ClockOptionKey    OptionKey = "clock_options"
	RecorderOptionKey OptionKey = "recorder_options"
)

var discardLogger = slog.New(slog.DiscardHandler)

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

func WithClock(ctx context.Context, clock clockz.Clock) context.Context {
	return context.WithValue(ctx, ClockOptionKey, clock)
}

func WithRecorder(ctx context.Context, recorder *Recorder) context.Context {
	return context.WithValue(ctx, RecorderOptionKey, recorder)
}

// GetLogger returns the run logger. Without one the locomotive stays silent.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*slog.Logger)
	if ok && logger != nil {
		return logger
	}
	return discardLogger
}

func GetClock(ctx context.Context, defaultClock clockz.Clock) clockz.Clock {
	clock, ok := ctx.Value(ClockOptionKey).(clockz.Clock)
	if ok && clock != nil {
		return clock
	}
	return defaultClock
}

func GetRecorder(ctx context.Context) *Recorder {
	recorder, _ := ctx.Value(RecorderOptionKey).(*Recorder)
	return recorder
}
