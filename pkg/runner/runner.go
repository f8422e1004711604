// Package runner evaluates suites of containment checks with
// bounded concurrency, logging each result and optionally
// forwarding it to a live monitor.
package runner

import (
	"time"

	"go.uber.org/zap"

	"digital.vasic.matchers/pkg/monitor"
	"digital.vasic.matchers/pkg/suite"
)

// defaultConcurrency bounds parallel evaluation when the
// caller does not choose a limit.
const defaultConcurrency = 4

// Runner evaluates check definitions against named collections.
type Runner struct {
	engine      *suite.Engine
	logger      *zap.Logger
	collector   *monitor.Collector
	concurrency int
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency bounds the number of checks evaluated in
// parallel. Values below one fall back to serial evaluation.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		r.concurrency = n
	}
}

// WithLogger sets the logger used for per-check results.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithEngine sets the evaluation engine.
func WithEngine(engine *suite.Engine) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithCollector forwards every result to a monitor collector.
func WithCollector(c *monitor.Collector) Option {
	return func(r *Runner) {
		r.collector = c
	}
}

// New creates a Runner with a default engine, a no-op logger
// and the default concurrency bound.
func New(opts ...Option) *Runner {
	r := &Runner{
		engine:      suite.NewEngine(),
		logger:      zap.NewNop(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.concurrency <= 0 {
		r.concurrency = 1
	}
	return r
}

// observe logs a result and forwards it to the collector.
func (r *Runner) observe(res suite.Result) {
	fields := []zap.Field{
		zap.String("kind", string(res.Kind)),
		zap.String("target", res.Target),
	}

	event := monitor.CheckEvent{
		Kind:      string(res.Kind),
		Target:    res.Target,
		Timestamp: time.Now(),
	}

	switch {
	case res.Err != "":
		event.Type = monitor.EventError
		event.Message = res.Err
		r.logger.Warn("check errored",
			append(fields, zap.String("error", res.Err))...)
	case !res.Outcome.Matched:
		event.Type = monitor.EventFailed
		event.Message = res.Outcome.FailureMessage
		r.logger.Info("check failed",
			append(fields, zap.String(
				"message", res.Outcome.FailureMessage,
			))...)
	default:
		event.Type = monitor.EventPassed
		event.Message = res.Outcome.NegatedFailureMessage
		r.logger.Debug("check passed", fields...)
	}

	if r.collector != nil {
		r.collector.Publish(event)
	}
}
