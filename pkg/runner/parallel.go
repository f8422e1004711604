package runner

import (
	"context"
	"fmt"
	"sync"

	"digital.vasic.matchers/pkg/suite"
)

// indexedResult pairs a result with its original index so
// results can be returned in submission order.
type indexedResult struct {
	index  int
	result *suite.Result
	err    error
}

// Run evaluates every definition against the map of named
// collections, at most r.concurrency at a time. Results come
// back in submission order. Cancelling the context abandons
// checks that have not started; the first cancellation error
// is returned alongside the results that did complete.
func (r *Runner) Run(
	ctx context.Context,
	defs []suite.Definition,
	values map[string][]any,
) ([]suite.Result, error) {
	sem := make(chan struct{}, r.concurrency)
	resultsCh := make(chan indexedResult, len(defs))

	var wg sync.WaitGroup

	for i, def := range defs {
		wg.Add(1)
		go func(idx int, def suite.Definition) {
			defer wg.Done()

			// Acquire semaphore slot.
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				resultsCh <- indexedResult{
					index: idx,
					err: fmt.Errorf(
						"check %s on %s: %w",
						def.Kind, def.Target, ctx.Err(),
					),
				}
				return
			}

			res := r.evaluate(def, values)
			r.observe(res)

			resultsCh <- indexedResult{
				index:  idx,
				result: &res,
			}
		}(i, def)
	}

	// Close channel after all goroutines complete.
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	// Collect results in submission order.
	ordered := make([]*suite.Result, len(defs))
	var firstErr error

	for ir := range resultsCh {
		if ir.err != nil && firstErr == nil {
			firstErr = ir.err
		}
		ordered[ir.index] = ir.result
	}

	// Drop slots abandoned by cancellation.
	results := make([]suite.Result, 0, len(defs))
	for _, res := range ordered {
		if res != nil {
			results = append(results, *res)
		}
	}

	return results, firstErr
}

// evaluate resolves the definition's target and runs the
// engine. A missing target becomes a failed Result, matching
// the engine's EvaluateAll behavior.
func (r *Runner) evaluate(
	def suite.Definition,
	values map[string][]any,
) suite.Result {
	actual, ok := values[def.Target]
	if !ok {
		return suite.Result{
			Kind:     def.Kind,
			Target:   def.Target,
			Expected: def.Expected,
			Message:  def.Message,
			Err: fmt.Sprintf(
				"target not found: %s", def.Target,
			),
		}
	}

	return r.engine.Evaluate(def, actual)
}
