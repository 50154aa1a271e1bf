package service

import (
	"context"
	"fmt"
	"log"
)

// sagaStep is one forward action in the create-task chain, paired with
// its compensation. Remote steps carry a nil compensation: the service
// has no way to undo a subscription or a ledger registration, and that
// gap is deliberate and visible here rather than implicit.
type sagaStep struct {
	name       string
	run        func(ctx context.Context) error
	compensate func(ctx context.Context)
}

// runSaga executes actions in order. On the first failure it runs the
// compensations of the already-completed steps in reverse order, then
// returns the failing step's error wrapped with the step name. Each
// compensation runs at most once.
func runSaga(ctx context.Context, steps []sagaStep) error {
	completed := make([]sagaStep, 0, len(steps))
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			for i := len(completed) - 1; i >= 0; i-- {
				if completed[i].compensate == nil {
					continue
				}
				log.Printf("[warn] operation=create_task compensating step=%s after failure in step=%s", completed[i].name, step.name)
				completed[i].compensate(ctx)
			}
			return fmt.Errorf("%s: %w", step.name, err)
		}
		completed = append(completed, step)
	}
	return nil
}
