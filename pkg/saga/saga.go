// Package saga runs a sequence of forward steps against stores that offer no
// multi-row atomicity, compensating completed steps in reverse order when a
// later step fails.
package saga

import (
	"context"

	"go.uber.org/zap"
)

type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

type Saga struct {
	steps []Step
}

func New() *Saga {
	return &Saga{}
}

func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Execute runs the steps in order. On the first failure it compensates every
// previously completed step and returns the failing step's error unchanged.
// Compensation failures are logged and swallowed: there is nothing left to
// unwind them with, so they are a reconciliation concern for the ledger.
func (s *Saga) Execute(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			s.compensate(ctx, i-1)
			return err
		}
	}
	return nil
}

func (s *Saga) compensate(ctx context.Context, from int) {
	for i := from; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			zap.L().Error("compensation failed",
				zap.String("step", step.Name),
				zap.Error(err),
			)
		}
	}
}
