package fuzzer

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Pool fans inputs out to independent workers. Each worker builds its
// own runner through the factory, so no executor or helper state is
// shared between workers.
type Pool struct {
	workers int
	factory func(id int) (*Runner, error)
	log     *zap.Logger
}

func NewPool(workers int, factory func(id int) (*Runner, error), logger *zap.Logger) *Pool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pool{workers: workers, factory: factory, log: logger}
}

// Run consumes inputs until the channel closes or ctx is canceled.
func (p *Pool) Run(ctx context.Context, inputs <-chan []byte) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < p.workers; i++ {
		i := i // per-iteration copy for pre-Go 1.22 loop variable semantics
		g.Go(func() error {
			runner, err := p.factory(i)
			if err != nil {
				return err
			}
			defer runner.Close()
			p.log.Info("worker started", zap.Int("worker", i))
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case input, ok := <-inputs:
					if !ok {
						return nil
					}
					if _, err := runner.Run(input); err != nil {
						p.log.Error("worker failed", zap.Int("worker", i), zap.Error(err))
						return err
					}
				}
			}
		})
	}
	return g.Wait()
}
