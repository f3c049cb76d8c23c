package storage

import "context"

// Pending is the result of a queued write. Callers may ignore it or wait for the outcome.
type Pending struct {
	done chan struct{}
	ids  []int64
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func failedPending(err error) *Pending {
	p := newPending()
	p.resolve(nil, err)
	return p
}

func (p *Pending) resolve(ids []int64, err error) {
	p.ids = ids
	p.err = err
	close(p.done)
}

// Done is closed once the write has been applied or has failed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the write completes and returns the affected ids in input order.
func (p *Pending) Wait(ctx context.Context) ([]int64, error) {
	select {
	case <-p.done:
		return append([]int64(nil), p.ids...), p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ID waits for a single-question write and returns its id.
func (p *Pending) ID(ctx context.Context) (int64, error) {
	ids, err := p.Wait(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return ids[0], nil
}
