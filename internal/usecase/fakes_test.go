package usecase

import (
	"context"
	"sync"
	"time"
)

type fakeMeter struct {
	mu     sync.Mutex
	counts map[string]map[string]int64
	errs   []error // returned in order by Increment before succeeding
	calls  int
}

func newFakeMeter() *fakeMeter {
	return &fakeMeter{counts: map[string]map[string]int64{}}
}

func (f *fakeMeter) Increment(_ context.Context, caller, endpoint string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	if f.counts[caller] == nil {
		f.counts[caller] = map[string]int64{}
	}
	f.counts[caller][endpoint]++
	return nil
}

func (f *fakeMeter) Usage(_ context.Context, caller string) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[string]int64{}
	for k, v := range f.counts[caller] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeMeter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// slowMeter delays every increment to mimic a remote store.
type slowMeter struct {
	*fakeMeter
	delay time.Duration
}

func (s *slowMeter) Increment(ctx context.Context, caller, endpoint string) error {
	time.Sleep(s.delay)
	return s.fakeMeter.Increment(ctx, caller, endpoint)
}
