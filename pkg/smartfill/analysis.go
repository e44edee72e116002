package smartfill

import (
	"context"
	"sync"
	"time"

	"github.com/facebookgo/clock"
)

const (
	DefaultTickInterval    = 40 * time.Millisecond
	DefaultCompletionDelay = 500 * time.Millisecond
)

// Options configures an Analysis. Zero values take the defaults.
type Options struct {
	Clock        clock.Clock
	TickInterval time.Duration
	// CompletionDelay is the pause between 100% and OnComplete. A negative
	// value completes on the last tick.
	CompletionDelay time.Duration
	// OnTick runs after every increment with the new progress and label.
	OnTick func(Step)
	// OnComplete runs once, CompletionDelay after progress reaches 100.
	OnComplete func()
}

// Analysis is a running simulated extraction
type Analysis struct {
	opts     Options
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Start launches an analysis. It runs until it completes, Stop is called, or
// ctx is cancelled.
func Start(ctx context.Context, opts Options) *Analysis {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	switch {
	case opts.CompletionDelay == 0:
		opts.CompletionDelay = DefaultCompletionDelay
	case opts.CompletionDelay < 0:
		opts.CompletionDelay = 0
	}

	ctx, cancel := context.WithCancel(ctx)
	a := &Analysis{
		opts:   opts,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go a.run(ctx)
	return a
}

func (a *Analysis) run(ctx context.Context) {
	defer close(a.done)
	defer a.cancel()

	ticker := a.opts.Clock.Ticker(a.opts.TickInterval)
	defer ticker.Stop()

	var p Progress
	for !p.Done() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		// Stop may race with a tick already delivered.
		if ctx.Err() != nil {
			return
		}
		step := p.Advance()
		if a.opts.OnTick != nil {
			a.opts.OnTick(step)
		}
	}
	ticker.Stop()

	if a.opts.CompletionDelay > 0 {
		timer := a.opts.Clock.Timer(a.opts.CompletionDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
	if ctx.Err() != nil {
		return
	}
	if a.opts.OnComplete != nil {
		a.opts.OnComplete()
	}
}

// Stop tears the analysis down and waits for its goroutine to exit. No
// callback runs after Stop returns. Stop must not be called from a callback.
func (a *Analysis) Stop() {
	a.stopOnce.Do(a.cancel)
	<-a.done
}

// Done is closed when the analysis goroutine has exited
func (a *Analysis) Done() <-chan struct{} {
	return a.done
}
