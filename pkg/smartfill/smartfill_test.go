package smartfill

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripleswitch/complianceos/pkg/model"
)

func TestPhaseFor(t *testing.T) {
	tests := []struct {
		progress int
		phase    int
	}{
		{0, 0}, {14, 0},
		{15, 1}, {34, 1},
		{35, 2}, {54, 2},
		{55, 3}, {74, 3},
		{75, 4}, {89, 4},
		{90, 5}, {99, 5}, {100, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.phase, PhaseFor(tt.progress), "progress %d", tt.progress)
	}
	assert.Equal(t, "Querying Knowledge Base (Neo4j)...", Label(60))
}

func TestProgress_LabelsMonotonic(t *testing.T) {
	var p Progress
	seen := []string{Label(0)}
	completions := 0

	for !p.Done() {
		step := p.Advance()
		if step.PhaseChanged {
			seen = append(seen, step.Label)
		}
		if step.Completed {
			completions++
		}
	}

	assert.Equal(t, Labels(), seen)
	assert.Equal(t, 1, completions)
	assert.Equal(t, Complete, p.Value())

	after := p.Advance()
	assert.False(t, after.Completed)
	assert.Equal(t, Complete, after.Progress)
}

func TestSeedFields(t *testing.T) {
	fields := SeedFields()
	require.Len(t, fields, 6)

	f4 := fields[3]
	assert.Equal(t, "f4", f4.ID)
	assert.Equal(t, "Total Production (Bbls)", f4.Label)
	assert.Equal(t, "450.5", f4.Value)
	assert.Equal(t, "450", f4.OriginalValue)
	assert.Equal(t, 0.65, f4.Confidence)
	assert.True(t, HasMismatch(f4))
	assert.True(t, NeedsAttention(f4))

	for _, f := range fields {
		assert.True(t, f.Required)
		assert.False(t, f.IsEdited)
	}

	fields[0].Value = "changed"
	assert.Equal(t, "Tripleswitch Brewing Company, LLC", SeedFields()[0].Value)
}

func TestConfidenceBand(t *testing.T) {
	assert.Equal(t, BandHigh, ConfidenceBand(0.9))
	assert.Equal(t, BandHigh, ConfidenceBand(1.0))
	assert.Equal(t, BandMedium, ConfidenceBand(0.85))
	assert.Equal(t, BandMedium, ConfidenceBand(0.7))
	assert.Equal(t, BandLow, ConfidenceBand(0.69))

	edited := model.FormField{Confidence: 0.2, IsEdited: true}
	assert.False(t, NeedsAttention(edited))
}

// advance moves the mock clock one interval at a time, waiting for each tick
// to be consumed so none is dropped. An interval is re-added if the runner
// had not registered its ticker yet.
func advance(t *testing.T, mock *clock.Mock, interval time.Duration, ticks *int32, want int32) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt32(ticks) < want {
		require.True(t, time.Now().Before(deadline), "timed out at %d ticks", atomic.LoadInt32(ticks))
		before := atomic.LoadInt32(ticks)
		mock.Add(interval)
		for i := 0; i < 50 && atomic.LoadInt32(ticks) == before; i++ {
			time.Sleep(time.Millisecond)
		}
	}
}

func TestAnalysis_RunsToCompletion(t *testing.T) {
	mock := clock.NewMock()
	var ticks int32
	var completed int32
	var mu sync.Mutex
	var labels []string

	a := Start(context.Background(), Options{
		Clock: mock,
		OnTick: func(s Step) {
			mu.Lock()
			if s.PhaseChanged {
				labels = append(labels, s.Label)
			}
			mu.Unlock()
			atomic.AddInt32(&ticks, 1)
		},
		OnComplete: func() {
			atomic.AddInt32(&completed, 1)
		},
	})
	defer a.Stop()

	advance(t, mock, DefaultTickInterval, &ticks, Complete)
	assert.EqualValues(t, 0, atomic.LoadInt32(&completed))

	require.Eventually(t, func() bool {
		mock.Add(100 * time.Millisecond)
		return atomic.LoadInt32(&completed) == 1
	}, time.Second, time.Millisecond)

	<-a.Done()
	mock.Add(time.Second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&completed))
	assert.EqualValues(t, Complete, atomic.LoadInt32(&ticks))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, Labels()[1:], labels)
}

func TestAnalysis_ZeroDelayWaitsDefault(t *testing.T) {
	mock := clock.NewMock()
	var ticks int32
	var completed int32

	a := Start(context.Background(), Options{
		Clock:      mock,
		OnTick:     func(Step) { atomic.AddInt32(&ticks, 1) },
		OnComplete: func() { atomic.AddInt32(&completed, 1) },
	})
	defer a.Stop()

	advance(t, mock, DefaultTickInterval, &ticks, Complete)
	time.Sleep(5 * time.Millisecond)
	mock.Add(DefaultCompletionDelay - time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	assert.EqualValues(t, 0, atomic.LoadInt32(&completed))

	require.Eventually(t, func() bool {
		mock.Add(time.Millisecond)
		return atomic.LoadInt32(&completed) == 1
	}, 2*time.Second, time.Millisecond)
}

func TestAnalysis_NegativeDelayCompletesOnLastTick(t *testing.T) {
	mock := clock.NewMock()
	var ticks int32
	var completed int32

	a := Start(context.Background(), Options{
		Clock:           mock,
		CompletionDelay: -1,
		OnTick:          func(Step) { atomic.AddInt32(&ticks, 1) },
		OnComplete:      func() { atomic.AddInt32(&completed, 1) },
	})
	defer a.Stop()

	advance(t, mock, DefaultTickInterval, &ticks, Complete)
	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("analysis did not finish without a completion delay")
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&completed))
}

func TestAnalysis_StopSilencesCallbacks(t *testing.T) {
	mock := clock.NewMock()
	var ticks int32
	var completed int32

	a := Start(context.Background(), Options{
		Clock:  mock,
		OnTick: func(Step) { atomic.AddInt32(&ticks, 1) },
		OnComplete: func() {
			atomic.AddInt32(&completed, 1)
		},
	})

	advance(t, mock, DefaultTickInterval, &ticks, 10)
	a.Stop()
	stoppedAt := atomic.LoadInt32(&ticks)

	mock.Add(time.Minute)
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, stoppedAt, atomic.LoadInt32(&ticks))
	assert.EqualValues(t, 0, atomic.LoadInt32(&completed))

	a.Stop()
}

func TestAnalysis_ContextCancel(t *testing.T) {
	mock := clock.NewMock()
	ctx, cancel := context.WithCancel(context.Background())
	var ticks int32

	a := Start(ctx, Options{
		Clock:        mock,
		TickInterval: 10 * time.Millisecond,
		OnTick:       func(Step) { atomic.AddInt32(&ticks, 1) },
	})

	advance(t, mock, 10*time.Millisecond, &ticks, 3)
	cancel()

	select {
	case <-a.Done():
	case <-time.After(time.Second):
		t.Fatal("analysis did not exit after cancel")
	}
	exited := atomic.LoadInt32(&ticks)
	assert.GreaterOrEqual(t, exited, int32(3))

	mock.Add(time.Second)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, exited, atomic.LoadInt32(&ticks))
}

func TestAnalysis_StopDuringCompletionDelay(t *testing.T) {
	mock := clock.NewMock()
	var ticks int32
	var completed int32

	a := Start(context.Background(), Options{
		Clock:           mock,
		TickInterval:    time.Millisecond,
		CompletionDelay: time.Hour,
		OnTick:          func(Step) { atomic.AddInt32(&ticks, 1) },
		OnComplete:      func() { atomic.AddInt32(&completed, 1) },
	})

	advance(t, mock, time.Millisecond, &ticks, Complete)
	a.Stop()
	mock.Add(2 * time.Hour)

	assert.EqualValues(t, 0, atomic.LoadInt32(&completed))
}
