package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakePruner) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.deleted, f.err
}

func (f *fakePruner) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestRunOnce(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	pruner := &fakePruner{deleted: 3}
	svc := NewService(pruner, 24*time.Hour, time.Hour)
	svc.now = func() time.Time { return now }

	deleted, err := svc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	require.Len(t, pruner.cutoffs, 1)
	assert.Equal(t, now.Add(-24*time.Hour), pruner.cutoffs[0])
}

func TestRunOnce_Error(t *testing.T) {
	pruner := &fakePruner{err: errors.New("database is locked")}
	svc := NewService(pruner, time.Hour, time.Hour)

	_, err := svc.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	pruner := &fakePruner{}
	svc := NewService(pruner, time.Hour, 10*time.Millisecond)

	svc.Start(context.Background())
	svc.Start(context.Background())
	assert.Eventually(t, func() bool { return pruner.calls() >= 3 }, time.Second, 5*time.Millisecond)

	svc.Stop()
	calls := pruner.calls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, pruner.calls())

	svc.Stop()
}

func TestStart_ParentCancel(t *testing.T) {
	pruner := &fakePruner{}
	svc := NewService(pruner, time.Hour, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	assert.Equal(t, 1, pruner.calls())

	cancel()
	svc.Stop()
}
