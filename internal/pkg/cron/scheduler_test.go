package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJobRejectsBadSpec(t *testing.T) {
	s := NewScheduler(time.UTC)

	err := s.AddJob("broken", "not a cron spec", func(ctx context.Context) error { return nil })
	assert.Error(t, err)
	assert.Empty(t, s.jobs)
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(time.UTC)

	var order []string
	require.NoError(t, s.AddJob("first", "@daily", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	}))
	require.NoError(t, s.AddJob("second", "5 0 * * *", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	}))

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScheduler_RunOnceStopsOnError(t *testing.T) {
	s := NewScheduler(time.UTC)
	boom := errors.New("boom")

	ran := false
	require.NoError(t, s.AddJob("failing", "@hourly", func(ctx context.Context) error { return boom }))
	require.NoError(t, s.AddJob("after", "@hourly", func(ctx context.Context) error {
		ran = true
		return nil
	}))

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, ran)
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(time.UTC)
	fired := make(chan struct{}, 1)

	require.NoError(t, s.AddJob("tick", "@every 10ms", func(ctx context.Context) error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	}))

	s.Start()
	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}
	s.Stop()

	assert.Error(t, s.ctx.Err())
}
