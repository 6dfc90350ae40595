package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsOnFirstAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, Linear(time.Millisecond), func(_ context.Context, _ int) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 3, Linear(time.Millisecond), func(_ context.Context, _ int) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ReturnsLastErrorAfterExhaustion(t *testing.T) {
	calls := 0
	wantErr := errors.New("attempt 3 failed")
	err := Do(context.Background(), 3, Linear(time.Millisecond), func(_ context.Context, attempt int) error {
		calls++
		if attempt == 3 {
			return wantErr
		}
		return errors.New("earlier failure")
	})

	assert.Equal(t, 3, calls)
	assert.Equal(t, wantErr, err)
}

func TestDo_LinearDelaysGrowWithAttemptNumber(t *testing.T) {
	var delays []time.Duration
	delay := Linear(10 * time.Millisecond)
	for attempt := 1; attempt <= 2; attempt++ {
		delays = append(delays, delay(attempt))
	}

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, delays)
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, 3, Linear(time.Second), func(_ context.Context, _ int) error {
		calls++
		return errors.New("transient")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	// The first attempt runs; cancellation interrupts the backoff wait.
	assert.Equal(t, 1, calls)
}

func TestDo_AttemptNumbersArePassedThrough(t *testing.T) {
	var seen []int
	_ = Do(context.Background(), 3, Linear(time.Millisecond), func(_ context.Context, attempt int) error {
		seen = append(seen, attempt)
		return errors.New("always fails")
	})

	assert.Equal(t, []int{1, 2, 3}, seen)
}
