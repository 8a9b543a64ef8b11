package keylock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Acquire(t *testing.T) {
	t.Run("acquires and releases a free lock", func(t *testing.T) {
		m := keylock.NewManager(time.Second)

		release, err := m.Acquire(context.Background(), "driver:d1")
		require.NoError(t, err)
		release()

		// Reacquirable after release.
		release, err = m.Acquire(context.Background(), "driver:d1")
		require.NoError(t, err)
		release()
	})

	t.Run("second acquirer times out with contention error", func(t *testing.T) {
		m := keylock.NewManager(50 * time.Millisecond)

		release, err := m.Acquire(context.Background(), "batch:b1")
		require.NoError(t, err)
		defer release()

		_, err = m.Acquire(context.Background(), "batch:b1")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrContention)
	})

	t.Run("disjoint keys do not contend", func(t *testing.T) {
		m := keylock.NewManager(50 * time.Millisecond)

		releaseA, err := m.Acquire(context.Background(), "batch:a")
		require.NoError(t, err)
		defer releaseA()

		releaseB, err := m.Acquire(context.Background(), "batch:b")
		require.NoError(t, err)
		defer releaseB()
	})

	t.Run("cancelled context aborts the wait", func(t *testing.T) {
		m := keylock.NewManager(time.Minute)

		release, err := m.Acquire(context.Background(), "delivery:x")
		require.NoError(t, err)
		defer release()

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		_, err = m.Acquire(ctx, "delivery:x")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrContention)
	})

	t.Run("serializes concurrent writers on one key", func(t *testing.T) {
		m := keylock.NewManager(5 * time.Second)

		var counter int
		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := m.Acquire(context.Background(), "driver:hot")
				if err != nil {
					return
				}
				defer release()
				counter++
			}()
		}
		wg.Wait()

		assert.Equal(t, 32, counter)
	})
}
