package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	t.Run("happy path walks the full lifecycle", func(t *testing.T) {
		s := order.Pending

		s, err := s.Batch()
		require.NoError(t, err)
		assert.Equal(t, order.Batched, s)

		s, err = s.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, s)

		s, err = s.Depart()
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
		assert.True(t, s.IsTerminal())
	})

	t.Run("reassignment from assigned is allowed", func(t *testing.T) {
		s, err := order.Assigned.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, s)
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		_, err := order.Pending.Assign()
		require.ErrorIs(t, err, errs.ErrConflict)

		_, err = order.Batched.Depart()
		require.ErrorIs(t, err, errs.ErrConflict)

		_, err = order.Assigned.Deliver()
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("cancel is reachable from every non-terminal state", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Batched, order.Assigned, order.InTransit} {
			cancelled, err := s.Cancel()
			require.NoError(t, err, "from %s", s)
			assert.Equal(t, order.Cancelled, cancelled)
		}
	})

	t.Run("terminal states reject every transition", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := s.Batch()
			require.Error(t, err)
			_, err = s.Assign()
			require.Error(t, err)
			_, err = s.Depart()
			require.Error(t, err)
			_, err = s.Deliver()
			require.Error(t, err)
			_, err = s.Cancel()
			require.Error(t, err)
		}
	})
}

func TestStatus_Strings(t *testing.T) {
	t.Run("String returns wire names", func(t *testing.T) {
		assert.Equal(t, "pending", order.Pending.String())
		assert.Equal(t, "in_transit", order.InTransit.String())
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})

	t.Run("StatusFromString round trips", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Batched, order.Assigned,
			order.InTransit, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("StatusFromString rejects garbage", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}
