package payment_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/payment"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(1500), order.PaymentUPI, "upi-txn-42", time.Now())
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("creates pending payment", func(t *testing.T) {
		p := validPayment(t)

		assert.Equal(t, payment.StatusPending, p.Status())
		assert.Equal(t, "upi-txn-42", p.Reference())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(),
			decimal.Zero, order.PaymentCash, "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPaymentLifecycle(t *testing.T) {
	t.Run("pending completes", func(t *testing.T) {
		p := validPayment(t)

		require.NoError(t, p.Complete())

		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("pending fails", func(t *testing.T) {
		p := validPayment(t)

		require.NoError(t, p.Fail())

		assert.Equal(t, payment.StatusFailed, p.Status())
	})

	t.Run("completed refunds", func(t *testing.T) {
		p := validPayment(t)
		require.NoError(t, p.Complete())

		require.NoError(t, p.Refund())

		assert.Equal(t, payment.StatusRefunded, p.Status())
	})

	t.Run("pending cannot refund", func(t *testing.T) {
		p := validPayment(t)

		var conflictErr *errs.ConflictError
		require.ErrorAs(t, p.Refund(), &conflictErr)
		assert.Equal(t, errs.ReasonInvalidTransition, conflictErr.Reason)
	})

	t.Run("completed cannot complete again", func(t *testing.T) {
		p := validPayment(t)
		require.NoError(t, p.Complete())

		assert.Error(t, p.Complete())
	})
}
