package delivery_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const otpTTL = 10 * time.Minute

func validDelivery(t *testing.T, method order.PaymentMethod) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		method,
		decimal.NewFromInt(1500),
		time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts without a code", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)

		assert.Empty(t, d.OTPCode())
		assert.Nil(t, d.OTPGeneratedAt())
		assert.Nil(t, d.ArrivedAt())
		assert.False(t, d.IsCompleted())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), order.PaymentCash,
			decimal.NewFromInt(-1), time.Now())
		require.Error(t, err)
	})
}

func TestDeliveryArrive(t *testing.T) {
	t.Run("issues six digit code", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)

		code, err := d.Arrive(time.Now())

		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Equal(t, code, d.OTPCode())
		assert.NotNil(t, d.ArrivedAt())
	})

	t.Run("reissue invalidates previous code", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)
		now := time.Now()

		first, err := d.Arrive(now)
		require.NoError(t, err)
		second, err := d.Arrive(now.Add(time.Minute))
		require.NoError(t, err)

		if first != second {
			err = d.VerifyCode(first, now.Add(2*time.Minute), otpTTL)
			require.ErrorIs(t, err, delivery.ErrInvalidOTP)
		}
		require.NoError(t, d.VerifyCode(second, now.Add(2*time.Minute), otpTTL))
	})

	t.Run("cannot arrive after completion", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)
		now := time.Now()
		code, err := d.Arrive(now)
		require.NoError(t, err)
		require.NoError(t, d.VerifyCode(code, now, otpTTL))

		_, err = d.Arrive(now.Add(time.Minute))

		require.ErrorIs(t, err, delivery.ErrOTPAlreadyConsumed)
	})
}

func TestDeliveryVerifyCode(t *testing.T) {
	t.Run("consumes a valid code", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)
		now := time.Now()
		code, err := d.Arrive(now)
		require.NoError(t, err)

		require.NoError(t, d.VerifyCode(code, now.Add(time.Minute), otpTTL))

		assert.True(t, d.OTPConsumed())
		assert.True(t, d.IsCompleted())
		assert.NotNil(t, d.CompletedAt())
	})

	t.Run("rejects verification before arrival", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)

		err := d.VerifyCode("123456", time.Now(), otpTTL)

		require.ErrorIs(t, err, delivery.ErrOTPNotIssued)
	})

	t.Run("rejects wrong code without consuming", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)
		now := time.Now()
		code, err := d.Arrive(now)
		require.NoError(t, err)

		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		err = d.VerifyCode(wrong, now, otpTTL)
		require.ErrorIs(t, err, delivery.ErrInvalidOTP)

		require.NoError(t, d.VerifyCode(code, now, otpTTL))
	})

	t.Run("rejects expired code", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)
		now := time.Now()
		code, err := d.Arrive(now)
		require.NoError(t, err)

		err = d.VerifyCode(code, now.Add(otpTTL+time.Second), otpTTL)

		require.ErrorIs(t, err, delivery.ErrExpiredOTP)
	})

	t.Run("rejects second use of the code", func(t *testing.T) {
		d := validDelivery(t, order.PaymentCash)
		now := time.Now()
		code, err := d.Arrive(now)
		require.NoError(t, err)
		require.NoError(t, d.VerifyCode(code, now, otpTTL))

		err = d.VerifyCode(code, now, otpTTL)

		require.ErrorIs(t, err, delivery.ErrOTPAlreadyConsumed)
	})
}

func TestDeliveryUnlocksPayment(t *testing.T) {
	assert.True(t, validDelivery(t, order.PaymentCash).UnlocksPayment())
	assert.True(t, validDelivery(t, order.PaymentUPI).UnlocksPayment())
	assert.False(t, validDelivery(t, order.PaymentPrepaid).UnlocksPayment())
}
