package order_test

import (
	"testing"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create NotApplicable delivery", func(t *testing.T) {
		d, err := order.NewDelivery(order.NotApplicable)

		require.NoError(t, err)
		assert.Equal(t, order.NotApplicable, d.Status())
		assert.Nil(t, d.Fee())
		assert.Nil(t, d.PartnerID())
	})

	t.Run("should create Pending delivery", func(t *testing.T) {
		d, err := order.NewDelivery(order.Pending)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, d.Status())
	})

	t.Run("should reject statuses that require an assignment", func(t *testing.T) {
		for _, status := range []order.DeliveryStatus{order.Accepted, order.OutForDelivery, order.Delivered} {
			_, err := order.NewDelivery(status)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "status %s", status)
		}
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.NewDelivery(order.UnknownStatus)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore accepted delivery with fee and partner", func(t *testing.T) {
		fee := mustMoney(t, 1500)
		partnerID := int64(7)

		d, err := order.RestoreDelivery(order.Accepted, &fee, &partnerID)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, d.Status())
		require.NotNil(t, d.Fee())
		assert.Equal(t, int64(1500), d.Fee().Cents())
		require.NotNil(t, d.PartnerID())
		assert.Equal(t, int64(7), *d.PartnerID())
	})

	t.Run("should reject fee without partner", func(t *testing.T) {
		fee := mustMoney(t, 1500)

		_, err := order.RestoreDelivery(order.Accepted, &fee, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject partner without fee", func(t *testing.T) {
		partnerID := int64(7)

		_, err := order.RestoreDelivery(order.Accepted, nil, &partnerID)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject assignment on pending delivery", func(t *testing.T) {
		fee := mustMoney(t, 1500)
		partnerID := int64(7)

		_, err := order.RestoreDelivery(order.Pending, &fee, &partnerID)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject accepted delivery without assignment", func(t *testing.T) {
		_, err := order.RestoreDelivery(order.Accepted, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_Accept(t *testing.T) {
	t.Run("should set status fee and partner atomically", func(t *testing.T) {
		d, _ := order.NewDelivery(order.Pending)

		accepted, err := d.Accept(mustMoney(t, 1500), 7)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, accepted.Status())
		require.NotNil(t, accepted.Fee())
		assert.Equal(t, int64(1500), accepted.Fee().Cents())
		require.NotNil(t, accepted.PartnerID())
		assert.Equal(t, int64(7), *accepted.PartnerID())
	})

	t.Run("failed accept leaves original delivery unchanged", func(t *testing.T) {
		d, _ := order.NewDelivery(order.NotApplicable)

		_, err := d.Accept(mustMoney(t, 1500), 7)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.NotApplicable, d.Status())
		assert.Nil(t, d.Fee())
		assert.Nil(t, d.PartnerID())
	})

	t.Run("should reject unconstructed fee", func(t *testing.T) {
		d, _ := order.NewDelivery(order.Pending)

		_, err := d.Accept(kernel.Money{}, 7)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive partner id", func(t *testing.T) {
		d, _ := order.NewDelivery(order.Pending)

		_, err := d.Accept(mustMoney(t, 1500), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_FullLifecycle(t *testing.T) {
	d, err := order.NewDelivery(order.NotApplicable)
	require.NoError(t, err)

	d, err = d.Request()
	require.NoError(t, err)
	assert.Equal(t, order.Pending, d.Status())

	d, err = d.Accept(mustMoney(t, 2000), 3)
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, d.Status())

	d, err = d.Dispatch()
	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, d.Status())
	require.NotNil(t, d.Fee(), "fee survives dispatch")
	require.NotNil(t, d.PartnerID(), "partner survives dispatch")

	d, err = d.Complete()
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, d.Status())

	// Terminal: nothing else is allowed.
	_, err = d.Accept(mustMoney(t, 100), 9)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	_, err = d.Request()
	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestDelivery_Override(t *testing.T) {
	t.Run("override backwards clears fee and partner", func(t *testing.T) {
		fee := mustMoney(t, 1500)
		partnerID := int64(7)
		d, _ := order.RestoreDelivery(order.Delivered, &fee, &partnerID)

		overridden, err := d.Override(order.Pending, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, overridden.Status())
		assert.Nil(t, overridden.Fee())
		assert.Nil(t, overridden.PartnerID())
	})

	t.Run("override forward keeps existing assignment", func(t *testing.T) {
		fee := mustMoney(t, 1500)
		partnerID := int64(7)
		d, _ := order.RestoreDelivery(order.Accepted, &fee, &partnerID)

		overridden, err := d.Override(order.Delivered, nil)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, overridden.Status())
		require.NotNil(t, overridden.Fee())
		assert.Equal(t, int64(1500), overridden.Fee().Cents())
		require.NotNil(t, overridden.PartnerID())
	})

	t.Run("override may correct the fee", func(t *testing.T) {
		fee := mustMoney(t, 1500)
		partnerID := int64(7)
		d, _ := order.RestoreDelivery(order.Accepted, &fee, &partnerID)

		corrected := mustMoney(t, 900)
		overridden, err := d.Override(order.Accepted, &corrected)

		require.NoError(t, err)
		assert.Equal(t, int64(900), overridden.Fee().Cents())
	})

	t.Run("override to assigned status without partner fails", func(t *testing.T) {
		d, _ := order.NewDelivery(order.Pending)

		_, err := d.Override(order.Delivered, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("override rejects invalid status", func(t *testing.T) {
		d, _ := order.NewDelivery(order.Pending)

		_, err := d.Override(order.UnknownStatus, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var d order.Delivery

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrDeliveryIsNotConstructed, err)
	})
}
