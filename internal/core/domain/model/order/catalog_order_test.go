package order_test

import (
	"testing"
	"time"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("12 Gallery Lane", "Portland", "OR", "97201")
	require.NoError(t, err)
	return addr
}

func mustItem(t *testing.T, artworkID, artistID int64) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(artworkID, artistID, 1, mustMoney(t, 5000))
	require.NoError(t, err)
	return item
}

func newTestCatalogOrder(t *testing.T, id int64, artistIDs ...int64) *order.CatalogOrder {
	t.Helper()
	items := make([]order.OrderItem, 0, len(artistIDs))
	for i, artistID := range artistIDs {
		items = append(items, mustItem(t, int64(i+1), artistID))
	}

	o, err := order.NewCatalogOrder(
		id, 200, items, mustMoney(t, 5000*int64(len(items))), mustAddress(t), time.Now(), false)
	require.NoError(t, err)
	return o
}

func TestNewOrderItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewOrderItem(1, 10, 2, mustMoney(t, 5000))

		require.NoError(t, err)
		assert.Equal(t, int64(1), item.ArtworkID())
		assert.Equal(t, int64(10), item.ArtistID())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(5000), item.UnitPrice().Cents())
	})

	t.Run("should reject non-positive ids", func(t *testing.T) {
		_, err := order.NewOrderItem(0, 10, 1, mustMoney(t, 5000))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewOrderItem(1, 0, 1, mustMoney(t, 5000))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject quantity below one", func(t *testing.T) {
		_, err := order.NewOrderItem(1, 10, 0, mustMoney(t, 5000))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject unconstructed unit price", func(t *testing.T) {
		_, err := order.NewOrderItem(1, 10, 1, kernel.Money{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewCatalogOrder(t *testing.T) {
	t.Run("should start at NotApplicable without delivery request", func(t *testing.T) {
		o := newTestCatalogOrder(t, 101, 10)

		assert.Equal(t, order.NotApplicable, o.Delivery().Status())
		assert.Equal(t, kernel.CatalogOrder, o.Ref().Kind())
		assert.Equal(t, int64(101), o.Ref().ID())
	})

	t.Run("should start at Pending when delivery requested at creation", func(t *testing.T) {
		items := []order.OrderItem{mustItem(t, 1, 10)}

		o, err := order.NewCatalogOrder(101, 200, items, mustMoney(t, 5000), mustAddress(t), time.Now(), true)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Delivery().Status())
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := order.NewCatalogOrder(101, 200, nil, mustMoney(t, 0), mustAddress(t), time.Now(), false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive ids", func(t *testing.T) {
		items := []order.OrderItem{mustItem(t, 1, 10)}

		_, err := order.NewCatalogOrder(0, 200, items, mustMoney(t, 5000), mustAddress(t), time.Now(), false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewCatalogOrder(101, 0, items, mustMoney(t, 5000), mustAddress(t), time.Now(), false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed shipping address", func(t *testing.T) {
		items := []order.OrderItem{mustItem(t, 1, 10)}

		_, err := order.NewCatalogOrder(101, 200, items, mustMoney(t, 5000), kernel.Address{}, time.Now(), false)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCatalogOrder_Ownership(t *testing.T) {
	t.Run("any item-owning artist owns the order", func(t *testing.T) {
		o := newTestCatalogOrder(t, 101, 10, 11)

		assert.True(t, o.OwnedByArtist(10))
		assert.True(t, o.OwnedByArtist(11))
		assert.False(t, o.OwnedByArtist(12))
	})

	t.Run("pickup artist is the first item's artist", func(t *testing.T) {
		o := newTestCatalogOrder(t, 101, 10, 11)

		assert.Equal(t, int64(10), o.PickupArtistID())
	})

	t.Run("artist ids are distinct and ordered", func(t *testing.T) {
		o := newTestCatalogOrder(t, 101, 10, 11, 10)

		assert.Equal(t, []int64{10, 11}, o.ArtistIDs())
	})
}

func TestCatalogOrder_DeliveryTransitions(t *testing.T) {
	t.Run("request then accept then dispatch then deliver", func(t *testing.T) {
		o := newTestCatalogOrder(t, 101, 10)

		require.NoError(t, o.RequestDelivery())
		assert.Equal(t, order.Pending, o.Delivery().Status())

		require.NoError(t, o.AcceptDelivery(mustMoney(t, 1500), 7))
		assert.Equal(t, order.Accepted, o.Delivery().Status())
		require.NotNil(t, o.Delivery().Fee())
		require.NotNil(t, o.Delivery().PartnerID())

		require.NoError(t, o.MarkOutForDelivery())
		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Delivery().Status())
	})

	t.Run("loaded status stays at restore-time value across transitions", func(t *testing.T) {
		o := newTestCatalogOrder(t, 101, 10)
		assert.Equal(t, order.NotApplicable, o.LoadedDeliveryStatus())

		require.NoError(t, o.RequestDelivery())

		assert.Equal(t, order.NotApplicable, o.LoadedDeliveryStatus())
		assert.Equal(t, order.Pending, o.Delivery().Status())
	})

	t.Run("failed transition leaves delivery untouched", func(t *testing.T) {
		o := newTestCatalogOrder(t, 101, 10)

		err := o.MarkDelivered()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.NotApplicable, o.Delivery().Status())
		assert.Nil(t, o.Delivery().Fee())
		assert.Nil(t, o.Delivery().PartnerID())
	})
}

func TestCatalogOrder_Validate(t *testing.T) {
	t.Run("nil and zero values fail validation", func(t *testing.T) {
		var o *order.CatalogOrder
		require.Error(t, o.Validate())

		require.Error(t, (&order.CatalogOrder{}).Validate())
	})
}
