package queries_test

import (
	"testing"

	"artmarket/internal/core/application/usecases/queries"
	"artmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusBucket(t *testing.T) {
	tests := []struct {
		input  string
		bucket queries.StatusBucket
	}{
		{"pending", queries.BucketPending},
		{"active", queries.BucketActive},
		{"delivered", queries.BucketDelivered},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bucket, err := queries.ParseStatusBucket(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.input, bucket.String())
		})
	}

	t.Run("invalid segment", func(t *testing.T) {
		_, err := queries.ParseStatusBucket("completed")
		require.Error(t, err)
	})
}

func TestStatusBucket_Statuses(t *testing.T) {
	assert.Equal(t, []order.DeliveryStatus{order.Pending}, queries.BucketPending.Statuses())
	assert.Equal(t, []order.DeliveryStatus{order.Accepted, order.OutForDelivery}, queries.BucketActive.Statuses())
	assert.Equal(t, []order.DeliveryStatus{order.Delivered}, queries.BucketDelivered.Statuses())
}

func TestNewListDeliveryRequestsQuery(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		query, err := queries.NewListDeliveryRequestsQuery(queries.BucketPending, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, queries.BucketPending, query.Bucket())
		assert.Nil(t, query.ArtistID())
		assert.Nil(t, query.BuyerID())
		assert.Nil(t, query.PartnerID())
		assert.NoError(t, query.Validate())
	})

	t.Run("with filters", func(t *testing.T) {
		artistID := int64(7)
		partnerID := int64(31)
		query, err := queries.NewListDeliveryRequestsQuery(queries.BucketActive, &artistID, nil, &partnerID)
		require.NoError(t, err)
		require.NotNil(t, query.ArtistID())
		assert.Equal(t, artistID, *query.ArtistID())
		require.NotNil(t, query.PartnerID())
		assert.Equal(t, partnerID, *query.PartnerID())
	})

	t.Run("invalid bucket", func(t *testing.T) {
		_, err := queries.NewListDeliveryRequestsQuery(queries.UnknownBucket, nil, nil, nil)
		require.Error(t, err)
	})

	t.Run("non-positive filter", func(t *testing.T) {
		buyerID := int64(0)
		_, err := queries.NewListDeliveryRequestsQuery(queries.BucketPending, nil, &buyerID, nil)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var query queries.ListDeliveryRequestsQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrListDeliveryRequestsQueryIsNotConstructed)
	})
}
