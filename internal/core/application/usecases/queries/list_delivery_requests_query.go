package queries

import (
	"errors"
	"fmt"
	"time"

	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

var ErrListDeliveryRequestsQueryIsNotConstructed = errors.New(
	"ListDeliveryRequestsQuery must be created via NewListDeliveryRequestsQuery constructor",
)

// StatusBucket groups delivery statuses into the three dashboard views.
type StatusBucket int

const (
	// UnknownBucket represents an invalid or undefined bucket.
	UnknownBucket StatusBucket = iota

	// BucketPending holds orders waiting for a partner (status Pending).
	BucketPending

	// BucketActive holds orders in transit (statuses Accepted and
	// OutForDelivery).
	BucketActive

	// BucketDelivered holds completed deliveries (status Delivered).
	BucketDelivered
)

// ParseStatusBucket converts a path segment to a StatusBucket.
func ParseStatusBucket(s string) (StatusBucket, error) {
	switch s {
	case "pending":
		return BucketPending, nil
	case "active":
		return BucketActive, nil
	case "delivered":
		return BucketDelivered, nil
	default:
		return UnknownBucket, errs.NewValueIsInvalidErrorWithCause("statusBucket",
			fmt.Errorf("%q is not a valid status bucket", s))
	}
}

// Validate checks if the StatusBucket value is valid.
func (b StatusBucket) Validate() error {
	switch b {
	case BucketPending, BucketActive, BucketDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("statusBucket",
			fmt.Errorf("%d is not a valid status bucket", b))
	}
}

// String returns the path segment name of the bucket. Implements fmt.Stringer.
func (b StatusBucket) String() string {
	switch b {
	case BucketPending:
		return "pending"
	case BucketActive:
		return "active"
	case BucketDelivered:
		return "delivered"
	default:
		return "unknown"
	}
}

// Statuses returns the delivery statuses the bucket covers.
func (b StatusBucket) Statuses() []order.DeliveryStatus {
	switch b {
	case BucketPending:
		return []order.DeliveryStatus{order.Pending}
	case BucketActive:
		return []order.DeliveryStatus{order.Accepted, order.OutForDelivery}
	case BucketDelivered:
		return []order.DeliveryStatus{order.Delivered}
	default:
		return nil
	}
}

// ListDeliveryRequestsQuery is the Request Aggregator input: a status bucket
// plus optional artist, buyer, and partner filters. Results merge both order
// kinds into one shape tagged with the kind.
//
// Example:
//
//	artistID := int64(7)
//	query, err := NewListDeliveryRequestsQuery(BucketPending, &artistID, nil, nil)
//	if err != nil {
//	    return err
//	}
//	requests, err := handler.Handle(ctx, query)
type ListDeliveryRequestsQuery struct { //nolint:recvcheck //using for validation
	bucket    StatusBucket
	artistID  *int64
	buyerID   *int64
	partnerID *int64

	guard guard.ConstructorGuard
}

// NewListDeliveryRequestsQuery creates an aggregator query. Filters are
// optional; nil means unfiltered on that dimension.
func NewListDeliveryRequestsQuery(
	bucket StatusBucket,
	artistID *int64,
	buyerID *int64,
	partnerID *int64,
) (ListDeliveryRequestsQuery, error) {
	query := ListDeliveryRequestsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setBucket(bucket),
		query.setFilter("artistId", &query.artistID, artistID),
		query.setFilter("buyerId", &query.buyerID, buyerID),
		query.setFilter("partnerId", &query.partnerID, partnerID),
	); err != nil {
		return ListDeliveryRequestsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDeliveryRequestsQueryIsNotConstructed if validation fails.
func (q ListDeliveryRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveryRequestsQueryIsNotConstructed)
}

// Bucket returns the requested status bucket.
func (q ListDeliveryRequestsQuery) Bucket() StatusBucket {
	return q.bucket
}

// ArtistID returns the optional artist filter.
func (q ListDeliveryRequestsQuery) ArtistID() *int64 {
	return q.artistID
}

// BuyerID returns the optional buyer filter.
func (q ListDeliveryRequestsQuery) BuyerID() *int64 {
	return q.buyerID
}

// PartnerID returns the optional assigned-partner filter.
func (q ListDeliveryRequestsQuery) PartnerID() *int64 {
	return q.partnerID
}

func (q *ListDeliveryRequestsQuery) setBucket(bucket StatusBucket) error {
	if err := bucket.Validate(); err != nil {
		return err
	}

	q.bucket = bucket
	return nil
}

func (q *ListDeliveryRequestsQuery) setFilter(paramName string, target **int64, value *int64) error {
	if value != nil && *value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%d is not a positive id", *value))
	}

	*target = value
	return nil
}

// DeliveryRequestResponse is one row of the aggregated view, uniform across
// both order kinds.
type DeliveryRequestResponse struct {
	OrderID           int64
	OrderKind         string
	Status            string
	BuyerID           int64
	ArtistID          int64
	ShippingFeeCents  *int64
	DeliveryPartnerID *int64
	TotalAmountCents  int64
	CreatedAt         time.Time
}
