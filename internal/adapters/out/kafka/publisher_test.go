package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/core/ports"
)

func TestToEnvelope(t *testing.T) {
	partnerID := int64(31)
	feeCents := int64(1550)
	occurredAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	envelope := toEnvelope(ports.DeliveryStatusChanged{
		OrderID:    101,
		OrderKind:  kernel.CatalogOrder,
		From:       order.Pending,
		To:         order.Accepted,
		PartnerID:  &partnerID,
		FeeCents:   &feeCents,
		Override:   false,
		OccurredAt: occurredAt,
	})

	assert.Equal(t, "delivery.status-changed", envelope.EventType)
	assert.Equal(t, int64(101), envelope.OrderID)
	assert.Equal(t, "catalog", envelope.OrderKind)
	assert.Equal(t, "Pending", envelope.FromStatus)
	assert.Equal(t, "Accepted", envelope.ToStatus)
	assert.Equal(t, &partnerID, envelope.DeliveryPartnerID)
	assert.Equal(t, &feeCents, envelope.ShippingFeeCents)
	assert.False(t, envelope.Override)
	assert.Equal(t, occurredAt, envelope.OccurredAt)
}

func TestToEnvelope_OmitsUnassignedFields(t *testing.T) {
	envelope := toEnvelope(ports.DeliveryStatusChanged{
		OrderID:    55,
		OrderKind:  kernel.CommissionOrder,
		From:       order.NotApplicable,
		To:         order.Pending,
		OccurredAt: time.Now().UTC(),
	})

	data, err := json.Marshal(envelope)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "deliveryPartnerId")
	assert.NotContains(t, string(data), "shippingFeeCents")
	assert.Contains(t, string(data), `"orderKind":"commission"`)
}

func TestRecordKey_StableProducesPerOrderOrdering(t *testing.T) {
	event := ports.DeliveryStatusChanged{OrderID: 101, OrderKind: kernel.CatalogOrder}

	assert.Equal(t, "catalog:101", recordKey(event))
	assert.Equal(t, recordKey(event), recordKey(event))

	other := ports.DeliveryStatusChanged{OrderID: 101, OrderKind: kernel.CommissionOrder}
	assert.NotEqual(t, recordKey(event), recordKey(other))
}
