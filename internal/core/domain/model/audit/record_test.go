package audit_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artmarket/internal/core/domain/model/audit"
	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/pkg/errs"
)

func testRef(t *testing.T) kernel.OrderRef {
	t.Helper()
	ref, err := kernel.NewOrderRef(101, kernel.CatalogOrder)
	require.NoError(t, err)
	return ref
}

func TestNewRecord(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fee, err := kernel.NewMoney(1550)
	require.NoError(t, err)

	record, err := audit.NewRecord(1, testRef(t), order.Delivered, order.Pending, &fee,
		"partner lost the package", createdAt)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, record.ID())
	assert.Equal(t, int64(1), record.ActorID())
	assert.Equal(t, order.Delivered, record.FromStatus())
	assert.Equal(t, order.Pending, record.ToStatus())
	assert.Equal(t, &fee, record.Fee())
	assert.Equal(t, "partner lost the package", record.Reason())
	assert.Equal(t, createdAt, record.CreatedAt())
	assert.NoError(t, record.Validate())
}

func TestNewRecord_Invalid(t *testing.T) {
	createdAt := time.Now().UTC()

	t.Run("NonPositiveActor", func(t *testing.T) {
		_, err := audit.NewRecord(0, testRef(t), order.Delivered, order.Pending, nil, "reason", createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("InvalidOrderRef", func(t *testing.T) {
		_, err := audit.NewRecord(1, kernel.OrderRef{}, order.Delivered, order.Pending, nil, "reason", createdAt)
		require.Error(t, err)
	})

	t.Run("InvalidFromStatus", func(t *testing.T) {
		_, err := audit.NewRecord(1, testRef(t), order.UnknownStatus, order.Pending, nil, "reason", createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("EmptyReason", func(t *testing.T) {
		_, err := audit.NewRecord(1, testRef(t), order.Delivered, order.Pending, nil, "", createdAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreRecord_KeepsIdentity(t *testing.T) {
	id := uuid.New()

	record, err := audit.RestoreRecord(id, 1, testRef(t), order.Accepted, order.Pending, nil,
		"partner withdrew", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, id, record.ID())
}

func TestRecord_Validate_ZeroValue(t *testing.T) {
	var record audit.Record
	require.ErrorIs(t, record.Validate(), audit.ErrRecordIsNotConstructed)
}
