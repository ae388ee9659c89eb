package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"artmarket/internal/core/application/usecases/commands"
	"artmarket/internal/core/domain/model/audit"
	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogOrderRepository struct{ mock.Mock }

func (m *MockCatalogOrderRepository) Add(ctx context.Context, aggregate *order.CatalogOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCatalogOrderRepository) Get(ctx context.Context, id int64) (*order.CatalogOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CatalogOrder), args.Error(1)
}

func (m *MockCatalogOrderRepository) UpdateDelivery(ctx context.Context, aggregate *order.CatalogOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockCommissionOrderRepository struct{ mock.Mock }

func (m *MockCommissionOrderRepository) Add(ctx context.Context, aggregate *order.CommissionOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCommissionOrderRepository) Get(ctx context.Context, id int64) (*order.CommissionOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CommissionOrder), args.Error(1)
}

func (m *MockCommissionOrderRepository) UpdateDelivery(ctx context.Context, aggregate *order.CommissionOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, record *audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockUoW satisfies both OrderUoW and AuditUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CatalogOrderRepository() ports.CatalogOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogOrderRepository)
}

func (m *MockUoW) CommissionOrderRepository() ports.CommissionOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.CommissionOrderRepository)
}

func (m *MockUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAuditUoWFactory struct{ mock.Mock }

func (m *MockAuditUoWFactory) Create() commands.AuditUoW {
	args := m.Called()
	return args.Get(0).(commands.AuditUoW)
}

type MockPartnerDirectory struct{ mock.Mock }

func (m *MockPartnerDirectory) PartnerExists(ctx context.Context, partnerID int64) (bool, error) {
	args := m.Called(ctx, partnerID)
	return args.Bool(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event ports.DeliveryStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// catalogOrderInStatus builds a restored single-item catalog order whose
// delivery sits in the given status.
func catalogOrderInStatus(
	t *testing.T,
	id int64,
	artistID int64,
	buyerID int64,
	status order.DeliveryStatus,
	fee *kernel.Money,
	partnerID *int64,
) *order.CatalogOrder {
	t.Helper()

	price, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	item, err := order.NewOrderItem(900, artistID, 1, price)
	require.NoError(t, err)
	address, err := kernel.NewAddress("12 Gallery Row", "Portland", "OR", "97201")
	require.NoError(t, err)
	delivery, err := order.RestoreDelivery(status, fee, partnerID)
	require.NoError(t, err)

	aggregate, err := order.RestoreCatalogOrder(
		id, buyerID, []order.OrderItem{item}, price, address,
		time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC), delivery)
	require.NoError(t, err)

	return aggregate
}

func catalogRef(t *testing.T, id int64) kernel.OrderRef {
	t.Helper()

	ref, err := kernel.NewOrderRef(id, kernel.CatalogOrder)
	require.NoError(t, err)
	return ref
}

func feeOf(t *testing.T, cents int64) kernel.Money {
	t.Helper()

	fee, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return fee
}
