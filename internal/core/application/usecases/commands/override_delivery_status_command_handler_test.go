package commands_test

import (
	"context"

	"testing"

	"artmarket/internal/core/application/usecases/commands"
	"artmarket/internal/core/domain/model/audit"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/core/ports"
	"artmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOverrideDeliveryStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	admin := services.Actor{ID: 1, Role: services.RoleAdmin}
	cmd, err := commands.NewOverrideDeliveryStatusCommand(
		admin, catalogRef(t, 101), order.Pending, nil, "partner withdrew, re-listing job")
	require.NoError(t, err)

	// Accepted order forced back to Pending; the assignment is cleared.
	fee := feeOf(t, 1550)
	partnerID := int64(31)
	aggregate := catalogOrderInStatus(t, 101, 7, 55, order.Accepted, &fee, &partnerID)

	orderRepo := new(MockCatalogOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(101)).Return(aggregate, nil).Once(),
		uow.On("CatalogOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateDelivery", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *audit.Record) bool {
			return r.ActorID() == admin.ID &&
				r.FromStatus() == order.Accepted &&
				r.ToStatus() == order.Pending &&
				r.Reason() == "partner withdrew, re-listing job"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAuditUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishStatusChanged", mock.Anything, mock.MatchedBy(func(e ports.DeliveryStatusChanged) bool {
		return e.Override && e.To == order.Pending
	})).Return(nil).Once()

	h := commands.NewOverrideDeliveryStatusCommandHandler(factory, publisher, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Pending, aggregate.Delivery().Status())
	assert.Nil(t, aggregate.Delivery().PartnerID())
	assert.Nil(t, aggregate.Delivery().Fee())
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestOverrideDeliveryStatusCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := context.Background()
	artist := services.Actor{ID: 7, Role: services.RoleArtist}
	cmd, err := commands.NewOverrideDeliveryStatusCommand(
		artist, catalogRef(t, 101), order.Pending, nil, "trying to be helpful")
	require.NoError(t, err)

	fee := feeOf(t, 1550)
	partnerID := int64(31)
	accepted := catalogOrderInStatus(t, 101, artist.ID, 55, order.Accepted, &fee, &partnerID)

	orderRepo := new(MockCatalogOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(101)).Return(accepted, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAuditUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOverrideDeliveryStatusCommandHandler(factory, new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.Accepted, accepted.Delivery().Status())
	uow.AssertExpectations(t)
}

func TestOverrideDeliveryStatusCommandHandler_Handle_AuditWriteFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	admin := services.Actor{ID: 1, Role: services.RoleAdmin}
	cmd, err := commands.NewOverrideDeliveryStatusCommand(
		admin, catalogRef(t, 101), order.Pending, nil, "support ticket 4821")
	require.NoError(t, err)

	fee := feeOf(t, 1550)
	partnerID := int64(31)
	aggregate := catalogOrderInStatus(t, 101, 7, 55, order.Accepted, &fee, &partnerID)

	orderRepo := new(MockCatalogOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, int64(101)).Return(aggregate, nil).Once(),
		uow.On("CatalogOrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateDelivery", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.Anything).Return(assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAuditUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOverrideDeliveryStatusCommandHandler(factory, new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, assert.AnError)
	uow.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}
