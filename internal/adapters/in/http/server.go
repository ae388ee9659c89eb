// Package http exposes the delivery lifecycle over REST. All routes except
// /health require a bearer token resolved through the identity service.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"artmarket/internal/core/application/usecases/commands"
	"artmarket/internal/core/application/usecases/queries"
	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
	"artmarket/internal/core/ports"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestDeliveryHandler commands.RequestDeliveryCommandHandler
	acceptDeliveryHandler  commands.AcceptDeliveryCommandHandler
	outForDeliveryHandler  commands.MarkOutForDeliveryCommandHandler
	markDeliveredHandler   commands.MarkDeliveredCommandHandler
	overrideStatusHandler  commands.OverrideDeliveryStatusCommandHandler

	// Query handlers
	getDeliveryInfoHandler      queries.GetDeliveryInfoQueryHandler
	listDeliveryRequestsHandler queries.ListDeliveryRequestsQueryHandler

	verifier ports.IdentityVerifier
	logger   *slog.Logger
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	requestDeliveryHandler commands.RequestDeliveryCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	outForDeliveryHandler commands.MarkOutForDeliveryCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	overrideStatusHandler commands.OverrideDeliveryStatusCommandHandler,
	getDeliveryInfoHandler queries.GetDeliveryInfoQueryHandler,
	listDeliveryRequestsHandler queries.ListDeliveryRequestsQueryHandler,
	verifier ports.IdentityVerifier,
	logger *slog.Logger,
) *Server {
	return &Server{
		requestDeliveryHandler:      requestDeliveryHandler,
		acceptDeliveryHandler:       acceptDeliveryHandler,
		outForDeliveryHandler:       outForDeliveryHandler,
		markDeliveredHandler:        markDeliveredHandler,
		overrideStatusHandler:       overrideStatusHandler,
		getDeliveryInfoHandler:      getDeliveryInfoHandler,
		listDeliveryRequestsHandler: listDeliveryRequestsHandler,
		verifier:                    verifier,
		logger:                      logger.With("component", "HTTPServer"),
	}
}

// RegisterRoutes wires all delivery routes into e. Static bucket routes are
// registered before the parameterized order routes so /delivery/pending never
// resolves as an order kind.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = newRequestValidator()

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	authed := e.Group("", bearerAuth(s.verifier, s.logger))

	authed.GET("/delivery/pending", s.listBucket(queries.BucketPending))
	authed.GET("/delivery/active", s.listBucket(queries.BucketActive))
	authed.GET("/delivery/delivered", s.listBucket(queries.BucketDelivered))

	authed.POST("/delivery/accept", s.AcceptDelivery)
	authed.PUT("/delivery/:orderKind/:orderId/out-for-delivery", s.MarkOutForDelivery)
	authed.PUT("/delivery/:orderKind/:orderId/delivered", s.MarkDelivered)
	authed.GET("/delivery/:orderKind/:orderId", s.GetDeliveryInfo)

	authed.POST("/artist/artwork-orders/:orderId/request-delivery", s.requestDeliveryFor(kernel.CatalogOrder))
	authed.POST("/artist/commission-orders/:orderId/request-delivery", s.requestDeliveryFor(kernel.CommissionOrder))

	authed.POST("/admin/delivery/:orderKind/:orderId/override", s.OverrideDeliveryStatus)
}

// AcceptDelivery handles POST /delivery/accept - a partner takes a pending
// delivery job, capturing the shipping fee and its assignment in one step.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	var request acceptDeliveryRequest
	if !s.bindAndValidate(ctx, &request) {
		return nil
	}

	actor := actorFrom(ctx)
	if request.DeliveryPartnerID != 0 && request.DeliveryPartnerID != actor.ID {
		return ctx.JSON(http.StatusForbidden, envelope{
			Success: false,
			Message: "deliveryPartnerId does not match the authenticated partner",
		})
	}

	kind, err := kernel.ParseOrderKind(request.OrderKind)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	ref, err := kernel.NewOrderRef(request.OrderID, kind)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	fee, err := kernel.NewMoney(request.ShippingFee)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(actor, ref, fee)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, acceptDeliveryResponse{
		Success:     true,
		OrderID:     ref.ID(),
		OrderKind:   ref.Kind().String(),
		ShippingFee: request.ShippingFee,
	})
}

// requestDeliveryFor builds the artist-facing request-delivery handler for one
// order kind.
func (s *Server) requestDeliveryFor(kind kernel.OrderKind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ref, err := orderRefForKind(ctx, kind)
		if err != nil {
			return respondError(ctx, s.logger, err)
		}

		cmd, err := commands.NewRequestDeliveryCommand(actorFrom(ctx), ref)
		if err != nil {
			return respondError(ctx, s.logger, err)
		}
		if err := s.requestDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, s.logger, err)
		}

		return ctx.JSON(http.StatusOK, envelope{Success: true})
	}
}

// MarkOutForDelivery handles PUT /delivery/:orderKind/:orderId/out-for-delivery.
func (s *Server) MarkOutForDelivery(ctx echo.Context) error {
	ref, err := orderRefFromPath(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewMarkOutForDeliveryCommand(actorFrom(ctx), ref)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err := s.outForDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true})
}

// MarkDelivered handles PUT /delivery/:orderKind/:orderId/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	ref, err := orderRefFromPath(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(actorFrom(ctx), ref)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true})
}

// OverrideDeliveryStatus handles the audited admin correction endpoint.
func (s *Server) OverrideDeliveryStatus(ctx echo.Context) error {
	ref, err := orderRefFromPath(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var request overrideDeliveryStatusRequest
	if !s.bindAndValidate(ctx, &request) {
		return nil
	}

	newStatus, err := order.ParseDeliveryStatus(request.NewStatus)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	var fee *kernel.Money
	if request.ShippingFee != nil {
		money, feeErr := kernel.NewMoney(*request.ShippingFee)
		if feeErr != nil {
			return respondError(ctx, s.logger, feeErr)
		}
		fee = &money
	}

	cmd, err := commands.NewOverrideDeliveryStatusCommand(actorFrom(ctx), ref, newStatus, fee, request.Reason)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}
	if err := s.overrideStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true})
}

// GetDeliveryInfo handles GET /delivery/:orderKind/:orderId.
func (s *Server) GetDeliveryInfo(ctx echo.Context) error {
	ref, err := orderRefFromPath(ctx)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	query, err := queries.NewGetDeliveryInfoQuery(actorFrom(ctx), ref)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	response, err := s.getDeliveryInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toOrderDeliveryView(response)})
}

// listBucket builds the aggregated view handler for one status bucket.
func (s *Server) listBucket(bucket queries.StatusBucket) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		artistID, err := optionalIDParam(ctx, "artistId")
		if err != nil {
			return respondError(ctx, s.logger, err)
		}
		buyerID, err := optionalIDParam(ctx, "buyerId")
		if err != nil {
			return respondError(ctx, s.logger, err)
		}
		partnerID, err := optionalIDParam(ctx, "partnerId")
		if err != nil {
			return respondError(ctx, s.logger, err)
		}

		query, err := queries.NewListDeliveryRequestsQuery(bucket, artistID, buyerID, partnerID)
		if err != nil {
			return respondError(ctx, s.logger, err)
		}

		requests, err := s.listDeliveryRequestsHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, s.logger, err)
		}

		return ctx.JSON(http.StatusOK, envelope{Success: true, Data: toDeliveryRequestViews(requests)})
	}
}

// bindAndValidate binds the request body into target and validates it. On
// failure it writes a 400 envelope and returns false.
func (s *Server) bindAndValidate(ctx echo.Context, target any) bool {
	if err := ctx.Bind(target); err != nil {
		_ = ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: "invalid request body",
		})
		return false
	}
	if err := ctx.Validate(target); err != nil {
		_ = ctx.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: validationMessage(err),
		})
		return false
	}
	return true
}

func validationMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("%v", httpErr.Message)
	}
	return err.Error()
}
