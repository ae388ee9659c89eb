package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubVerifier resolves every token to a fixed actor, or fails with err.
type stubVerifier struct {
	actor services.Actor
	err   error
}

func (v stubVerifier) Verify(_ context.Context, _ string) (services.Actor, error) {
	return v.actor, v.err
}

func newTestContext(t *testing.T, method, target string, header http.Header) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = newRequestValidator()
	req := httptest.NewRequest(method, target, nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer abc123")
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	_, ok = bearerToken("")
	assert.False(t, ok)

	_, ok = bearerToken("Basic abc123")
	assert.False(t, ok)

	_, ok = bearerToken("Bearer ")
	assert.False(t, ok)
}

func TestBearerAuth_StoresActor(t *testing.T) {
	verifier := stubVerifier{actor: services.Actor{ID: 31, Role: services.RolePartner}}
	mw := bearerAuth(verifier, testLogger())

	var seen services.Actor
	next := func(ctx echo.Context) error {
		seen = actorFrom(ctx)
		return ctx.NoContent(http.StatusOK)
	}

	ctx, rec := newTestContext(t, http.MethodGet, "/delivery/pending",
		http.Header{"Authorization": {"Bearer valid"}})

	require.NoError(t, mw(next)(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(31), seen.ID)
	assert.Equal(t, services.RolePartner, seen.Role)
}

func TestBearerAuth_MissingToken(t *testing.T) {
	mw := bearerAuth(stubVerifier{}, testLogger())
	next := func(ctx echo.Context) error {
		t.Fatal("handler must not run without a token")
		return nil
	}

	ctx, rec := newTestContext(t, http.MethodGet, "/delivery/pending", nil)

	require.NoError(t, mw(next)(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestBearerAuth_RejectedToken(t *testing.T) {
	verifier := stubVerifier{err: errs.NewForbiddenError("verify identity")}
	mw := bearerAuth(verifier, testLogger())
	next := func(ctx echo.Context) error {
		t.Fatal("handler must not run with a rejected token")
		return nil
	}

	ctx, rec := newTestContext(t, http.MethodGet, "/delivery/pending",
		http.Header{"Authorization": {"Bearer expired"}})

	require.NoError(t, mw(next)(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerAuth_VerifierUnavailable(t *testing.T) {
	verifier := stubVerifier{err: stubError{}}
	mw := bearerAuth(verifier, testLogger())
	next := func(ctx echo.Context) error { return nil }

	ctx, rec := newTestContext(t, http.MethodGet, "/delivery/pending",
		http.Header{"Authorization": {"Bearer valid"}})

	require.NoError(t, mw(next)(ctx))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type stubError struct{}

func (stubError) Error() string { return "identity service down" }

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"NotFound", errs.NewObjectNotFoundError("catalogOrder", 101), http.StatusNotFound},
		{"Forbidden", errs.NewForbiddenError("acceptDelivery"), http.StatusForbidden},
		{"InvalidState", errs.NewInvalidStateError("acceptDelivery", "Delivered"), http.StatusBadRequest},
		{"InvalidValue", errs.NewValueIsInvalidError("orderKind"), http.StatusBadRequest},
		{"RequiredValue", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"Unexpected", stubError{}, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, http.MethodGet, "/", nil)

			require.NoError(t, respondError(ctx, testLogger(), test.err))
			assert.Equal(t, test.want, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}

func TestRespondError_InternalErrorIsOpaque(t *testing.T) {
	ctx, rec := newTestContext(t, http.MethodGet, "/", nil)

	require.NoError(t, respondError(ctx, testLogger(), stubError{}))
	assert.NotContains(t, rec.Body.String(), "identity service down")
	assert.Contains(t, rec.Body.String(), "internal error")
}

func TestOrderRefFromPath(t *testing.T) {
	ctx, _ := newTestContext(t, http.MethodGet, "/", nil)
	ctx.SetParamNames("orderKind", "orderId")
	ctx.SetParamValues("catalog", "101")

	ref, err := orderRefFromPath(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(101), ref.ID())
	assert.Equal(t, kernel.CatalogOrder, ref.Kind())
}

func TestOrderRefFromPath_InvalidKind(t *testing.T) {
	ctx, _ := newTestContext(t, http.MethodGet, "/", nil)
	ctx.SetParamNames("orderKind", "orderId")
	ctx.SetParamValues("warehouse", "101")

	_, err := orderRefFromPath(ctx)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrderRefFromPath_InvalidID(t *testing.T) {
	ctx, _ := newTestContext(t, http.MethodGet, "/", nil)
	ctx.SetParamNames("orderKind", "orderId")
	ctx.SetParamValues("commission", "abc")

	_, err := orderRefFromPath(ctx)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOptionalIDParam(t *testing.T) {
	ctx, _ := newTestContext(t, http.MethodGet, "/delivery/pending?artistId=7", nil)

	id, err := optionalIDParam(ctx, "artistId")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(7), *id)

	missing, err := optionalIDParam(ctx, "buyerId")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOptionalIDParam_Malformed(t *testing.T) {
	ctx, _ := newTestContext(t, http.MethodGet, "/delivery/pending?artistId=seven", nil)

	_, err := optionalIDParam(ctx, "artistId")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRequestValidator_AcceptDeliveryRequest(t *testing.T) {
	v := newRequestValidator()

	valid := acceptDeliveryRequest{OrderKind: "catalog", OrderID: 101, ShippingFee: 1550}
	assert.NoError(t, v.Validate(valid))

	missingKind := acceptDeliveryRequest{OrderID: 101, ShippingFee: 1550}
	assert.Error(t, v.Validate(missingKind))

	badKind := acceptDeliveryRequest{OrderKind: "warehouse", OrderID: 101}
	assert.Error(t, v.Validate(badKind))

	negativeFee := acceptDeliveryRequest{OrderKind: "catalog", OrderID: 101, ShippingFee: -1}
	assert.Error(t, v.Validate(negativeFee))
}

func TestRequestValidator_OverrideRequest(t *testing.T) {
	v := newRequestValidator()

	valid := overrideDeliveryStatusRequest{NewStatus: "Pending", Reason: "partner withdrew"}
	assert.NoError(t, v.Validate(valid))

	missingReason := overrideDeliveryStatusRequest{NewStatus: "Pending"}
	assert.Error(t, v.Validate(missingReason))
}
