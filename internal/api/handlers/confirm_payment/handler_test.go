package confirm_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	confirmPayment "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_payment"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
	return m.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRouter(uc ConfirmPaymentUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings/{bookingId}/confirm", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, username, bookingID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingID+"/confirm", nil)
	if username != "" {
		req.Header.Set(middleware.HeaderUserID, username)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Confirmed(t *testing.T) {
	start := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	router := newTestRouter(&mockUseCase{
		executeFn: func(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
			assert.Equal(t, "user1", req.Username)
			assert.Equal(t, "BK-20260902-0001", req.BookingID)
			return &confirmPayment.Response{
				ID:            req.BookingID,
				Username:      req.Username,
				Sport:         "badminton",
				CourtID:       "B01",
				Start:         start,
				End:           start.Add(time.Hour),
				DurationSlots: 2,
				PriceUSD:      10.0,
				Status:        "PAID",
				BalanceUSD:    90.0,
			}, nil
		},
	})

	rec := doRequest(t, router, "user1", "BK-20260902-0001")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PAID", resp.Status)
	assert.Equal(t, 90.0, resp.BalanceUSD)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	router := newTestRouter(&mockUseCase{})

	rec := doRequest(t, router, "", "BK-20260902-0001")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"account not found", confirmPayment.ErrAccountNotFound, http.StatusNotFound},
		{"booking not found", confirmPayment.ErrBookingNotFound, http.StatusNotFound},
		{"hold expired", confirmPayment.ErrHoldExpired, http.StatusGone},
		{"insufficient funds", confirmPayment.ErrInsufficientFunds, http.StatusPaymentRequired},
		{"payment failed", confirmPayment.ErrPaymentFailed, http.StatusPaymentRequired},
		{"internal", confirmPayment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&mockUseCase{
				executeFn: func(ctx context.Context, req *confirmPayment.Request) (*confirmPayment.Response, error) {
					return nil, tc.useCaseErr
				},
			})

			rec := doRequest(t, router, "user1", "BK-20260902-0001")
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
