package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	accountsRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/accounts"
)

// --- Mocks ---

type mockLedger struct {
	userBookingsFn  func(username string) []*domain.Booking
	allBookingsFn   func() []*domain.Booking
	cancelPendingFn func(username, bookingID string) bool
	adminRemoveFn   func(bookingID string) bool
}

func (m *mockLedger) UserBookings(username string) []*domain.Booking {
	return m.userBookingsFn(username)
}
func (m *mockLedger) AllBookings() []*domain.Booking {
	return m.allBookingsFn()
}
func (m *mockLedger) CancelPending(username, bookingID string) bool {
	return m.cancelPendingFn(username, bookingID)
}
func (m *mockLedger) AdminRemove(bookingID string) bool {
	return m.adminRemoveFn(bookingID)
}

type mockAccounts struct {
	accounts map[string]*domain.Account
}

func (m *mockAccounts) Get(username string) (*domain.Account, error) {
	acc, ok := m.accounts[username]
	if !ok {
		return nil, accountsRepo.ErrAccountNotFound
	}
	return acc, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Fixtures ---

func testAccounts() *mockAccounts {
	return &mockAccounts{
		accounts: map[string]*domain.Account{
			"user1": {Username: "user1", Role: domain.RoleUser, BalanceUSD: 100.0},
			"user2": {Username: "user2", Role: domain.RoleUser, BalanceUSD: 100.0},
			"admin": {Username: "admin", Role: domain.RoleAdmin},
		},
	}
}

func sampleBooking(id, username string) *domain.Booking {
	expiresAt := time.Date(2026, 9, 1, 9, 5, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            id,
		Username:      username,
		Sport:         "badminton",
		CourtID:       "B01",
		Start:         time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		DurationSlots: 2,
		PriceUSD:      10.0,
		Status:        domain.StatusPending,
		CreatedAt:     time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		HoldExpiresAt: &expiresAt,
	}
}

// --- Tests ---

func TestGetUserBookings_OwnBookings(t *testing.T) {
	ledger := &mockLedger{
		userBookingsFn: func(username string) []*domain.Booking {
			return []*domain.Booking{sampleBooking("BK-20260901-0001", username)}
		},
	}
	svc := NewService(ledger, testAccounts(), nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "user1", "user1")

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "BK-20260901-0001", resp.Bookings[0].ID)
	assert.Equal(t, "2026-09-01", resp.Bookings[0].Date)
	assert.Equal(t, "10:00", resp.Bookings[0].StartTime)
	assert.Equal(t, "11:00", resp.Bookings[0].EndTime)
	assert.Equal(t, 1.0, resp.Bookings[0].DurationHours)
	require.NotNil(t, resp.Bookings[0].HoldExpiresAt)
}

func TestGetUserBookings_OtherUserRequiresAdmin(t *testing.T) {
	ledger := &mockLedger{
		userBookingsFn: func(username string) []*domain.Booking {
			return []*domain.Booking{sampleBooking("BK-20260901-0001", username)}
		},
	}
	svc := NewService(ledger, testAccounts(), nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), "user2", "user1")
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetUserBookings(context.Background(), "admin", "user1")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetAllBookings_AdminOnly(t *testing.T) {
	ledger := &mockLedger{
		allBookingsFn: func() []*domain.Booking {
			return []*domain.Booking{
				sampleBooking("BK-20260901-0001", "user1"),
				sampleBooking("BK-20260901-0002", "user2"),
			}
		},
	}
	svc := NewService(ledger, testAccounts(), nopLogger{})

	_, err := svc.GetAllBookings(context.Background(), "user1")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetAllBookings(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetAllBookings(context.Background(), "admin")
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestCancel(t *testing.T) {
	cancelled := false
	ledger := &mockLedger{
		cancelPendingFn: func(username, bookingID string) bool {
			cancelled = username == "user1" && bookingID == "BK-20260901-0001"
			return cancelled
		},
	}
	svc := NewService(ledger, testAccounts(), nopLogger{})

	err := svc.Cancel(context.Background(), "user1", "BK-20260901-0001")
	require.NoError(t, err)
	assert.True(t, cancelled)
}

func TestCancel_NothingToCancel(t *testing.T) {
	ledger := &mockLedger{
		cancelPendingFn: func(username, bookingID string) bool { return false },
	}
	svc := NewService(ledger, testAccounts(), nopLogger{})

	err := svc.Cancel(context.Background(), "user1", "BK-20260901-0042")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAdminRemove_AdminOnly(t *testing.T) {
	removed := false
	ledger := &mockLedger{
		adminRemoveFn: func(bookingID string) bool {
			removed = true
			return true
		},
	}
	svc := NewService(ledger, testAccounts(), nopLogger{})

	err := svc.AdminRemove(context.Background(), "user1", "BK-20260901-0001")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, removed)

	err = svc.AdminRemove(context.Background(), "admin", "BK-20260901-0001")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestAdminRemove_NotFound(t *testing.T) {
	ledger := &mockLedger{
		adminRemoveFn: func(bookingID string) bool { return false },
	}
	svc := NewService(ledger, testAccounts(), nopLogger{})

	err := svc.AdminRemove(context.Background(), "admin", "BK-20260901-0042")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
