package ledger

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// --- Fake time provider ---

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

const holdTimeout = 5 * time.Minute

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := newFakeClock(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	return New(holdTimeout, clock, nil), clock
}

func slotTime(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
}

// --- CreateHold ---

func TestCreateHold_Success(t *testing.T) {
	store, clock := newTestStore(t)

	booking, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)

	require.NoError(t, err)
	assert.Equal(t, "BK-20260901-0001", booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, "user1", booking.Username)
	require.NotNil(t, booking.HoldExpiresAt)
	assert.Equal(t, clock.Now().Add(holdTimeout), *booking.HoldExpiresAt)
	assert.Equal(t, slotTime(11, 0), booking.EndTime())
}

func TestCreateHold_SequentialIDsPerDate(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)
	second, err := store.CreateHold("user2", "badminton", "B02", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)

	assert.Equal(t, "BK-20260901-0001", first.ID)
	assert.Equal(t, "BK-20260901-0002", second.ID)

	// Другая дата - собственный счетчик
	nextDay := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	third, err := store.CreateHold("user1", "badminton", "B03", nextDay, 1, 5.0)
	require.NoError(t, err)
	assert.Equal(t, "BK-20260902-0001", third.ID)
}

func TestCreateHold_FailedAttemptDoesNotConsumeID(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	// Конфликтующая попытка не должна тратить идентификатор
	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(10, 30), 1, 5.0)
	require.ErrorIs(t, err, ErrSlotUnavailable)

	booking, err := store.CreateHold("user2", "badminton", "B02", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)
	assert.Equal(t, "BK-20260901-0002", booking.ID)
}

func TestCreateHold_RejectsOverlap(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	// Пересечение в середине интервала
	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(10, 30), 2, 10.0)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Пересечение с началом интервала
	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(9, 30), 2, 10.0)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCreateHold_AdjacentIntervalsDoNotConflict(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	// Интервал, граничащий с окончанием
	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(11, 0), 2, 10.0)
	assert.NoError(t, err)

	// Интервал, граничащий с началом
	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(9, 0), 2, 10.0)
	assert.NoError(t, err)
}

func TestCreateHold_DifferentCourtsIndependent(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	_, err = store.CreateHold("user2", "badminton", "B02", slotTime(10, 0), 2, 10.0)
	assert.NoError(t, err)
}

func TestCreateHold_ExpiredHoldFreesSlot(t *testing.T) {
	store, clock := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	clock.Advance(holdTimeout)

	booking, err := store.CreateHold("user2", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)
	assert.Equal(t, "user2", booking.Username)
}

// --- ConfirmPayment ---

func TestConfirmPayment_Success(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	var debited float64
	paid, err := store.ConfirmPayment("user1", hold.ID,
		func(amount float64) bool { return true },
		func(amount float64) bool { debited = amount; return true },
	)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
	assert.Nil(t, paid.HoldExpiresAt)
	assert.Equal(t, 10.0, debited)
}

func TestConfirmPayment_PaidBookingSurvivesHoldTimeout(t *testing.T) {
	store, clock := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	require.NoError(t, err)

	clock.Advance(time.Hour)

	// Оплаченное бронирование продолжает удерживать слот
	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestConfirmPayment_UnknownBooking(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.ConfirmPayment("user1", "BK-20260901-0042",
		func(float64) bool { return true },
		func(float64) bool { return true },
	)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmPayment_WrongOwner(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	_, err = store.ConfirmPayment("user2", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmPayment_ExpiredHold(t *testing.T) {
	store, clock := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	clock.Advance(holdTimeout)

	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	assert.ErrorIs(t, err, ErrHoldExpired)

	// Истекший hold удален при обнаружении: повторная попытка его уже не видит
	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmPayment_InsufficientFunds(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return false },
		func(float64) bool { t.Fatal("debit must not be called"); return false },
	)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Бронирование осталось PENDING и может быть оплачено позже
	paid, err := store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaid, paid.Status)
}

func TestConfirmPayment_DebitFailureLeavesBookingPending(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return false },
	)
	assert.ErrorIs(t, err, ErrPaymentFailed)

	bookings := store.UserBookings("user1")
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusPending, bookings[0].Status)
}

// --- CancelPending / AdminRemove ---

func TestCancelPending_FreesSlot(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	assert.True(t, store.CancelPending("user1", hold.ID))

	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	assert.NoError(t, err)
}

func TestCancelPending_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	assert.True(t, store.CancelPending("user1", hold.ID))
	assert.False(t, store.CancelPending("user1", hold.ID))
}

func TestCancelPending_WrongOwnerOrPaid(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	assert.False(t, store.CancelPending("user2", hold.ID))

	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	require.NoError(t, err)

	// PAID не отменяется пользователем
	assert.False(t, store.CancelPending("user1", hold.ID))
}

func TestAdminRemove_RemovesAnyStatusAndFreesSlot(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	require.NoError(t, err)

	assert.True(t, store.AdminRemove(hold.ID))
	assert.False(t, store.AdminRemove(hold.ID))

	_, err = store.CreateHold("user2", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	assert.NoError(t, err)
}

// --- Listings ---

func TestUserBookings_SortedByStartThenID(t *testing.T) {
	store, _ := newTestStore(t)

	late, err := store.CreateHold("user1", "badminton", "B01", slotTime(14, 0), 1, 5.0)
	require.NoError(t, err)
	early, err := store.CreateHold("user1", "badminton", "B02", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)
	sameStart, err := store.CreateHold("user1", "badminton", "B03", slotTime(14, 0), 1, 5.0)
	require.NoError(t, err)

	bookings := store.UserBookings("user1")
	require.Len(t, bookings, 3)
	assert.Equal(t, early.ID, bookings[0].ID)
	assert.Equal(t, late.ID, bookings[1].ID)
	assert.Equal(t, sameStart.ID, bookings[2].ID)
}

func TestUserBookings_ExcludesExpiredWithoutMutation(t *testing.T) {
	store, clock := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)

	clock.Advance(holdTimeout)

	assert.Empty(t, store.UserBookings("user1"))

	// Чтение не мутирует арену - запись вычищается последующей мутацией
	assert.Equal(t, 1, store.SweepExpired())
}

func TestUserBookings_OtherUsersNotVisible(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)
	_, err = store.CreateHold("user2", "badminton", "B02", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)

	bookings := store.UserBookings("user1")
	require.Len(t, bookings, 1)
	assert.Equal(t, "user1", bookings[0].Username)
}

func TestAllBookings_IncludesAllLiveUsers(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(12, 0), 1, 5.0)
	require.NoError(t, err)
	_, err = store.CreateHold("user2", "pickleball", "PB01", slotTime(10, 0), 1, 20.0)
	require.NoError(t, err)

	bookings := store.AllBookings()
	require.Len(t, bookings, 2)
	assert.Equal(t, "user2", bookings[0].Username)
	assert.Equal(t, "user1", bookings[1].Username)
}

func TestListings_ReturnCopies(t *testing.T) {
	store, _ := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)

	bookings := store.UserBookings("user1")
	require.Len(t, bookings, 1)
	bookings[0].Status = domain.StatusPaid

	// Мутация копии не должна влиять на арену
	assert.False(t, store.CancelPending("user2", hold.ID))
	assert.True(t, store.CancelPending("user1", hold.ID))
}

// --- Availability ---

func TestAvailabilityGrid_FullDayGrid(t *testing.T) {
	store, _ := newTestStore(t)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	grid := store.AvailabilityGrid([]string{"B01", "B02"}, date)

	require.Len(t, grid, 2)
	require.Len(t, grid["B01"], domain.SlotsPerDay)
	assert.Equal(t, date, grid["B01"][0].Start)
	assert.Equal(t, date.Add(23*time.Hour+30*time.Minute), grid["B01"][domain.SlotsPerDay-1].Start)

	for _, slot := range grid["B01"] {
		assert.True(t, slot.Available)
	}
}

func TestAvailabilityGrid_BookedSlotsUnavailable(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	grid := store.AvailabilityGrid([]string{"B01"}, date)

	slots := grid["B01"]
	assert.True(t, slots[19].Available)   // 09:30
	assert.False(t, slots[20].Available)  // 10:00
	assert.False(t, slots[21].Available)  // 10:30
	assert.True(t, slots[22].Available)   // 11:00
}

func TestAvailableCourts_PreservesInputOrder(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B02", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	courts := store.AvailableCourts([]string{"B01", "B02", "B03"}, slotTime(10, 0), 2)
	assert.Equal(t, []string{"B01", "B03"}, courts)
}

func TestAvailableCourts_ExpiredHoldVisibleAsFree(t *testing.T) {
	store, clock := newTestStore(t)

	_, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	clock.Advance(holdTimeout)

	courts := store.AvailableCourts([]string{"B01"}, slotTime(10, 0), 2)
	assert.Equal(t, []string{"B01"}, courts)
}

// --- Sweep / concurrency ---

func TestSweepExpired_RemovesOnlyExpiredPending(t *testing.T) {
	store, clock := newTestStore(t)

	hold, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)
	_, err = store.ConfirmPayment("user1", hold.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	require.NoError(t, err)

	_, err = store.CreateHold("user2", "badminton", "B02", slotTime(10, 0), 1, 5.0)
	require.NoError(t, err)

	clock.Advance(holdTimeout)

	assert.Equal(t, 1, store.SweepExpired())
	assert.Equal(t, 0, store.SweepExpired())

	bookings := store.AllBookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusPaid, bookings[0].Status)
}

// После смешанной последовательности операций оба индекса согласованы:
// удаленная любым путем запись не видна ни через byUser, ни через byCourt
func TestIndices_ConsistentAfterMixedOperations(t *testing.T) {
	store, clock := newTestStore(t)

	cancelled, err := store.CreateHold("user1", "badminton", "B01", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)
	confirmed, err := store.CreateHold("user1", "badminton", "B02", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)
	removed, err := store.CreateHold("user2", "badminton", "B03", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	require.True(t, store.CancelPending("user1", cancelled.ID))
	_, err = store.ConfirmPayment("user1", confirmed.ID,
		func(float64) bool { return true },
		func(float64) bool { return true },
	)
	require.NoError(t, err)

	expired, err := store.CreateHold("user2", "badminton", "B04", slotTime(10, 0), 2, 10.0)
	require.NoError(t, err)

	require.True(t, store.AdminRemove(removed.ID))

	// К моменту sweep единственный PENDING с истекшим hold - запись на B04
	clock.Advance(holdTimeout)
	require.Equal(t, 1, store.SweepExpired())

	// byUser: у user1 осталась только оплаченная запись, у user2 - ничего
	user1Bookings := store.UserBookings("user1")
	require.Len(t, user1Bookings, 1)
	assert.Equal(t, confirmed.ID, user1Bookings[0].ID)
	assert.Empty(t, store.UserBookings("user2"))

	all := store.AllBookings()
	require.Len(t, all, 1)
	assert.Equal(t, confirmed.ID, all[0].ID)

	// byCourt: корты удаленных записей свободны, корт оплаченной - занят
	courts := store.AvailableCourts([]string{"B01", "B02", "B03", "B04"}, slotTime(10, 0), 2)
	assert.Equal(t, []string{"B01", "B03", "B04"}, courts)

	// Освобожденные корты можно занять заново, занятый - нет
	for _, courtID := range []string{"B01", "B03", "B04"} {
		_, err := store.CreateHold("user3", "badminton", courtID, slotTime(10, 0), 2, 10.0)
		assert.NoError(t, err, "court %s", courtID)
	}
	_, err = store.CreateHold("user3", "badminton", "B02", slotTime(10, 0), 2, 10.0)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Возврат отмененных/удаленных идентификаторов через любые операции невозможен
	assert.False(t, store.CancelPending("user1", cancelled.ID))
	assert.False(t, store.AdminRemove(removed.ID))
	assert.False(t, store.AdminRemove(expired.ID))
}

func TestCreateHold_ConcurrentSameSlotOneWinner(t *testing.T) {
	store, _ := newTestStore(t)

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.CreateHold(fmt.Sprintf("user%d", i), "badminton", "B01", slotTime(10, 0), 2, 10.0)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			require.ErrorIs(t, err, ErrSlotUnavailable)
			lost++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, workers-1, lost)
}
