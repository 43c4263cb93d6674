package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// GridSlot один 30-минутный слот в сетке доступности
type GridSlot struct {
	Start     time.Time
	Available bool
}

// Store in-memory реестр бронирований
//
// Единственный владелец всех записей Booking: арена bookings хранит записи,
// индексы byCourt и byUser хранят только идентификаторы (никаких копий).
// Все мутации выполняются под одной write-блокировкой, включая повторную
// проверку доступности перед вставкой - между проверкой и коммитом никакая
// другая операция слот увидеть или занять не может.
//
// Истечение holds ленивое: каждая мутирующая операция начинается со sweep.
// Операции чтения берут read-блокировку и фильтруют записи по IsLive, не
// мутируя состояние - истекший hold никогда не виден как занятый, а сами
// записи вычищаются ближайшей мутацией или фоновым реапером
type Store struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking // арена: id -> запись
	byCourt  map[string][]string        // courtID -> идентификаторы бронирований
	byUser   map[string][]string        // username -> идентификаторы бронирований

	idGen        *IDGenerator
	holdTimeout  time.Duration
	timeProvider TimeProvider
	metrics      MetricsRecorder
}

// New создает новый реестр бронирований
// metrics может быть nil - тогда метрики не собираются
func New(holdTimeout time.Duration, timeProvider TimeProvider, metrics MetricsRecorder) *Store {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &Store{
		bookings:     make(map[string]*domain.Booking),
		byCourt:      make(map[string][]string),
		byUser:       make(map[string][]string),
		idGen:        NewIDGenerator(),
		holdTimeout:  holdTimeout,
		timeProvider: timeProvider,
		metrics:      metrics,
	}
}

// CreateHold создает PENDING-бронирование, удерживающее интервал корта
//
// Доступность проверяется заново под write-блокировкой: результат ранее
// выполненного запроса доступности не принимается на веру, гонка между
// запросом и коммитом закрыта. Идентификатор генерируется только после
// успешной проверки, поэтому идентификаторы успешных holds плотные и
// идут в порядке создания
func (s *Store) CreateHold(username, sport, courtID string, start time.Time, durationSlots int, priceUSD float64) (*domain.Booking, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)

	end := start.Add(time.Duration(durationSlots*domain.SlotMinutes) * time.Minute)
	if !s.courtFreeLocked(courtID, start, end, now) {
		return nil, ErrSlotUnavailable
	}

	expiresAt := now.Add(s.holdTimeout)
	booking := &domain.Booking{
		ID:            s.idGen.Next(start),
		Username:      username,
		Sport:         sport,
		CourtID:       courtID,
		Start:         start,
		DurationSlots: durationSlots,
		PriceUSD:      priceUSD,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		HoldExpiresAt: &expiresAt,
	}

	s.insertLocked(booking)
	s.metrics.RecordHoldCreated()

	return copyBooking(booking), nil
}

// ConfirmPayment атомарно переводит PENDING-бронирование пользователя в PAID
//
// balanceCheck и balanceDebit предоставляются вызывающим и выполняются
// быстро и без внешнего I/O, поэтому вызываются внутри критической секции:
// списание и смена статуса - один неделимый шаг. Если списание не удалось,
// бронирование остается нетронутым
func (s *Store) ConfirmPayment(username, bookingID string, balanceCheck func(amountUSD float64) bool, balanceDebit func(amountUSD float64) bool) (*domain.Booking, error) {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok || booking.Username != username || booking.Status != domain.StatusPending {
		s.sweepLocked(now)
		return nil, ErrBookingNotFound
	}

	// Истекший hold удаляется как побочный эффект обнаружения
	if booking.IsExpired(now) {
		s.sweepLocked(now)
		return nil, ErrHoldExpired
	}

	s.sweepLocked(now)

	if !balanceCheck(booking.PriceUSD) {
		return nil, ErrInsufficientFunds
	}

	if !balanceDebit(booking.PriceUSD) {
		return nil, ErrPaymentFailed
	}

	booking.ConfirmPayment()
	s.metrics.RecordPaymentConfirmed()

	return copyBooking(booking), nil
}

// CancelPending удаляет PENDING-бронирование пользователя из обоих индексов
// Возвращает false, если такого бронирования нет или оно не PENDING
// Идемпотентна: повторный вызов с тем же идентификатором безопасен
func (s *Store) CancelPending(username, bookingID string) bool {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)

	booking, ok := s.bookings[bookingID]
	if !ok || booking.Username != username || booking.Status != domain.StatusPending {
		return false
	}

	s.removeLocked(bookingID)
	s.metrics.RecordCancellation()

	return true
}

// AdminRemove удаляет любое бронирование (PENDING или PAID) независимо от владельца
// Возвращает false, если бронирование не найдено
// Возврат средств не выполняется - балансовые эффекты остаются за вызывающим
func (s *Store) AdminRemove(bookingID string) bool {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)

	if _, ok := s.bookings[bookingID]; !ok {
		return false
	}

	s.removeLocked(bookingID)
	s.metrics.RecordAdminRemoval()

	return true
}

// UserBookings возвращает живые бронирования пользователя,
// отсортированные по (start, id) по возрастанию
func (s *Store) UserBookings(username string) []*domain.Booking {
	now := s.timeProvider.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, id := range s.byUser[username] {
		if b, ok := s.bookings[id]; ok && b.IsLive(now) {
			result = append(result, copyBooking(b))
		}
	}

	sortBookings(result)
	return result
}

// AllBookings возвращает все живые бронирования,
// отсортированные по (start, id) по возрастанию
func (s *Store) AllBookings() []*domain.Booking {
	now := s.timeProvider.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.IsLive(now) {
			result = append(result, copyBooking(b))
		}
	}

	sortBookings(result)
	return result
}

// AvailabilityGrid строит сетку доступности: для каждого корта из courtIDs
// все 48 получасовых слотов даты date с признаком доступности
// Слоты вычисляются по живым бронированиям на момент вызова
func (s *Store) AvailabilityGrid(courtIDs []string, date time.Time) map[string][]GridSlot {
	now := s.timeProvider.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	grid := make(map[string][]GridSlot, len(courtIDs))
	for _, courtID := range courtIDs {
		slots := make([]GridSlot, domain.SlotsPerDay)
		for i := 0; i < domain.SlotsPerDay; i++ {
			slotStart := dayStart.Add(time.Duration(i*domain.SlotMinutes) * time.Minute)
			slotEnd := slotStart.Add(domain.SlotMinutes * time.Minute)
			slots[i] = GridSlot{
				Start:     slotStart,
				Available: s.courtFreeLocked(courtID, slotStart, slotEnd, now),
			}
		}
		grid[courtID] = slots
	}

	return grid
}

// AvailableCourts возвращает из courtIDs (с сохранением порядка) корты,
// свободные на всем интервале [start, start+30m*durationSlots)
func (s *Store) AvailableCourts(courtIDs []string, start time.Time, durationSlots int) []string {
	now := s.timeProvider.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	end := start.Add(time.Duration(durationSlots*domain.SlotMinutes) * time.Minute)

	available := make([]string, 0, len(courtIDs))
	for _, courtID := range courtIDs {
		if s.courtFreeLocked(courtID, start, end, now) {
			available = append(available, courtID)
		}
	}

	return available
}

// SweepExpired удаляет все PENDING-бронирования с истекшим hold
// Возвращает количество удаленных записей; вызывается фоновым реапером
func (s *Store) SweepExpired() int {
	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked(now)
}

// courtFreeLocked проверяет, что интервал [start, end) корта не пересекается
// ни с одним живым бронированием; вызывается под блокировкой
func (s *Store) courtFreeLocked(courtID string, start, end time.Time, now time.Time) bool {
	for _, id := range s.byCourt[courtID] {
		b, ok := s.bookings[id]
		if !ok {
			continue
		}
		if b.IsLive(now) && b.Overlaps(start, end) {
			return false
		}
	}
	return true
}

// sweepLocked удаляет истекшие holds; вызывается под write-блокировкой
func (s *Store) sweepLocked(now time.Time) int {
	var expired []string
	for id, b := range s.bookings {
		if b.IsExpired(now) {
			expired = append(expired, id)
		}
	}

	for _, id := range expired {
		s.removeLocked(id)
	}

	s.metrics.RecordHoldsExpired(len(expired))
	return len(expired)
}

// insertLocked добавляет запись в арену и оба индекса; вызывается под write-блокировкой
func (s *Store) insertLocked(b *domain.Booking) {
	s.bookings[b.ID] = b
	s.byCourt[b.CourtID] = append(s.byCourt[b.CourtID], b.ID)
	s.byUser[b.Username] = append(s.byUser[b.Username], b.ID)
}

// removeLocked удаляет запись из арены и обоих индексов; вызывается под write-блокировкой
func (s *Store) removeLocked(id string) {
	b, ok := s.bookings[id]
	if !ok {
		return
	}

	delete(s.bookings, id)
	s.byCourt[b.CourtID] = removeID(s.byCourt[b.CourtID], id)
	s.byUser[b.Username] = removeID(s.byUser[b.Username], id)
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func sortBookings(bookings []*domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].Start.Before(bookings[j].Start)
		}
		return bookings[i].ID < bookings[j].ID
	})
}

// copyBooking возвращает копию записи, чтобы вызывающие не могли
// мутировать состояние арены и не наблюдали частично примененные мутации
func copyBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.HoldExpiresAt != nil {
		expiresAt := *b.HoldExpiresAt
		c.HoldExpiresAt = &expiresAt
	}
	return &c
}
