package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// IDGenerator генератор идентификаторов бронирований
// Ведет монотонный счетчик на каждую календарную дату; счетчики не сбрасываются
// и не переиспользуются в течение жизни процесса
type IDGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

// NewIDGenerator создает новый генератор идентификаторов
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		counters: make(map[string]int),
	}
}

// Next возвращает следующий идентификатор для даты date
// Формат: BK-YYYYMMDD-NNNN (счетчик с ведущими нулями до 4 знаков)
func (g *IDGenerator) Next(date time.Time) string {
	dateKey := date.Format(domain.IDDateFormat)

	g.mu.Lock()
	g.counters[dateKey]++
	counter := g.counters[dateKey]
	g.mu.Unlock()

	return fmt.Sprintf("BK-%s-%04d", dateKey, counter)
}
