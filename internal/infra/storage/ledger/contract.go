package ledger

import "time"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// MetricsRecorder интерфейс для учета метрик реестра
// Реализуется pkg/metrics; при выключенных метриках используется noop
type MetricsRecorder interface {
	RecordHoldCreated()
	RecordHoldsExpired(n int)
	RecordPaymentConfirmed()
	RecordCancellation()
	RecordAdminRemoval()
}

type noopRecorder struct{}

func (noopRecorder) RecordHoldCreated()       {}
func (noopRecorder) RecordHoldsExpired(int)   {}
func (noopRecorder) RecordPaymentConfirmed()  {}
func (noopRecorder) RecordCancellation()      {}
func (noopRecorder) RecordAdminRemoval()      {}
