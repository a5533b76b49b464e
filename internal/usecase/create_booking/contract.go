package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/state"
)

// DoctorDirectory интерфейс каталога врачей
type DoctorDirectory interface {
	FindByID(id string) (domain.Doctor, bool)
}

// Dispatcher интерфейс хранилища состояния
type Dispatcher interface {
	Dispatch(a state.Action) state.State
}

// IDGenerator источник уникальных идентификаторов
type IDGenerator interface {
	NewID() string
}

// MetricsRecorder интерфейс для метрик бронирования
type MetricsRecorder interface {
	IncBookingsConfirmed()
	IncValidationFailure(field string)
	IncFlowsCancelled()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генератор ID для production
type UUIDGenerator struct{}

// NewID возвращает новый UUID v4
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// nopMetrics используется, когда метрики выключены
type nopMetrics struct{}

func (nopMetrics) IncBookingsConfirmed() {}
func (nopMetrics) IncValidationFailure(string) {}
func (nopMetrics) IncFlowsCancelled() {}
