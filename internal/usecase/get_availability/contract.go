package get_availability

import (
	"time"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// DoctorDirectory интерфейс каталога врачей
type DoctorDirectory interface {
	FindByID(id string) (domain.Doctor, bool)
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
