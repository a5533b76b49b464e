package directory

import "github.com/goutam1234567890/nirogGyan-Assignment/internal/state"

// StateReader источник текущего состояния приложения
type StateReader interface {
	State() state.State
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
