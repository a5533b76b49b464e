package list_appointments

import "github.com/goutam1234567890/nirogGyan-Assignment/internal/state"

type StateReader interface {
	State() state.State
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
