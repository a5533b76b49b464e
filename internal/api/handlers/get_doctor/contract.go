package get_doctor

import "github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"

type DoctorDirectory interface {
	FindByID(id string) (domain.Doctor, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
