package search_doctors

import (
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/state"
)

type SearchTermSetter interface {
	SetSearchTerm(term string) state.State
}

type DoctorLister interface {
	Search(term string) []domain.Doctor
	Listing() []domain.Doctor
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
