package get_availability

import (
	"sort"
	"time"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// Resolver вычисляет доступные даты и слоты врача
type Resolver struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewResolver создает резолвер с реальным временем
func NewResolver(logger Logger) *Resolver {
	return NewResolverWithTime(&RealTimeProvider{}, logger)
}

// NewResolverWithTime создает резолвер с заданным источником времени
func NewResolverWithTime(timeProvider TimeProvider, logger Logger) *Resolver {
	return &Resolver{
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AvailableDates возвращает даты врача не раньше сегодняшней, по возрастанию.
// Сравниваются только календарные даты, время суток игнорируется.
// Дубликаты дат не удаляются. Некорректные даты пропускаются.
func (r *Resolver) AvailableDates(doctor domain.Doctor) []string {
	now := r.timeProvider.Now()
	today := startOfDay(now)

	type datedEntry struct {
		raw  string
		date time.Time
	}

	entries := make([]datedEntry, 0, len(doctor.Availability))
	for _, ts := range doctor.Availability {
		date, err := time.ParseInLocation(domain.DateFormat, ts.Date, now.Location())
		if err != nil {
			r.logger.Warn("AvailableDates: doctor id=%s has invalid date %q: %v", doctor.ID, ts.Date, err)
			continue
		}
		if date.Before(today) {
			continue
		}
		entries = append(entries, datedEntry{raw: ts.Date, date: date})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.Before(entries[j].date)
	})

	dates := make([]string, len(entries))
	for i, e := range entries {
		dates[i] = e.raw
	}
	return dates
}

// SlotsForDate возвращает слоты на дату в исходном порядке.
// Дата сравнивается как строка; при дубликатах побеждает первая запись.
// Если дата не объявлена - пустой список.
func (r *Resolver) SlotsForDate(doctor domain.Doctor, date string) []string {
	slots, _ := lookupSlots(doctor, date)
	return slots
}

// lookupSlots дополнительно сообщает, объявлена ли дата вообще
func lookupSlots(doctor domain.Doctor, date string) ([]string, bool) {
	for _, ts := range doctor.Availability {
		if ts.Date == date {
			out := make([]string, len(ts.Slots))
			copy(out, ts.Slots)
			return out, true
		}
	}
	return []string{}, false
}

// startOfDay обнуляет время, оставляя дату
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
