package get_availability

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	"github.com/goutam1234567890/nirogGyan-Assignment/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

// 2025-08-03 в середине дня: время суток не должно влиять на результат
var today = time.Date(2025, 8, 3, 15, 30, 0, 0, time.UTC)

func newTestResolver() *Resolver {
	return NewResolverWithTime(&fixedTime{now: today}, logger.NewNop())
}

func TestAvailableDates_FiltersPastAndSorts(t *testing.T) {
	doctor := domain.Doctor{
		ID: "1",
		Availability: []domain.TimeSlot{
			{Date: "2025-08-05", Slots: []string{"10:00"}},
			{Date: "2025-08-02", Slots: []string{"09:00"}},
			{Date: "2025-08-03", Slots: []string{"09:00"}},
			{Date: "2025-08-04", Slots: []string{}},
			{Date: "2024-12-31", Slots: []string{"11:00"}},
		},
	}

	dates := newTestResolver().AvailableDates(doctor)

	assert.Equal(t, []string{"2025-08-03", "2025-08-04", "2025-08-05"}, dates)
}

func TestAvailableDates_KeepsDuplicates(t *testing.T) {
	doctor := domain.Doctor{
		Availability: []domain.TimeSlot{
			{Date: "2025-08-04", Slots: []string{"10:00"}},
			{Date: "2025-08-03", Slots: []string{"09:00"}},
			{Date: "2025-08-04", Slots: []string{"11:00"}},
		},
	}

	dates := newTestResolver().AvailableDates(doctor)

	assert.Equal(t, []string{"2025-08-03", "2025-08-04", "2025-08-04"}, dates)
}

func TestAvailableDates_EmptyWhenNothingQualifies(t *testing.T) {
	doctor := domain.Doctor{
		Availability: []domain.TimeSlot{
			{Date: "2025-08-01", Slots: []string{"09:00"}},
			{Date: "not-a-date", Slots: []string{"09:00"}},
		},
	}

	dates := newTestResolver().AvailableDates(doctor)

	assert.NotNil(t, dates)
	assert.Empty(t, dates)
}

func TestAvailableDates_SortedAndNotInPast(t *testing.T) {
	r := newTestResolver()
	start := time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)

	// Даты вокруг сегодняшней в перемешанном порядке
	var availability []domain.TimeSlot
	for _, offset := range []int{9, -3, 0, 27, -1, 14, 1, 30, -14, 5} {
		availability = append(availability, domain.TimeSlot{
			Date: start.AddDate(0, 0, 14+offset).Format(domain.DateFormat),
		})
	}

	dates := r.AvailableDates(domain.Doctor{Availability: availability})

	assert.True(t, sort.StringsAreSorted(dates))
	for _, d := range dates {
		parsed, err := time.Parse(domain.DateFormat, d)
		assert.NoError(t, err)
		assert.False(t, parsed.Before(startOfDay(today)), "date %s is in the past", d)
	}
	assert.Len(t, dates, 7)
}

func TestSlotsForDate(t *testing.T) {
	doctor := domain.Doctor{
		Availability: []domain.TimeSlot{
			{Date: "2025-08-03", Slots: []string{"14:00", "09:00", "10:00"}},
			{Date: "2025-08-04", Slots: []string{}},
			{Date: "2025-08-03", Slots: []string{"18:00"}},
		},
	}
	r := newTestResolver()

	tests := []struct {
		name string
		date string
		want []string
	}{
		{name: "verbatim order, first match wins", date: "2025-08-03", want: []string{"14:00", "09:00", "10:00"}},
		{name: "offered with no slots", date: "2025-08-04", want: []string{}},
		{name: "not offered", date: "2025-08-05", want: []string{}},
		{name: "no fuzzy matching", date: "2025-8-3", want: []string{}},
		{name: "empty date", date: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.SlotsForDate(doctor, tt.date)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlotsForDate_ReturnsCopy(t *testing.T) {
	doctor := domain.Doctor{
		Availability: []domain.TimeSlot{{Date: "2025-08-03", Slots: []string{"09:00"}}},
	}

	slots := newTestResolver().SlotsForDate(doctor, "2025-08-03")
	slots[0] = "23:00"

	assert.Equal(t, "09:00", doctor.Availability[0].Slots[0])
}
