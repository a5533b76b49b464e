package get_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	"github.com/goutam1234567890/nirogGyan-Assignment/pkg/logger"
)

type mapDirectory map[string]domain.Doctor

func (m mapDirectory) FindByID(id string) (domain.Doctor, bool) {
	d, ok := m[id]
	return d, ok
}

func newTestUseCase() *UseCase {
	dir := mapDirectory{
		"1": {
			ID: "1",
			Availability: []domain.TimeSlot{
				{Date: "2025-08-04", Slots: []string{}},
				{Date: "2025-08-03", Slots: []string{"09:00", "10:00"}},
			},
		},
	}
	return NewUseCase(dir, newTestResolver(), logger.NewNop())
}

func TestExecute_DatesOnly(t *testing.T) {
	resp, err := newTestUseCase().Execute(context.Background(), &Request{DoctorID: "1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-08-03", "2025-08-04"}, resp.Dates)
	assert.Empty(t, resp.Slots)
	assert.False(t, resp.Offered)
}

func TestExecute_WithDate(t *testing.T) {
	uc := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: "1", Date: "2025-08-03"})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, resp.Slots)
	assert.True(t, resp.Offered)

	resp, err = uc.Execute(context.Background(), &Request{DoctorID: "1", Date: "2025-08-04"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.True(t, resp.Offered, "a day with zero slots is still offered")

	resp, err = uc.Execute(context.Background(), &Request{DoctorID: "1", Date: "2025-09-01"})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.False(t, resp.Offered)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{DoctorID: "nonexistent"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
