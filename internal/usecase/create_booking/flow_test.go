package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/state"
	"github.com/goutam1234567890/nirogGyan-Assignment/pkg/logger"
	"github.com/goutam1234567890/nirogGyan-Assignment/pkg/metrics"
)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (s *sequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

func testCatalog() []domain.Doctor {
	return []domain.Doctor{
		{
			ID:             "1",
			Name:           "Dr. Sarah Johnson",
			Specialization: "Cardiologist",
			Availability: []domain.TimeSlot{
				{Date: "2025-08-03", Slots: []string{"09:00", "10:00"}},
			},
		},
	}
}

func newTestFlow(store *state.Store, latency time.Duration) *Flow {
	return newFlow("flow-1", "1", store, &sequenceIDs{}, latency, nopMetrics{}, &RealTimeProvider{}, logger.NewNop())
}

func waitFlow(t *testing.T, f *Flow) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.Wait(ctx))
}

func TestFlow_SubmitConfirms(t *testing.T) {
	store := state.NewStore(testCatalog())
	flow := newTestFlow(store, 0)

	assert.Equal(t, FlowEditing, flow.Snapshot().State)

	errs, err := flow.Submit(validForm())
	require.NoError(t, err)
	assert.Empty(t, errs)

	waitFlow(t, flow)

	snap := flow.Snapshot()
	assert.Equal(t, FlowConfirmed, snap.State)
	require.NotNil(t, snap.Appointment)

	appointments := store.State().Appointments
	require.Len(t, appointments, 1)
	assert.Equal(t, *snap.Appointment, appointments[0])
	assert.Equal(t, domain.Appointment{
		ID:          "id-1",
		DoctorID:    "1",
		PatientName: "Jane Doe",
		Email:       "jane@example.com",
		Date:        "2025-08-03",
		Time:        "09:00",
		Status:      domain.StatusConfirmed,
	}, appointments[0])
}

func TestFlow_ValidationFailureStaysEditing(t *testing.T) {
	store := state.NewStore(testCatalog())
	flow := newTestFlow(store, 0)

	form := validForm()
	form.Email = "not-an-email"

	errs, err := flow.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, domain.FormErrors{domain.FieldEmail: domain.MsgEmailInvalid}, errs)

	waitFlow(t, flow)

	snap := flow.Snapshot()
	assert.Equal(t, FlowEditing, snap.State)
	assert.Equal(t, errs, snap.Errors)
	assert.Nil(t, snap.Appointment)
	assert.Empty(t, store.State().Appointments)
}

func TestFlow_ResubmitAfterValidationFailure(t *testing.T) {
	store := state.NewStore(testCatalog())
	flow := newTestFlow(store, 0)

	_, err := flow.Submit(domain.AppointmentForm{})
	require.NoError(t, err)

	errs, err := flow.Submit(validForm())
	require.NoError(t, err)
	assert.Empty(t, errs)

	waitFlow(t, flow)
	assert.Equal(t, FlowConfirmed, flow.Snapshot().State)
	assert.Empty(t, flow.Snapshot().Errors)
}

func TestFlow_SubmitWhileSubmittingIsRejected(t *testing.T) {
	store := state.NewStore(testCatalog())
	flow := newTestFlow(store, time.Hour)
	defer flow.Close()

	_, err := flow.Submit(validForm())
	require.NoError(t, err)
	assert.Equal(t, FlowSubmitting, flow.Snapshot().State)

	_, err = flow.Submit(validForm())
	assert.ErrorIs(t, err, ErrNotEditing)

	assert.ErrorIs(t, flow.SetField(domain.FieldPatientName, "x"), ErrNotEditing)
}

func TestFlow_ConfirmedIsTerminal(t *testing.T) {
	store := state.NewStore(testCatalog())
	flow := newTestFlow(store, 0)

	_, err := flow.Submit(validForm())
	require.NoError(t, err)
	waitFlow(t, flow)

	_, err = flow.Submit(validForm())
	assert.ErrorIs(t, err, ErrNotEditing)
	assert.Len(t, store.State().Appointments, 1)
}

func TestFlow_CloseDiscardsPendingSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("test", reg)

	store := state.NewStore(testCatalog())
	flow := newFlow("flow-1", "1", store, &sequenceIDs{}, time.Hour, m, &RealTimeProvider{}, logger.NewNop())

	_, err := flow.Submit(validForm())
	require.NoError(t, err)

	flow.Close()
	waitFlow(t, flow)

	snap := flow.Snapshot()
	assert.True(t, snap.Closed)
	assert.Equal(t, FlowSubmitting, snap.State)
	assert.Nil(t, snap.Appointment)
	assert.Empty(t, store.State().Appointments)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.FlowsCancelled))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.BookingsConfirmed))

	_, err = flow.Submit(validForm())
	assert.ErrorIs(t, err, ErrFlowClosed)
}

func TestFlow_CloseIsIdempotent(t *testing.T) {
	flow := newTestFlow(state.NewStore(testCatalog()), 0)

	flow.Close()
	flow.Close()

	assert.True(t, flow.Snapshot().Closed)
	assert.NoError(t, flow.Wait(context.Background()))
}

func TestFlow_UsesSnapshotTakenAtSubmit(t *testing.T) {
	store := state.NewStore(testCatalog())
	flow := newTestFlow(store, 20*time.Millisecond)

	form := validForm()
	_, err := flow.Submit(form)
	require.NoError(t, err)

	form.PatientName = "Someone Else"

	waitFlow(t, flow)
	require.Len(t, store.State().Appointments, 1)
	assert.Equal(t, "Jane Doe", store.State().Appointments[0].PatientName)
}

func TestFlow_SetFieldAndSelectDate(t *testing.T) {
	store := state.NewStore(testCatalog())
	flow := newTestFlow(store, 0)

	errs, err := flow.SubmitCurrent()
	require.NoError(t, err)
	require.Len(t, errs, 4)

	require.NoError(t, flow.SetField(domain.FieldPatientName, "Jane Doe"))
	require.NoError(t, flow.SetField(domain.FieldEmail, "jane@example.com"))
	require.NoError(t, flow.SetField(domain.FieldTime, "10:00"))

	snap := flow.Snapshot()
	assert.NotContains(t, snap.Errors, domain.FieldPatientName)
	assert.NotContains(t, snap.Errors, domain.FieldEmail)
	assert.Contains(t, snap.Errors, domain.FieldDate)

	// Смена даты сбрасывает выбранное время
	require.NoError(t, flow.SelectDate("2025-08-03"))
	snap = flow.Snapshot()
	assert.Equal(t, "", snap.Form.Time)
	assert.NotContains(t, snap.Errors, domain.FieldDate)

	assert.ErrorIs(t, flow.SetField("phone", "123"), ErrUnknownField)

	require.NoError(t, flow.SetField(domain.FieldTime, "09:00"))
	errs, err = flow.SubmitCurrent()
	require.NoError(t, err)
	assert.Empty(t, errs)

	waitFlow(t, flow)
	require.Len(t, store.State().Appointments, 1)
	assert.Equal(t, "09:00", store.State().Appointments[0].Time)
}

func TestFlow_WaitHonoursContext(t *testing.T) {
	flow := newTestFlow(state.NewStore(testCatalog()), time.Hour)
	defer flow.Close()

	_, err := flow.Submit(validForm())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, flow.Wait(ctx), context.DeadlineExceeded)
}

func TestFlow_SubmitCurrentDoesNotLoseConcurrentEdit(t *testing.T) {
	for i := 0; i < 200; i++ {
		store := state.NewStore(testCatalog())
		flow := newTestFlow(store, 0)
		for field, value := range map[domain.FormField]string{
			domain.FieldPatientName: "Jane Doe",
			domain.FieldEmail:       "jane@example.com",
			domain.FieldDate:        "2025-08-03",
			domain.FieldTime:        "09:00",
		} {
			require.NoError(t, flow.SetField(field, value))
		}

		var (
			wg     sync.WaitGroup
			setErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			setErr = flow.SetField(domain.FieldTime, "10:00")
		}()
		go func() {
			defer wg.Done()
			_, _ = flow.SubmitCurrent()
		}()
		wg.Wait()
		waitFlow(t, flow)

		appointments := store.State().Appointments
		require.Len(t, appointments, 1)
		if setErr == nil {
			// Принятое изменение обязано попасть в бронирование
			assert.Equal(t, "10:00", appointments[0].Time)
		} else {
			assert.ErrorIs(t, setErr, ErrNotEditing)
			assert.Equal(t, "09:00", appointments[0].Time)
		}
	}
}
