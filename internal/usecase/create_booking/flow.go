package create_booking

import (
	"context"
	"sync"
	"time"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
	"github.com/goutam1234567890/nirogGyan-Assignment/internal/state"
)

// Flow процесс одного бронирования: editing -> submitting -> confirmed.
// Ошибки валидации оставляют процесс в editing.
// После Close отложенная запись в хранилище не выполняется.
type Flow struct {
	id       string
	doctorID string

	store   Dispatcher
	ids     IDGenerator
	latency time.Duration
	metrics MetricsRecorder
	clock   TimeProvider
	logger  Logger

	mu          sync.Mutex
	state       FlowState
	form        domain.AppointmentForm
	errors      domain.FormErrors
	appointment *domain.Appointment
	closed      bool
	touchedAt   time.Time     // последнее изменение процесса
	done        chan struct{} // закрывается по завершении отправки

	ctx    context.Context
	cancel context.CancelFunc
}

func newFlow(
	id string,
	doctorID string,
	store Dispatcher,
	ids IDGenerator,
	latency time.Duration,
	metrics MetricsRecorder,
	clock TimeProvider,
	logger Logger,
) *Flow {
	ctx, cancel := context.WithCancel(context.Background())
	return &Flow{
		id:        id,
		doctorID:  doctorID,
		store:     store,
		ids:       ids,
		latency:   latency,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
		state:     FlowEditing,
		errors:    domain.FormErrors{},
		touchedAt: clock.Now(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// ID возвращает идентификатор процесса
func (f *Flow) ID() string {
	return f.id
}

// Snapshot возвращает копию текущего состояния процесса
func (f *Flow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// SetField изменяет поле формы и сбрасывает его ошибку
func (f *Flow) SetField(field domain.FormField, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEditableLocked(); err != nil {
		return err
	}
	if !f.form.Set(field, value) {
		return ErrUnknownField
	}
	delete(f.errors, field)
	f.touchedAt = f.clock.Now()
	return nil
}

// SelectDate выбирает дату; выбранное время при этом сбрасывается
func (f *Flow) SelectDate(date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEditableLocked(); err != nil {
		return err
	}
	f.form.Date = date
	f.form.Time = ""
	delete(f.errors, domain.FieldDate)
	f.touchedAt = f.clock.Now()
	return nil
}

// SubmitCurrent отправляет форму, накопленную через SetField и SelectDate
func (f *Flow) SubmitCurrent() (domain.FormErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitLocked(f.form)
}

// Submit валидирует форму. При ошибках процесс остается в editing и
// возвращает карту ошибок. Иначе процесс переходит в submitting, а
// бронирование будет создано через latency.
func (f *Flow) Submit(form domain.AppointmentForm) (domain.FormErrors, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitLocked(form)
}

func (f *Flow) submitLocked(form domain.AppointmentForm) (domain.FormErrors, error) {
	if err := f.checkEditableLocked(); err != nil {
		return nil, err
	}

	f.form = form
	f.touchedAt = f.clock.Now()

	errs := ValidateForm(form)
	if errs.HasErrors() {
		f.errors = errs
		for field := range errs {
			f.metrics.IncValidationFailure(string(field))
		}
		f.logger.Warn("Flow %s: validation failed for doctor=%s, fields=%d", f.id, f.doctorID, len(errs))
		return errs.Clone(), nil
	}

	f.errors = domain.FormErrors{}
	f.state = FlowSubmitting
	f.done = make(chan struct{})

	f.logger.Info("Flow %s: submitting booking for doctor=%s, date=%s, time=%s",
		f.id, f.doctorID, form.Date, form.Time)

	// В горутину уходит снимок формы на момент отправки
	go f.commit(form, f.done)

	return domain.FormErrors{}, nil
}

// Wait ждет завершения отправки (успешного или отмененного)
func (f *Flow) Wait(ctx context.Context) error {
	f.mu.Lock()
	done := f.done
	f.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close завершает процесс. Повторный вызов ничего не делает.
func (f *Flow) Close() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	pending := f.state == FlowSubmitting
	f.cancel()
	f.mu.Unlock()

	if pending {
		f.metrics.IncFlowsCancelled()
		f.logger.Warn("Flow %s: closed while submitting, booking discarded", f.id)
	}
}

func (f *Flow) commit(form domain.AppointmentForm, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(f.latency)
	defer timer.Stop()

	select {
	case <-f.ctx.Done():
		return
	case <-timer.C:
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// Close мог успеть между таймером и захватом мьютекса
	if f.closed {
		return
	}

	appointment := domain.Appointment{
		ID:          f.ids.NewID(),
		DoctorID:    f.doctorID,
		PatientName: form.PatientName,
		Email:       form.Email,
		Date:        form.Date,
		Time:        form.Time,
		Status:      domain.StatusConfirmed,
	}

	f.store.Dispatch(state.AddAppointment{Appointment: appointment})

	f.appointment = &appointment
	f.state = FlowConfirmed
	f.touchedAt = f.clock.Now()
	f.metrics.IncBookingsConfirmed()

	f.logger.Info("Flow %s: appointment id=%s confirmed for doctor=%s", f.id, appointment.ID, f.doctorID)
}

// idleFor сколько времени процесс не менялся.
// Процесс в submitting никогда не считается простаивающим.
func (f *Flow) idleFor(now time.Time) (time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == FlowSubmitting {
		return 0, false
	}
	return now.Sub(f.touchedAt), true
}

func (f *Flow) checkEditableLocked() error {
	if f.closed {
		return ErrFlowClosed
	}
	if f.state != FlowEditing {
		return ErrNotEditing
	}
	return nil
}

func (f *Flow) snapshotLocked() FlowSnapshot {
	snap := FlowSnapshot{
		ID:       f.id,
		DoctorID: f.doctorID,
		State:    f.state,
		Form:     f.form,
		Errors:   f.errors.Clone(),
		Closed:   f.closed,
	}
	if f.appointment != nil {
		appointment := *f.appointment
		snap.Appointment = &appointment
	}
	return snap
}
