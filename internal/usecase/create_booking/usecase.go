package create_booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// DefaultFlowTTL время жизни процесса без изменений
const DefaultFlowTTL = time.Duration(domain.DefaultFlowTTLSeconds) * time.Second

// UseCase use case для бронирования: хранит активные процессы бронирования.
// Подтвержденный процесс удаляется из реестра после первого чтения через Get,
// а процессы без изменений дольше ttl удаляются при открытии новых.
type UseCase struct {
	directory DoctorDirectory
	store     Dispatcher
	ids       IDGenerator
	latency   time.Duration
	ttl       time.Duration
	clock     TimeProvider
	metrics   MetricsRecorder
	logger    Logger

	mu    sync.RWMutex
	flows map[string]*Flow
}

// NewUseCase создает новый экземпляр use case с DefaultFlowTTL.
// metrics может быть nil.
func NewUseCase(
	directory DoctorDirectory,
	store Dispatcher,
	ids IDGenerator,
	latency time.Duration,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return NewUseCaseWithTime(directory, store, ids, latency, DefaultFlowTTL, &RealTimeProvider{}, metrics, logger)
}

// NewUseCaseWithTime создает use case с заданным ttl процессов и провайдером времени
func NewUseCaseWithTime(
	directory DoctorDirectory,
	store Dispatcher,
	ids IDGenerator,
	latency time.Duration,
	ttl time.Duration,
	clock TimeProvider,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if ttl <= 0 {
		ttl = DefaultFlowTTL
	}
	return &UseCase{
		directory: directory,
		store:     store,
		ids:       ids,
		latency:   latency,
		ttl:       ttl,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
		flows:     make(map[string]*Flow),
	}
}

// Start открывает новый процесс бронирования для врача
func (uc *UseCase) Start(_ context.Context, doctorID string) (*Flow, error) {
	uc.logger.Info("StartBooking: doctor=%s", doctorID)

	if doctorID == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	// Врач должен существовать на момент открытия формы
	if _, ok := uc.directory.FindByID(doctorID); !ok {
		uc.logger.Warn("StartBooking: doctor id=%s not found", doctorID)
		return nil, ErrDoctorNotFound
	}

	uc.evictIdle()

	flow := newFlow(uc.ids.NewID(), doctorID, uc.store, uc.ids, uc.latency, uc.metrics, uc.clock, uc.logger)

	uc.mu.Lock()
	uc.flows[flow.ID()] = flow
	uc.mu.Unlock()

	uc.logger.Info("StartBooking: flow id=%s opened for doctor=%s", flow.ID(), doctorID)
	return flow, nil
}

// Execute открывает процесс и сразу отправляет форму
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	flow, err := uc.Start(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	errs, err := flow.Submit(req.Form)
	if err != nil {
		return nil, err
	}

	return &Response{
		Flow:   flow.Snapshot(),
		Errors: errs,
	}, nil
}

// Submit повторно отправляет форму в существующий процесс
func (uc *UseCase) Submit(_ context.Context, flowID string, req *Request) (*Response, error) {
	flow, err := uc.lookup(flowID)
	if err != nil {
		return nil, err
	}

	errs, err := flow.Submit(req.Form)
	if err != nil {
		uc.logger.Warn("SubmitBooking: flow id=%s rejected submission: %v", flowID, err)
		return nil, err
	}

	return &Response{
		Flow:   flow.Snapshot(),
		Errors: errs,
	}, nil
}

// SubmitCurrent отправляет форму, накопленную через UpdateField
func (uc *UseCase) SubmitCurrent(_ context.Context, flowID string) (*Response, error) {
	flow, err := uc.lookup(flowID)
	if err != nil {
		return nil, err
	}

	errs, err := flow.SubmitCurrent()
	if err != nil {
		uc.logger.Warn("SubmitBooking: flow id=%s rejected submission: %v", flowID, err)
		return nil, err
	}

	return &Response{
		Flow:   flow.Snapshot(),
		Errors: errs,
	}, nil
}

// UpdateField изменяет одно поле формы процесса.
// Изменение даты сбрасывает выбранное время.
func (uc *UseCase) UpdateField(_ context.Context, flowID string, field domain.FormField, value string) (*FlowSnapshot, error) {
	flow, err := uc.lookup(flowID)
	if err != nil {
		return nil, err
	}

	if field == domain.FieldDate {
		err = flow.SelectDate(value)
	} else {
		err = flow.SetField(field, value)
	}
	if err != nil {
		uc.logger.Warn("UpdateField: flow id=%s field=%s rejected: %v", flowID, field, err)
		return nil, err
	}

	snap := flow.Snapshot()
	return &snap, nil
}

// Get возвращает снимок процесса.
// Подтвержденный процесс после чтения удаляется из реестра.
func (uc *UseCase) Get(_ context.Context, flowID string) (*FlowSnapshot, error) {
	flow, err := uc.lookup(flowID)
	if err != nil {
		return nil, err
	}

	snap := flow.Snapshot()
	if snap.State == FlowConfirmed {
		uc.mu.Lock()
		delete(uc.flows, flowID)
		uc.mu.Unlock()
		uc.logger.Info("GetBooking: confirmed flow id=%s released", flowID)
	}
	return &snap, nil
}

// Close завершает процесс и удаляет его из реестра
func (uc *UseCase) Close(_ context.Context, flowID string) error {
	uc.mu.Lock()
	flow, ok := uc.flows[flowID]
	delete(uc.flows, flowID)
	uc.mu.Unlock()

	if !ok {
		uc.logger.Warn("CloseBooking: flow id=%s not found", flowID)
		return ErrFlowNotFound
	}

	flow.Close()
	uc.logger.Info("CloseBooking: flow id=%s closed", flowID)
	return nil
}

// Shutdown завершает все процессы (при остановке сервиса)
func (uc *UseCase) Shutdown() {
	uc.mu.Lock()
	flows := uc.flows
	uc.flows = make(map[string]*Flow)
	uc.mu.Unlock()

	for _, flow := range flows {
		flow.Close()
	}
	uc.logger.Info("Shutdown: %d booking flows closed", len(flows))
}

// evictIdle закрывает и удаляет процессы без изменений дольше ttl
func (uc *UseCase) evictIdle() {
	now := uc.clock.Now()

	uc.mu.Lock()
	expired := make([]*Flow, 0)
	for id, flow := range uc.flows {
		if idle, ok := flow.idleFor(now); ok && idle >= uc.ttl {
			expired = append(expired, flow)
			delete(uc.flows, id)
		}
	}
	uc.mu.Unlock()

	for _, flow := range expired {
		flow.Close()
	}
	if len(expired) > 0 {
		uc.logger.Info("evictIdle: %d idle booking flows removed", len(expired))
	}
}

func (uc *UseCase) lookup(flowID string) (*Flow, error) {
	uc.mu.RLock()
	flow, ok := uc.flows[flowID]
	uc.mu.RUnlock()

	if !ok {
		uc.logger.Warn("lookup: flow id=%s not found", flowID)
		return nil, ErrFlowNotFound
	}
	return flow, nil
}
