package get_availability

import (
	"context"
	"fmt"
)

// UseCase use case для получения доступности врача
type UseCase struct {
	directory DoctorDirectory
	resolver  *Resolver
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(directory DoctorDirectory, resolver *Resolver, logger Logger) *UseCase {
	return &UseCase{
		directory: directory,
		resolver:  resolver,
		logger:    logger,
	}
}

// Execute возвращает доступные даты врача и, если указана дата, слоты на неё
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: doctor=%s, date=%q", req.DoctorID, req.Date)

	// 1. Валидация входных данных
	if req.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	// 2. Получаем врача
	doctor, ok := uc.directory.FindByID(req.DoctorID)
	if !ok {
		uc.logger.Warn("GetAvailability: doctor id=%s not found", req.DoctorID)
		return nil, ErrDoctorNotFound
	}

	// 3. Доступные даты
	resp := &Response{
		DoctorID: doctor.ID,
		Dates:    uc.resolver.AvailableDates(doctor),
		Date:     req.Date,
		Slots:    []string{},
	}

	// 4. Слоты на выбранную дату
	if req.Date != "" {
		resp.Slots, resp.Offered = lookupSlots(doctor, req.Date)
	}

	uc.logger.Info("GetAvailability: doctor=%s has %d dates, %d slots on %q",
		doctor.ID, len(resp.Dates), len(resp.Slots), req.Date)

	return resp, nil
}
