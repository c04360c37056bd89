package check_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsmobile/salon-booking/internal/availability"
	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/domain"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
	masterRepo "github.com/bsmobile/salon-booking/internal/infra/storage/master"
)

// UseCase use case для проверки доступности слота у конкретного мастера
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	masterRepo      MasterRepository
	calendarRules   *calendar.Rules
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	masterRepo MasterRepository,
	calendarRules *calendar.Rules,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		masterRepo:      masterRepo,
		calendarRules:   calendarRules,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case проверки доступности слота.
// Проверка консультативная: ответ true не резервирует слот,
// финальную проверку делает create_appointment в транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlot: service=%d, master=%d, date=%s, time=%s",
		req.ServiceID, req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	unavailable := &Response{
		ServiceID: req.ServiceID,
		MasterID:  req.MasterID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Available: false,
	}

	// 2. Прошедший момент, выходной или праздник — слот недоступен
	if !uc.calendarRules.IsBookable(req.Date, now) ||
		uc.calendarRules.IsPastDateTime(req.Date, req.StartTime, now) {
		uc.logger.Info("CheckSlot: slot %s %s is not bookable",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return unavailable, nil
	}

	// 3. Получаем услугу (неизвестная услуга — недоступен)
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CheckSlot: service id=%d not found", req.ServiceID)
			return unavailable, nil
		}
		uc.logger.Error("CheckSlot: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем существование мастера
	if _, err := uc.masterRepo.GetByID(ctx, req.MasterID); err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("CheckSlot: master id=%d not found", req.MasterID)
			return unavailable, nil
		}
		uc.logger.Error("CheckSlot: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	// 5. Интервал услуги должен помещаться до закрытия салона
	slotEnd, err := availability.ComputeEnd(req.StartTime, service.DurationMinutes)
	if err != nil || slotEnd.IsAfter(uc.calendarRules.Schedule().CloseTime()) {
		uc.logger.Info("CheckSlot: slot %s does not fit working hours", req.StartTime)
		return unavailable, nil
	}

	// 6. Проверяем занятость интервала у мастера
	appts, err := uc.appointmentRepo.ListByMasterOnDate(ctx, req.MasterID, req.Date)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to get appointments for master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master appointments: %v", ErrInternal, err)
	}

	available := availability.SlotFree(req.StartTime, slotEnd, appts)

	uc.logger.Info("CheckSlot: master=%d at %s %s available=%v",
		req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime, available)

	return &Response{
		ServiceID: req.ServiceID,
		MasterID:  req.MasterID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Available: available,
	}, nil
}
