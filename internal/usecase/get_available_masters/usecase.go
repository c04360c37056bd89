package get_available_masters

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsmobile/salon-booking/internal/availability"
	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/domain"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
)

// UseCase use case для получения свободных мастеров на конкретный слот
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

// Execute выполняет use case получения свободных мастеров.
// Как и другие операции перечисления, деградирует к пустому списку:
// неизвестная услуга, прошедший момент или выходной дают пустой ответ.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableMasters: service=%d, date=%s, time=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableMasters: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	emptyResponse := &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Masters:   []Master{},
	}

	// 2. Прошедший момент, выходной или праздник — мастеров нет
	if !uc.calendarRules.IsBookable(req.Date, now) ||
		uc.calendarRules.IsPastDateTime(req.Date, req.StartTime, now) {
		uc.logger.Info("GetAvailableMasters: slot %s %s is not bookable",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return emptyResponse, nil
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableMasters: service id=%d not found", req.ServiceID)
			return emptyResponse, nil
		}
		uc.logger.Error("GetAvailableMasters: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Интервал услуги должен помещаться до закрытия салона
	slotEnd, err := availability.ComputeEnd(req.StartTime, service.DurationMinutes)
	if err != nil || slotEnd.IsAfter(uc.calendarRules.Schedule().CloseTime()) {
		uc.logger.Info("GetAvailableMasters: slot %s does not fit working hours", req.StartTime)
		return emptyResponse, nil
	}

	// 5. Мастера профильной специальности
	category, err := uc.catalogRepo.GetCategory(ctx, service.CategoryID)
	if err != nil {
		uc.logger.Error("GetAvailableMasters: failed to get category id=%d: %v", service.CategoryID, err)
		return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	masters, err := uc.masterRepo.ListBySpecialty(ctx, category.Name)
	if err != nil {
		uc.logger.Error("GetAvailableMasters: failed to list masters for specialty %q: %v", category.Name, err)
		return nil, fmt.Errorf("%w: failed to list masters: %v", ErrInternal, err)
	}

	// 6. Оставляем мастеров со свободным интервалом
	free := make([]Master, 0, len(masters))
	for _, m := range masters {
		appts, err := uc.appointmentRepo.ListByMasterOnDate(ctx, m.ID, req.Date)
		if err != nil {
			uc.logger.Error("GetAvailableMasters: failed to get appointments for master id=%d: %v", m.ID, err)
			return nil, fmt.Errorf("%w: failed to get master appointments: %v", ErrInternal, err)
		}

		if availability.SlotFree(req.StartTime, slotEnd, appts) {
			free = append(free, Master{
				ID:        m.ID,
				FullName:  m.FullName(),
				Specialty: m.Specialty,
			})
		}
	}

	uc.logger.Info("GetAvailableMasters: %d free masters for service=%d at %s %s",
		len(free), req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Masters:   free,
	}, nil
}
