package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/domain"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов на дату
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

// Execute выполняет use case получения доступных слотов.
// Операция перечисления деградирует к пустому списку: неизвестная услуга,
// прошедшая дата, выходной или праздник дают пустой ответ, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	emptyResponse := &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     []Slot{},
	}

	// 2. Прошедшая дата, выходной или праздник — слотов нет
	if !uc.calendarRules.IsBookable(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable (%s)",
			req.Date.Format(domain.DateFormat), calendar.DayOfWeekName(req.Date))
		return emptyResponse, nil
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return emptyResponse, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Мастера профильной специальности (по названию категории услуги)
	category, err := uc.catalogRepo.GetCategory(ctx, service.CategoryID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get category id=%d: %v", service.CategoryID, err)
		return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	masters, err := uc.masterRepo.ListBySpecialty(ctx, category.Name)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list masters for specialty %q: %v", category.Name, err)
		return nil, fmt.Errorf("%w: failed to list masters: %v", ErrInternal, err)
	}
	if len(masters) == 0 {
		uc.logger.Warn("GetAvailableSlots: no masters with specialty %q", category.Name)
		return emptyResponse, nil
	}

	// 5. Генерируем сетку слотов
	timeSlots, err := generateTimeSlots(uc.calendarRules.Schedule(), service.DurationMinutes, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Загружаем записи каждого мастера на дату одним проходом
	apptsByMaster, err := uc.loadAppointments(ctx, masters, req.Date)
	if err != nil {
		return nil, err
	}

	// 7. Оставляем слоты, где свободен хотя бы один мастер
	slots := make([]Slot, 0, len(timeSlots))
	for _, ts := range timeSlots {
		free, err := countFreeMasters(ts, service.DurationMinutes, apptsByMaster, masters)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to count free masters for slot %s: %v", ts, err)
			return nil, fmt.Errorf("%w: failed to count free masters: %v", ErrInternal, err)
		}
		candidate := domain.AvailableSlot{
			StartTime:       ts,
			DurationMinutes: service.DurationMinutes,
			FreeMasters:     free,
			TotalMasters:    len(masters),
		}
		if candidate.HasFreeMaster() {
			slots = append(slots, Slot(candidate))
		}
	}

	uc.logger.Info("GetAvailableSlots: %d available slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}

func (uc *UseCase) loadAppointments(ctx context.Context, masters []*domain.Master, date time.Time) (map[int64][]*domain.Appointment, error) {
	apptsByMaster := make(map[int64][]*domain.Appointment, len(masters))
	for _, m := range masters {
		appts, err := uc.appointmentRepo.ListByMasterOnDate(ctx, m.ID, date)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get appointments for master id=%d: %v", m.ID, err)
			return nil, fmt.Errorf("%w: failed to get master appointments: %v", ErrInternal, err)
		}
		apptsByMaster[m.ID] = appts
	}
	return apptsByMaster, nil
}
