package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsmobile/salon-booking/internal/availability"
	"github.com/bsmobile/salon-booking/internal/calendar"
	"github.com/bsmobile/salon-booking/internal/domain"
	appointmentRepo "github.com/bsmobile/salon-booking/internal/infra/storage/appointment"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
	masterRepo "github.com/bsmobile/salon-booking/internal/infra/storage/master"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	masterRepo      MasterRepository
	calendarRules   *calendar.Rules
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	masterRepo MasterRepository,
	calendarRules *calendar.Rules,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		masterRepo:      masterRepo,
		calendarRules:   calendarRules,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверки занятости и вставка выполняются в сериализуемой транзакции
// с блокировкой записей мастера на дату — это закрывает гонку
// параллельного создания записей на один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, service=%d, master=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.MasterID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Календарные проверки: прошлое, выходной, праздник
	if uc.calendarRules.IsPastDate(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}
	if uc.calendarRules.IsSalonHoliday(req.Date) {
		uc.logger.Warn("CreateAppointment: salon is closed on %s (%s)",
			req.Date.Format(domain.DateFormat), calendar.DayOfWeekName(req.Date))
		return nil, ErrSalonClosed
	}
	if uc.calendarRules.IsPastDateTime(req.Date, req.StartTime, now) {
		uc.logger.Warn("CreateAppointment: time %s %s is in the past", req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrTimeInPast
	}

	// 3. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем мастера и проверяем соответствие специальности
	master, err := uc.masterRepo.GetByID(ctx, req.MasterID)
	if err != nil {
		if errors.Is(err, masterRepo.ErrMasterNotFound) {
			uc.logger.Warn("CreateAppointment: master id=%d not found", req.MasterID)
			return nil, ErrMasterNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get master id=%d: %v", req.MasterID, err)
		return nil, fmt.Errorf("%w: failed to get master: %v", ErrInternal, err)
	}

	category, err := uc.catalogRepo.GetCategory(ctx, service.CategoryID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get category id=%d: %v", service.CategoryID, err)
		return nil, fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}
	if master.Specialty != category.Name {
		uc.logger.Warn("CreateAppointment: master id=%d specialty %q does not match category %q",
			master.ID, master.Specialty, category.Name)
		return nil, ErrMasterSpecialtyMismatch
	}

	// 5. Проверяем, что слот в рабочих часах и выровнен по сетке
	if err := validateTimeSlot(req.StartTime, service.DurationMinutes, uc.calendarRules.Schedule()); err != nil {
		uc.logger.Warn("CreateAppointment: time slot validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 6. Проверки занятости и вставка — в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. У пользователя не должно быть записи на тот же момент
		userBusy, err := uc.appointmentRepo.ExistsForUserAtTime(txCtx, req.UserID, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check user appointments: %v", err)
			return fmt.Errorf("%w: failed to check user appointments: %v", ErrInternal, err)
		}
		if userBusy {
			uc.logger.Warn("CreateAppointment: user id=%d already booked at %s %s",
				req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrUserAlreadyBooked
		}

		// 6.2. Точный дубликат записи
		duplicate, err := uc.appointmentRepo.ExistsExact(txCtx, req.UserID, req.ServiceID, req.MasterID, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check duplicates: %v", err)
			return fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
		}
		if duplicate {
			uc.logger.Warn("CreateAppointment: duplicate appointment for user id=%d", req.UserID)
			return ErrDuplicateAppointment
		}

		// 6.3. Записи мастера на дату с блокировкой (FOR UPDATE)
		appts, err := uc.appointmentRepo.ListByMasterOnDate(txCtx, req.MasterID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get master appointments: %v", err)
			return fmt.Errorf("%w: failed to get master appointments: %v", ErrInternal, err)
		}

		// 6.4. Интервал [start, start+duration) должен быть свободен
		slotEnd, err := availability.ComputeEnd(req.StartTime, service.DurationMinutes)
		if err != nil {
			return fmt.Errorf("%w: failed to compute slot end: %v", ErrInternal, err)
		}
		if !availability.SlotFree(req.StartTime, slotEnd, appts) {
			uc.logger.Warn("CreateAppointment: slot %s-%s is taken for master id=%d",
				req.StartTime, slotEnd, req.MasterID)
			return ErrSlotNotAvailable
		}

		// 6.5. Создаем запись со снимками цены и длительности услуги
		appt := &domain.Appointment{
			UserID:          req.UserID,
			ServiceID:       req.ServiceID,
			MasterID:        req.MasterID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Price:           service.Price,
			Status:          domain.StatusFuture,
			ServiceName:     service.Name,
			MasterName:      master.FullName(),
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrDuplicateAppointment) {
				return ErrDuplicateAppointment
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ServiceID:       result.ServiceID,
		MasterID:        result.MasterID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Price:           result.Price,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		MasterName:      result.MasterName,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
