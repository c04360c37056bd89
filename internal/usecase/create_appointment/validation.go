package create_appointment

import (
	"fmt"

	"github.com/bsmobile/salon-booking/internal/domain"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.MasterID <= 0 {
		return fmt.Errorf("%w: masterID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateTimeSlot проверяет, что слот лежит в рабочих часах салона
// и выровнен по сетке слотов, а интервал целиком помещается до закрытия
func validateTimeSlot(start types.TimeString, durationMinutes int, schedule domain.SalonSchedule) error {
	startMinutes, err := start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	openMinutes := schedule.OpenHour * 60
	closeMinutes := schedule.CloseHour * 60

	if startMinutes < openMinutes {
		return fmt.Errorf("%w: salon opens at %s", ErrInvalidTimeSlot, schedule.OpenTime())
	}

	if (startMinutes-openMinutes)%schedule.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start time must be aligned to %d-minute grid", ErrInvalidTimeSlot, schedule.SlotStepMinutes)
	}

	if startMinutes+durationMinutes > closeMinutes {
		return fmt.Errorf("%w: appointment must end by %s", ErrInvalidTimeSlot, schedule.CloseTime())
	}

	return nil
}
