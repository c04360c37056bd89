package get_available_slots

import (
	"time"

	"github.com/bsmobile/salon-booking/internal/availability"
	"github.com/bsmobile/salon-booking/internal/domain"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// generateTimeSlots генерирует сетку слотов на день: от открытия салона
// с фиксированным шагом, пока интервал услуги помещается до закрытия.
// Для сегодняшней даты уже начавшиеся слоты отбрасываются.
func generateTimeSlots(
	schedule domain.SalonSchedule,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	openTime := schedule.OpenTime()
	closeTime := schedule.CloseTime()

	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		slotEnd, err := currentSlot.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(schedule.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
	}

	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Сегодня: оставляем только слоты, которые еще не начались
	currentTime := types.NewTimeString(now)
	futureSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if slot.IsAfter(currentTime) {
			futureSlots = append(futureSlots, slot)
		}
	}

	return futureSlots, nil
}

// countFreeMasters считает мастеров, у которых интервал [slot, slot+duration)
// свободен от активных записей
func countFreeMasters(
	slot types.TimeString,
	durationMinutes int,
	apptsByMaster map[int64][]*domain.Appointment,
	masters []*domain.Master,
) (int, error) {
	slotEnd, err := availability.ComputeEnd(slot, durationMinutes)
	if err != nil {
		return 0, err
	}

	free := 0
	for _, m := range masters {
		if availability.SlotFree(slot, slotEnd, apptsByMaster[m.ID]) {
			free++
		}
	}

	return free, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
