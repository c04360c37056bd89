// Package availability содержит интервальную арифметику движка доступности:
// вычисление конца интервала записи и каноническую проверку пересечения
// полуоткрытых интервалов [start, end).
package availability

import (
	"github.com/bsmobile/salon-booking/internal/domain"
	"github.com/bsmobile/salon-booking/pkg/types"
)

// ComputeEnd вычисляет конец интервала записи: start + durationMinutes.
// Возвращает ошибку для некорректного start или при выходе за пределы суток.
func ComputeEnd(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	return start.AddMinutes(durationMinutes)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd)
// и [bStart, bEnd). Каноническая двухчленная форма со строгими сравнениями:
// интервалы, граничащие ровно в одной точке, НЕ пересекаются.
//
// Примеры:
//   - [11:30, 12:00) и [11:20, 11:40) → пересекаются
//   - [11:30, 12:00) и [11:00, 11:30) → не пересекаются (граничат)
//   - [11:30, 12:00) и [12:00, 12:30) → не пересекаются (граничат)
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// SlotFree проверяет, что интервал [start, end) не пересекается ни с одной
// активной (не отмененной) записью из appts. Записи с невычислимым концом
// интервала пропускаются (fail closed на уровне вызывающего кода).
func SlotFree(start, end types.TimeString, appts []*domain.Appointment) bool {
	for _, appt := range appts {
		if !appt.IsActive() {
			continue
		}

		apptEnd, err := appt.EndTime()
		if err != nil {
			continue
		}

		if Overlaps(start, end, appt.StartTime, apptEnd) {
			return false
		}
	}
	return true
}
