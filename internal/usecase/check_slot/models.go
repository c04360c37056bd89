package check_slot

import (
	"time"

	"github.com/bsmobile/salon-booking/pkg/types"
)

// Request модель запроса проверки доступности слота у мастера
type Request struct {
	ServiceID int64            // ID услуги
	MasterID  int64            // ID мастера
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Время начала слота
}

// Response модель ответа проверки доступности.
// Любая причина недоступности (прошлое, выходной, неизвестная услуга
// или мастер, занятый интервал) дает Available = false.
type Response struct {
	ServiceID int64            // ID услуги
	MasterID  int64            // ID мастера
	Date      time.Time        // Дата
	StartTime types.TimeString // Время начала
	Available bool             // Свободен ли интервал у мастера
}
