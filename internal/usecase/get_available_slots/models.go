package get_available_slots

import (
	"time"

	"github.com/bsmobile/salon-booking/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата (без времени)
}

// Slot доступный слот с числом свободных мастеров
type Slot struct {
	StartTime       types.TimeString // Время начала слота
	DurationMinutes int              // Длительность услуги
	FreeMasters     int              // Свободных мастеров профильной специальности
	TotalMasters    int              // Всего мастеров профильной специальности
}

// Response модель ответа со списком доступных слотов.
// Для прошедшей даты, выходного или праздника список пуст.
type Response struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата
	Slots     []Slot    // Доступные слоты (только со свободными мастерами)
}
