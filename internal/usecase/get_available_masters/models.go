package get_available_masters

import (
	"time"

	"github.com/bsmobile/salon-booking/pkg/types"
)

// Request модель запроса свободных мастеров на слот
type Request struct {
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Время начала слота
}

// Master свободный мастер
type Master struct {
	ID        int64  // ID мастера
	FullName  string // Полное имя для отображения
	Specialty string // Специальность
}

// Response модель ответа со списком свободных мастеров.
// Для недоступного слота (прошлое, выходной, занято) список пуст.
type Response struct {
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата
	StartTime types.TimeString // Время начала
	Masters   []Master         // Свободные мастера профильной специальности
}
