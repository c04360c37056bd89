package create_appointment

import (
	"time"

	"github.com/bsmobile/salon-booking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID пользователя
	ServiceID int64            // ID услуги
	MasterID  int64            // ID мастера
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала слота (например, "11:30")
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	UserID          int64            // ID пользователя
	ServiceID       int64            // ID услуги
	MasterID        int64            // ID мастера
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Снимок длительности услуги
	Price           float64          // Снимок цены услуги
	Status          string           // Статус записи

	// Денормализованные данные
	ServiceName string // Название услуги
	MasterName  string // Полное имя мастера

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
