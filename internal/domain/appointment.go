package domain

import (
	"time"

	"github.com/bsmobile/salon-booking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	// StatusFuture запись еще не состоялась
	StatusFuture AppointmentStatus = "future"
	// StatusPast запись состоялась (переводится автоматически, см. status sweep)
	StatusPast AppointmentStatus = "past"
	// StatusCancelled запись отменена клиентом; терминальный статус
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus валидирует строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusFuture, StatusPast, StatusCancelled:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Appointment represents a client appointment in the salon
type Appointment struct {
	ID        int64
	UserID    int64
	ServiceID int64
	MasterID  int64

	Date      time.Time        // дата записи (без времени)
	StartTime types.TimeString // время начала, "HH:MM"
	// Снимок длительности услуги на момент записи; вместе со StartTime
	// задает полуоткрытый интервал [start, start+duration)
	DurationMinutes int
	// Снимок цены услуги на момент записи; НЕ пересчитывается
	// из актуальной цены услуги
	Price float64

	Status AppointmentStatus

	// Денормализованные данные для истории
	ServiceName string
	MasterName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its interval.
// Прошедшие записи остаются занятыми (историческая занятость),
// только отмена освобождает интервал.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled.
// past и cancelled — терминальные статусы.
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusFuture
}

// EndTime возвращает время окончания интервала записи
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}
