package get_available_masters

import (
	"context"
	"time"

	"github.com/bsmobile/salon-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListByMasterOnDate(ctx context.Context, masterID int64, date time.Time) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
}

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	ListBySpecialty(ctx context.Context, specialty string) ([]*domain.Master, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
