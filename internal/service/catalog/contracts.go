package catalog

import (
	"context"

	"github.com/bsmobile/salon-booking/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetService(ctx context.Context, id int64) (*domain.Service, error)
	ListServicesByCategory(ctx context.Context, categoryID int64) ([]*domain.Service, error)
	ListServicesByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*domain.Service, error)
}

// MasterRepository интерфейс репозитория мастеров
type MasterRepository interface {
	List(ctx context.Context) ([]*domain.Master, error)
	ListBySpecialty(ctx context.Context, specialty string) ([]*domain.Master, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
