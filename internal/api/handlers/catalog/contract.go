package catalog

import (
	"context"

	"github.com/bsmobile/salon-booking/internal/service/catalog/models"
)

type CatalogService interface {
	ListCategories(ctx context.Context) (*models.CategoryListResponse, error)
	ListServicesByCategory(ctx context.Context, categoryID int64) (*models.ServiceListResponse, error)
	ListServicesByPriceRange(ctx context.Context, minPrice, maxPrice float64) (*models.ServiceListResponse, error)
	ListMasters(ctx context.Context, specialty *string) (*models.MasterListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
