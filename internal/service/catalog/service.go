package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/bsmobile/salon-booking/internal/domain"
	catalogRepo "github.com/bsmobile/salon-booking/internal/infra/storage/catalog"
	"github.com/bsmobile/salon-booking/internal/service/catalog/models"
)

// Service сервис каталога: категории, услуги и мастера салона
type Service struct {
	catalogRepo CatalogRepository
	masterRepo  MasterRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, masterRepo MasterRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		masterRepo:  masterRepo,
		logger:      logger,
	}
}

// ListCategories получает все категории услуг
func (s *Service) ListCategories(ctx context.Context) (*models.CategoryListResponse, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		s.logger.Error("ListCategories: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCategories - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCategoryList(categories), nil
}

// ListServicesByCategory получает услуги категории
func (s *Service) ListServicesByCategory(ctx context.Context, categoryID int64) (*models.ServiceListResponse, error) {
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: categoryID must be positive", ErrInvalidInput)
	}

	// Категория должна существовать
	if _, err := s.catalogRepo.GetCategory(ctx, categoryID); err != nil {
		if errors.Is(err, catalogRepo.ErrCategoryNotFound) {
			s.logger.Warn("ListServicesByCategory: category id=%d not found", categoryID)
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("ListServicesByCategory: repository error for category id=%d: %v", categoryID, err)
		return nil, fmt.Errorf("%w: ListServicesByCategory - repository error: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServicesByCategory(ctx, categoryID)
	if err != nil {
		s.logger.Error("ListServicesByCategory: repository error for category id=%d: %v", categoryID, err)
		return nil, fmt.Errorf("%w: ListServicesByCategory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// ListServicesByPriceRange получает услуги в диапазоне цен [minPrice, maxPrice]
func (s *Service) ListServicesByPriceRange(ctx context.Context, minPrice, maxPrice float64) (*models.ServiceListResponse, error) {
	if minPrice < 0 || maxPrice < minPrice {
		return nil, fmt.Errorf("%w: invalid price range [%.2f, %.2f]", ErrInvalidInput, minPrice, maxPrice)
	}

	services, err := s.catalogRepo.ListServicesByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		s.logger.Error("ListServicesByPriceRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServicesByPriceRange - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// ListMasters получает мастеров салона, опционально фильтруя по специальности
func (s *Service) ListMasters(ctx context.Context, specialty *string) (*models.MasterListResponse, error) {
	var (
		masters []*domain.Master
		err     error
	)

	if specialty != nil && *specialty != "" {
		masters, err = s.masterRepo.ListBySpecialty(ctx, *specialty)
	} else {
		masters, err = s.masterRepo.List(ctx)
	}
	if err != nil {
		s.logger.Error("ListMasters: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMasters - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMasterList(masters), nil
}
