package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bsmobile/salon-booking/internal/domain"
	"github.com/bsmobile/salon-booking/pkg/psqlbuilder"
	"github.com/bsmobile/salon-booking/pkg/txmanager"
)

// Repository репозиторий каталога: категории и услуги салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCategory получает категорию по ID
func (r *Repository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategory - build select query: %v", ErrBuildQuery, err)
	}

	var category domain.Category
	err = executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &category.Name)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCategory - scan category: %v", ErrScanRow, err)
	}

	return &category, nil
}

// ListCategories получает все категории услуг
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("categories").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan category: %v", ErrScanRow, err)
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.Name,
		&service.CategoryID,
		&service.Price,
		&service.DurationMinutes,
	)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &service, nil
}

// ListServicesByCategory получает услуги категории
func (r *Repository) ListServicesByCategory(ctx context.Context, categoryID int64) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.Eq{"category_id": categoryID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByCategory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByCategory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows, "ListServicesByCategory")
}

// ListServicesByPriceRange получает услуги в диапазоне цен [minPrice, maxPrice]
func (r *Repository) ListServicesByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.GtOrEq{"price": minPrice}).
		Where(squirrel.LtOrEq{"price": maxPrice}).
		OrderBy("price ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByPriceRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByPriceRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows, "ListServicesByPriceRange")
}

func serviceSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"category_id",
		"price",
		"duration_minutes",
	).From("services")
}

func scanServices(rows *sql.Rows, op string) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)
	for rows.Next() {
		var service domain.Service
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.CategoryID,
			&service.Price,
			&service.DurationMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan service: %v", ErrScanRow, op, err)
		}
		services = append(services, &service)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return services, nil
}
