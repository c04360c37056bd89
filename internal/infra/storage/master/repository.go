package master

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bsmobile/salon-booking/internal/domain"
	"github.com/bsmobile/salon-booking/pkg/psqlbuilder"
	"github.com/bsmobile/salon-booking/pkg/txmanager"
)

// Repository репозиторий для работы с мастерами салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Master, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := masterSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Master
	err = executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &m.Name, &m.Surname, &m.Specialty)
	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan master: %v", ErrScanRow, err)
	}

	return &m, nil
}

// List получает всех мастеров салона
func (r *Repository) List(ctx context.Context) ([]*domain.Master, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := masterSelect().
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMasters(rows, "List")
}

// ListBySpecialty получает мастеров по специальности.
// Сопоставление строковое: specialty мастера должно совпадать
// с названием категории услуги.
func (r *Repository) ListBySpecialty(ctx context.Context, specialty string) ([]*domain.Master, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := masterSelect().
		Where(squirrel.Eq{"specialty": specialty}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpecialty - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanMasters(rows, "ListBySpecialty")
}

func masterSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "surname", "specialty").From("masters")
}

func scanMasters(rows *sql.Rows, op string) ([]*domain.Master, error) {
	masters := make([]*domain.Master, 0)
	for rows.Next() {
		var m domain.Master
		if err := rows.Scan(&m.ID, &m.Name, &m.Surname, &m.Specialty); err != nil {
			return nil, fmt.Errorf("%w: %s - scan master: %v", ErrScanRow, op, err)
		}
		masters = append(masters, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return masters, nil
}
