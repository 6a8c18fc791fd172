package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/salonsphere/booking-service/internal/domain"
	"github.com/salonsphere/booking-service/pkg/dbmetrics"
	"github.com/salonsphere/booking-service/pkg/psqlbuilder"
	"github.com/salonsphere/booking-service/pkg/types"
)

// Repository репозиторий справочных данных: салоны, услуги, отзывы
// и заблокированные слоты. Каталог заполняется миграциями и не меняется
// через API, поэтому репозиторий только читает.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListSalons возвращает все салоны каталога
func (r *Repository) ListSalons(ctx context.Context) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := salonSelect().
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSalons - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSalons - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salons := make([]*domain.Salon, 0)
	for rows.Next() {
		salon, err := scanSalon(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSalons - scan salon: %v", ErrScanRow, err)
		}
		salons = append(salons, salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSalons - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}

// GetSalon получает салон по ID
func (r *Repository) GetSalon(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := salonSelect().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalon - build select query: %v", ErrBuildQuery, err)
	}

	salon, err := scanSalon(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSalon - scan salon: %v", ErrScanRow, err)
	}

	return salon, nil
}

// ListServicesBySalon возвращает услуги салона
func (r *Repository) ListServicesBySalon(ctx context.Context, salonID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServicesBySalon - scan service: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServicesBySalon - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetService получает услугу салона по ID
// Услуга принадлежит ровно одному салону, поэтому выборка сразу по двум ключам.
func (r *Repository) GetService(ctx context.Context, salonID, serviceID int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceSelect().
		Where(squirrel.Eq{"id": serviceID, "salon_id": salonID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// ListReviewsByService возвращает отзывы на услугу
func (r *Repository) ListReviewsByService(ctx context.Context, serviceID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"customer_name",
		"rating",
		"comment",
		"review_date",
	).
		From("reviews").
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("review_date DESC, id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListReviewsByService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReviewsByService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.ServiceID,
			&review.CustomerName,
			&review.Rating,
			&review.Comment,
			&review.ReviewDate,
		); err != nil {
			return nil, fmt.Errorf("%w: ListReviewsByService - scan review: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListReviewsByService - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// GetSlotBlocks возвращает времена заблокированных слотов салона на дату
// (закрытые periods, технические перерывы). Слоты с этими временами
// помечаются как недоступные при генерации каталога слотов.
func (r *Repository) GetSlotBlocks(ctx context.Context, salonID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time").
		From("slot_blocks").
		Where(squirrel.Eq{"salon_id": salonID, "block_date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetSlotBlocks - scan block: %v", ErrScanRow, err)
		}
		blocks = append(blocks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSlotBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

func salonSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"description",
		"address",
		"phone",
		"salon_type",
		"capacity",
		"open_time",
		"close_time",
		"image_url",
	).From("salons")
}

func scanSalon(scan func(dest ...interface{}) error) (*domain.Salon, error) {
	var salon domain.Salon
	err := scan(
		&salon.ID,
		&salon.Name,
		&salon.Description,
		&salon.Address,
		&salon.Phone,
		&salon.Type,
		&salon.Capacity,
		&salon.OpenTime,
		&salon.CloseTime,
		&salon.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

func serviceSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"description",
		"duration_minutes",
		"price",
		"gender",
		"image_url",
	).From("services")
}

func scanService(scan func(dest ...interface{}) error) (*domain.Service, error) {
	var service domain.Service
	err := scan(
		&service.ID,
		&service.SalonID,
		&service.Name,
		&service.Description,
		&service.DurationMinutes,
		&service.Price,
		&service.Gender,
		&service.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}
