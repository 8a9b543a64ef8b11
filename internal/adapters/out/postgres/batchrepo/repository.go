package batchrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Add saves a new batch to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing batch to the database.
func (r *GormBatchRepository) Update(ctx context.Context, aggregate *batch.Batch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Where("id = ?", dto.ID).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("batch", aggregate.ID().String())
	}
	return nil
}

// Get retrieves a batch by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a batch with a row lock held until the transaction
// finishes.
func (r *GormBatchRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormBatchRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*batch.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetCreatedSince retrieves batches built at or after the given time, newest
// first.
func (r *GormBatchRepository) GetCreatedSince(ctx context.Context, since time.Time) ([]*batch.Batch, error) {
	var dtos []BatchDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&dtos, "created_at >= ?", since).Error
	if err != nil {
		return nil, err
	}

	batches := make([]*batch.Batch, 0, len(dtos))
	for _, dto := range dtos {
		b, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		batches = append(batches, b)
	}
	return batches, nil
}

// GetActiveByDriver retrieves the driver's current assigned or in-progress
// batch.
func (r *GormBatchRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*batch.Batch, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status IN ?", driverID.Bytes(),
			[]int{int(batch.Assigned), int(batch.InProgress)}).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active batch for driver", driverID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
