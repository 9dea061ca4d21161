package markrepo

import (
	"context"
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMarkRepository implements ports.RouteVersionMarks using GORM.
type GormMarkRepository struct {
	db *gorm.DB
}

// NewGormMarkRepository creates a new GORM route version mark repository.
func NewGormMarkRepository(db *gorm.DB) *GormMarkRepository {
	return &GormMarkRepository{db: db}
}

// Get returns the stored mark for the trip and whether one exists.
// A trip that was never fetched on this device has no mark; that is not an
// error.
func (r *GormMarkRepository) Get(ctx context.Context, tripID kernel.UUID) (int64, bool, error) {
	if err := tripID.Validate(); err != nil {
		return 0, false, err
	}

	var dto MarkDTO
	if err := r.db.WithContext(ctx).First(&dto, "trip_id = ?", tripID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return dto.Version, true, nil
}

// Put stores the mark, overwriting any previous value for the trip.
func (r *GormMarkRepository) Put(ctx context.Context, tripID kernel.UUID, version int64) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	dto := MarkDTO{
		TripID:  tripID.Bytes(),
		Version: version,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"version"}),
		}).
		Create(&dto).Error
}
