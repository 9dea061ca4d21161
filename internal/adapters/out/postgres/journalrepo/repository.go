package journalrepo

import (
	"context"
	"errors"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJournalRepository implements ports.SampleJournal using GORM.
type GormJournalRepository struct {
	db *gorm.DB
}

// NewGormJournalRepository creates a new GORM sample journal repository.
func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

// LastSent returns the last transmitted sample, or nil when none was
// recorded yet.
func (r *GormJournalRepository) LastSent(ctx context.Context) (*kernel.LocationSample, error) {
	var dto SampleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", journalRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sample, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	return &sample, nil
}

// SetLastSent overwrites the recorded sample.
func (r *GormJournalRepository) SetLastSent(ctx context.Context, sample kernel.LocationSample) error {
	if err := sample.Point.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sample)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "accuracy", "heading", "speed", "captured_at"}),
		}).
		Create(&dto).Error
}
