// Package journalrepo persists the last transmitted location sample so the
// reporting throttle's distance reference survives a process restart.
package journalrepo

import (
	"time"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"
)

// journalRowID is the fixed primary key: the journal holds a single row.
const journalRowID = 1

// SampleDTO is the database row for the last transmitted sample.
type SampleDTO struct {
	ID         int `gorm:"primaryKey"`
	Lat        float64
	Lng        float64
	Accuracy   float64
	Heading    *float64
	Speed      *float64
	CapturedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (SampleDTO) TableName() string {
	return "last_sent_sample"
}

// fromDomain converts a sample to its database representation.
func fromDomain(sample kernel.LocationSample) SampleDTO {
	return SampleDTO{
		ID:         journalRowID,
		Lat:        sample.Point.Lat(),
		Lng:        sample.Point.Lng(),
		Accuracy:   sample.Accuracy,
		Heading:    sample.Heading,
		Speed:      sample.Speed,
		CapturedAt: sample.CapturedAt,
	}
}

// toDomain reconstructs a validated sample from a database row.
func toDomain(dto SampleDTO) (kernel.LocationSample, error) {
	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return kernel.LocationSample{}, err
	}

	return kernel.NewLocationSample(point, dto.Accuracy, dto.Heading, dto.Speed, dto.CapturedAt)
}
