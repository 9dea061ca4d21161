// Package markrepo persists the per-trip route version marks the device uses
// to tell externally-originated route changes apart from its own edits.
package markrepo

import (
	"github.com/google/uuid"
)

// MarkDTO is the database row for one trip's last-seen route version.
type MarkDTO struct {
	TripID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version int64
}

// TableName overrides GORM's default naming convention.
func (MarkDTO) TableName() string {
	return "route_version_marks"
}
