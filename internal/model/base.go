package model

import (
	"time"
)

// Lifecycle is the creation/update/soft-delete state shared by the catalog
// entities. Deactivate flips the flag and stamps updated_date together, so
// an inactive row always carries the time it was deactivated.
type Lifecycle struct {
	CreatedDate time.Time  `gorm:"column:created_date;not null"`
	UpdatedDate *time.Time `gorm:"column:updated_date"`
	IsActive    bool       `gorm:"column:is_active;not null"`
}

// Init sets the state of a freshly created row.
func (l *Lifecycle) Init(now time.Time) {
	l.CreatedDate = now
	l.UpdatedDate = nil
	l.IsActive = true
}

// Touch stamps the row as updated.
func (l *Lifecycle) Touch(now time.Time) {
	l.UpdatedDate = &now
}

// Deactivate soft-deletes the row. This is terminal: nothing transitions a
// row back to active.
func (l *Lifecycle) Deactivate(now time.Time) {
	l.IsActive = false
	l.UpdatedDate = &now
}
