package model

import "time"

// Comment represents a visitor comment. Unlike its siblings it carries no
// updated_date column, so its soft delete flips is_active only.
type Comment struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Name        string `gorm:"column:name;type:VARCHAR2(100);not null"`
	Phone       string `gorm:"column:phone;type:VARCHAR2(20);not null"`
	Email       string `gorm:"column:email;type:VARCHAR2(100)"`
	Description string `gorm:"column:description;type:VARCHAR2(2000)"`

	CreatedDate time.Time `gorm:"column:created_date;not null"`
	IsActive    bool      `gorm:"column:is_active;not null"`
}

// TableName specifies the table name for Comment
func (*Comment) TableName() string {
	return "comments"
}

// Deactivate soft-deletes the comment.
func (c *Comment) Deactivate() {
	c.IsActive = false
}
