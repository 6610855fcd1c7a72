package model

import "time"

// LatestNews represents a news item shown to residents
type LatestNews struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Title       string     `gorm:"column:title;type:VARCHAR2(100);not null"`
	Description string     `gorm:"column:description;type:VARCHAR2(2000);not null"`
	NewsTime    *time.Time `gorm:"column:news_time"`
	Image       string     `gorm:"column:image;type:VARCHAR2(500)"`

	Lifecycle
}

// TableName specifies the table name for LatestNews
func (*LatestNews) TableName() string {
	return "latest_news"
}
