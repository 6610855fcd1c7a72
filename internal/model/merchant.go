package model

// Merchant represents a merchant listing. Same shape as Complex minus the
// opening year.
type Merchant struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Title       string `gorm:"column:title;type:VARCHAR2(100);not null"`
	Address     string `gorm:"column:address;type:VARCHAR2(255)"`
	Phone       string `gorm:"column:phone;type:VARCHAR2(20);not null"`
	Email       string `gorm:"column:email;type:VARCHAR2(100)"`
	Web         string `gorm:"column:web;type:VARCHAR2(100)"`
	Description string `gorm:"column:description;type:VARCHAR2(2000)"`
	Image       string `gorm:"column:image;type:VARCHAR2(500)"`

	Lifecycle
}

// TableName specifies the table name for Merchant
func (*Merchant) TableName() string {
	return "merchants"
}
