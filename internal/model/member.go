package model

import "time"

// Member represents a management-board member of a complex. Created once,
// never updated or deleted through the API.
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	ComplexesID uint32 `gorm:"column:complexes_id;not null"`
	Name        string `gorm:"column:name;type:VARCHAR2(50);not null"`
	Surname     string `gorm:"column:surname;type:VARCHAR2(50);not null"`
	Phone       string `gorm:"column:phone;type:VARCHAR2(20);not null"`
	Email       string `gorm:"column:email;type:VARCHAR2(100)"`
	Address     string `gorm:"column:address;type:VARCHAR2(255)"`
	IsMan       bool   `gorm:"column:is_man;not null"`

	// Username comparison is case-sensitive; BINARY collation on both Oracle
	// and SQLite, so the unique index enforces exactly that.
	Username string `gorm:"column:username;type:VARCHAR2(50);not null;uniqueIndex:idx_member_username"`
	Password string `gorm:"column:password;type:VARCHAR2(60);not null"` // bcrypt hash, never the plaintext
	DeviceID string `gorm:"column:device_id;type:VARCHAR2(36);not null"`

	CreatedDate time.Time  `gorm:"column:created_date;not null"`
	UpdatedDate *time.Time `gorm:"column:updated_date"`

	Complex *Complex `gorm:"foreignKey:ComplexesID"`
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "members"
}
