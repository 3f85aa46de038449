package model

import (
	"time"
)

// DistrictModel mirrors the 'districts' table.
type DistrictModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Locations []LocationModel `gorm:"foreignKey:DistrictID"`
}

// TableName explicitly sets the table name for GORM.
func (DistrictModel) TableName() string {
	return "districts"
}

// LocationModel mirrors the 'locations' table. The owning district never
// changes after creation.
type LocationModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	DistrictID int64  `gorm:"not null;index"`
	Name       string `gorm:"type:varchar(100);not null"`
	Code       string `gorm:"type:varchar(30)"`
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(50)"`
	Zip        string `gorm:"type:varchar(20)"`
	IsActive   bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
