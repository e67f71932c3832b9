package model

import (
	"time"

	"gorm.io/gorm"
)

// StringList is stored as a jsonb column.
type StringList []string

type Product struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string     `gorm:"type:varchar(280);uniqueIndex;not null" json:"slug"`
	CategoryID  int64      `gorm:"not null;index" json:"category_id"`
	Stock       int64      `gorm:"not null" json:"stock"`
	Price       int64      `gorm:"not null" json:"price"`
	Weight      int64      `gorm:"not null;default:0" json:"weight"` // grams, used for shipping quotes
	Description string     `gorm:"type:text" json:"description"`
	Images      StringList `gorm:"type:jsonb;serializer:json" json:"images"`
	Sizes       StringList `gorm:"type:jsonb;serializer:json" json:"sizes"`
	Colors      StringList `gorm:"type:jsonb;serializer:json" json:"colors"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
