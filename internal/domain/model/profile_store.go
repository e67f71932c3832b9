package model

import "time"

// ProfileStore holds the single-row store settings shown on the
// storefront and used during checkout (QRIS image for prepaid orders).
type ProfileStore struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Logo      string    `gorm:"type:varchar(255)" json:"logo"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	City      string    `gorm:"type:varchar(255)" json:"city"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	Qris      string    `gorm:"type:varchar(255)" json:"qris"`
	Instagram string    `gorm:"type:varchar(255)" json:"instagram"`
	Facebook  string    `gorm:"type:varchar(255)" json:"facebook"`
	Tiktok    string    `gorm:"type:varchar(255)" json:"tiktok"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProfileStore) TableName() string { return "profile_stores" }
