package model

// Indonesian administrative region hierarchy:
// province > regency (kabupaten/kota) > district (kecamatan) >
// village (desa/kelurahan). Static reference data, read-only for the
// application; IDs follow the government numbering so they are not
// auto-incremented.

type Province struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

type Regency struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	ProvinceID int64  `gorm:"not null;index" json:"province_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
}

func (Regency) TableName() string { return "regencies" }

type District struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	RegencyID int64  `gorm:"not null;index" json:"regency_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
}

type Village struct {
	ID         int64  `gorm:"primaryKey" json:"id"`
	DistrictID int64  `gorm:"not null;index" json:"district_id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
}
