package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/enums"
)

// Store is a tenant-owned storefront (a "website" on the wire).
type Store struct {
	ID       uuid.UUID `gorm:"column:store_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index"`

	Code     string              `gorm:"column:store_code;not null;size:100"`
	Name     string              `gorm:"column:store_name;not null;size:255"`
	Domain   *string             `gorm:"column:domain;size:255"`
	Platform enums.StorePlatform `gorm:"column:platform;not null;size:20"`
	Timezone *string             `gorm:"column:timezone;size:64"`
	Currency *string             `gorm:"column:currency;size:3"`
	Status   enums.EntityStatus  `gorm:"column:status;not null;size:20;default:'ACTIVE'"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Orders []Order `gorm:"foreignKey:StoreID"`
}

// TableName overrides the default pluralization.
func (Store) TableName() string {
	return "stores"
}
