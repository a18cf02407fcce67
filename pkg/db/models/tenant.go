package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/enums"
)

// Tenant is the root of the ownership hierarchy; every other record
// belongs to exactly one tenant.
type Tenant struct {
	ID         uuid.UUID          `gorm:"column:tenant_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ExternalID string             `gorm:"column:external_id;not null;size:255"`
	Name       string             `gorm:"column:tenant_name;not null;size:255"`
	Status     enums.EntityStatus `gorm:"column:status;not null;size:20;default:'ACTIVE'"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time          `gorm:"column:updated_at;autoUpdateTime"`

	Stores []Store `gorm:"foreignKey:TenantID"`
}

// TableName overrides the default pluralization.
func (Tenant) TableName() string {
	return "tenants"
}
