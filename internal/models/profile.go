package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser          Role = "user"
	RoleAdmin         Role = "admin"
	RoleDistrictAdmin Role = "district_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleDistrictAdmin:
		return true
	}
	return false
}

// Profile carries the role and district facts of an identity. ID is the token subject;
// credentials live with the identity provider.
type Profile struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string    `gorm:"size:255" json:"name"`
	Phone              string    `gorm:"size:50" json:"phone"`
	Role               Role      `gorm:"size:20;not null;default:'user'" json:"role"`
	DivisionID         string    `gorm:"size:64" json:"division_id"`
	DistrictID         string    `gorm:"size:64;index" json:"district_id"`
	SelectedDistrictID string    `gorm:"size:64" json:"selected_district_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
