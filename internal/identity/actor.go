// Package identity turns a verified token into the acting user of a request.
package identity

import (
	"github.com/amarjela/district-backend/internal/models"
	"github.com/google/uuid"
)

// Actor is the caller of a service operation.
type Actor struct {
	ID         uuid.UUID
	Name       string
	Role       models.Role
	DivisionID string
	DistrictID string
}

// IsAdmin is true for full and district-scoped admins.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleDistrictAdmin
}

func (a Actor) IsDistrictAdmin() bool {
	return a.Role == models.RoleDistrictAdmin
}

// CanAccessDistrict is false only for a district admin looking outside their district.
func (a Actor) CanAccessDistrict(districtID string) bool {
	if a.Role == models.RoleDistrictAdmin {
		return districtID == a.DistrictID
	}
	return true
}

// IDPtr returns nil for actors without a stored identity, such as token-based admins.
func (a Actor) IDPtr() *uuid.UUID {
	if a.ID == uuid.Nil {
		return nil
	}
	id := a.ID
	return &id
}

func FromProfile(p models.Profile) Actor {
	return Actor{
		ID:         p.ID,
		Name:       p.Name,
		Role:       p.Role,
		DivisionID: p.DivisionID,
		DistrictID: p.DistrictID,
	}
}
