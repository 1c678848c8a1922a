package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	ContentID uuid.UUID `json:"content_id"`
	Reason    string    `json:"reason"`
}

type ResolveReportRequest struct {
	Action string `json:"action"` // ignore, ban_content
}

type SetStatusRequest struct {
	Status          string `json:"status"`
	ExpectedVersion *int64 `json:"expected_version"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type CategoryRequest struct {
	Name         string `json:"name"`
	SchemaKey    string `json:"schema_key"`
	Icon         string `json:"icon"`
	GroupName    string `json:"group_name"`
	Color        string `json:"color"`
	Active       *bool  `json:"active"`
	DisplayOrder int    `json:"display_order"`
}

type ToggleCategoryRequest struct {
	Active bool `json:"active"`
}

type ProfileRequest struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	DivisionID         string `json:"division_id"`
	DistrictID         string `json:"district_id"`
	SelectedDistrictID string `json:"selected_district_id"`
}

type SetRoleRequest struct {
	Role       string `json:"role"`
	DistrictID string `json:"district_id"`
}

type SettingRequest struct {
	Value string `json:"value"`
	Type  string `json:"type"` // string, bool, int, json
}
