package dto

import (
	"time"

	"fairhall/internal/domains/stall/model"
)

type RequestStallsRequest struct {
	StallIDs []string `json:"stall_ids" validate:"required,min=1,dive,required"`
}

type GenerateStallsRequest struct {
	Small   int    `json:"small"   validate:"omitempty,min=0"`
	Medium  int    `json:"medium"  validate:"omitempty,min=0"`
	Large   int    `json:"large"   validate:"omitempty,min=0"`
	Pattern string `json:"pattern" validate:"required,oneof=alphanumeric numeric"`
	Prefix  string `json:"prefix"  validate:"omitempty,max=10"`
	Confirm bool   `json:"confirm"`
}

func (r *GenerateStallsRequest) ToConfig() model.GenerateConfig {
	return model.GenerateConfig{
		Small:   r.Small,
		Medium:  r.Medium,
		Large:   r.Large,
		Pattern: model.NamingPattern(r.Pattern),
		Prefix:  r.Prefix,
	}
}

type StallResponse struct {
	ID           string             `json:"id"`
	Size         model.Size         `json:"size"`
	Price        int                `json:"price"`
	Status       model.Status       `json:"status"`
	BusinessName string             `json:"business_name,omitempty"`
	Email        string             `json:"email,omitempty"`
	RequestDate  *time.Time         `json:"request_date,omitempty"`
	ApprovedDate *time.Time         `json:"approved_date,omitempty"`
	MapPosition  *model.MapPosition `json:"map_position,omitempty"`
}

func (r *StallResponse) FromModel(m model.Stall) {
	r.ID = m.ID
	r.Size = m.Size
	r.Price = m.Price
	r.Status = m.Status
	r.BusinessName = m.BusinessName
	r.Email = m.Email
	r.RequestDate = m.RequestDate
	r.ApprovedDate = m.ApprovedDate
	r.MapPosition = m.MapPosition
}

type GetStallsResponse struct {
	Stalls []StallResponse `json:"stalls"`
}

func (r *GetStallsResponse) FromModels(models []model.Stall) {
	r.Stalls = make([]StallResponse, len(models))
	for i, m := range models {
		r.Stalls[i].FromModel(m)
	}
}

type StatsResponse struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Pending   int `json:"pending"`
	Reserved  int `json:"reserved"`
}

func (r *StatsResponse) FromStats(stats model.Stats) {
	r.Total = stats.Total
	r.Available = stats.Available
	r.Pending = stats.Pending
	r.Reserved = stats.Reserved
}
