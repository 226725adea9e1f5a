package dto

import (
	stallDto "fairhall/internal/domains/stall/model/dto"
)

type UploadFloorPlanRequest struct {
	// Image is a base64 data URI, capped at 10MB of encoded payload.
	Image string `json:"image" validate:"required,mimetypes=image/*,maxfilesize=10"`
}

type UploadFloorPlanResponse struct {
	ImageURL string `json:"image_url,omitempty"`
}

type FloorPlanResponse struct {
	Image string `json:"image"`
}

type ClearFloorPlanRequest struct {
	Confirm bool `json:"confirm"`
}

type PositionRequest struct {
	StallID string  `json:"stall_id" validate:"required"`
	X       float64 `json:"x"        validate:"min=0,max=100"`
	Y       float64 `json:"y"        validate:"min=0,max=100"`
}

type LocateRequest struct {
	X float64 `json:"x" validate:"min=0,max=100"`
	Y float64 `json:"y" validate:"min=0,max=100"`
}

type LocateResponse struct {
	Found bool                   `json:"found"`
	Stall *stallDto.StallResponse `json:"stall,omitempty"`
}
