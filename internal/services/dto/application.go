package dto

import "hiringbooth/internal/models"

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter" binding:"required" validate:"required"`
}

type UpdateApplicationStatusRequest struct {
	// Сырой статус; "reviewed" принимается как синоним "viewed"
	Status string `json:"status" binding:"required" validate:"required,is-application-status"`
}

type ApplicationResponse struct {
	Application *models.Application `json:"application"`
}

type ApplicationListResponse struct {
	Applications []models.Application `json:"applications"`
	Total        int                  `json:"total"`
}
