package dto

import "hiringbooth/internal/models"

type CreateJobRequest struct {
	Title           string `json:"title" binding:"required" validate:"required,min=3,max=200"`
	Description     string `json:"description" binding:"required" validate:"required"`
	Requirements    string `json:"requirements"`
	Location        string `json:"location"`
	EmploymentType  string `json:"employment_type" validate:"omitempty,is-employment-type"`
	ExperienceLevel string `json:"experience_level"`
	Urgency         string `json:"urgency" validate:"omitempty,is-urgency"`
	SalaryMin       *int64 `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int64 `json:"salary_max" validate:"omitempty,min=0"`
}

type UpdateJobRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string `json:"description"`
	Requirements    *string `json:"requirements"`
	Location        *string `json:"location"`
	EmploymentType  *string `json:"employment_type" validate:"omitempty,is-employment-type"`
	ExperienceLevel *string `json:"experience_level"`
	Urgency         *string `json:"urgency" validate:"omitempty,is-urgency"`
	SalaryMin       *int64  `json:"salary_min" validate:"omitempty,min=0"`
	SalaryMax       *int64  `json:"salary_max" validate:"omitempty,min=0"`
	IsActive        *bool   `json:"is_active"`
}

type JobListQuery struct {
	Search         string `form:"q"`
	Location       string `form:"location"`
	EmploymentType string `form:"employment_type" validate:"omitempty,is-employment-type"`
	Urgency        string `form:"urgency" validate:"omitempty,is-urgency"`
	Page           int    `form:"page"`
	PageSize       int    `form:"page_size"`
}

type JobListResponse struct {
	Jobs     []models.Job `json:"jobs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}
