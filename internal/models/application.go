package models

import "time"

// Application - отклик соискателя на вакансию.
// Пара (JobID, ApplicantID) уникальна на уровне индекса, а не только
// проверки в сервисе: два конкурентных отклика не должны пройти оба.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID string            `gorm:"type:uuid;not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	// ReviewedAt ставится при каждом переходе из pending и перештамповывается
	// при повторной установке того же статуса
	ReviewedAt *time.Time `json:"reviewed_at"`

	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}
