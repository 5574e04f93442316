package models

import "time"

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`
	// IsApproved имеет смысл только для работодателей; админ всегда одобрен
	IsApproved   bool       `gorm:"default:false" json:"is_approved"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	OTPCode      string     `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	// Relations
	Profile        *UserProfile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"profile,omitempty"`
	CompanyProfile *CompanyProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"company_profile,omitempty"`
	Applications   []Application   `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"-"`
}
