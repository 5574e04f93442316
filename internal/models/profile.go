package models

import "gorm.io/datatypes"

// UserProfile - анкета соискателя, ровно одна на пользователя с ролью "user".
// Bio/Experience/Education приходят из rich-text редактора и могут содержать
// HTML-разметку; плоские потребители (экспорт, админ-список) обязаны
// прогонять их через htmltext.Strip.
type UserProfile struct {
	BaseModel
	UserID       string         `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	FullName     string         `json:"full_name"`
	Phone        string         `json:"phone"`
	Location     string         `json:"location"`
	Bio          string         `gorm:"type:text" json:"bio"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Experience   string         `gorm:"type:text" json:"experience"`
	Education    string         `gorm:"type:text" json:"education"`
	ResumeURL    string         `json:"resume_url"`
	LinkedinURL  string         `json:"linkedin_url"`
	GithubURL    string         `json:"github_url"`
	PortfolioURL string         `json:"portfolio_url"`
}
