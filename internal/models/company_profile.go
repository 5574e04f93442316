package models

// CompanyProfile - профиль компании работодателя, один на пользователя
// с ролью "employer". CompanyName обязателен до публикации вакансий.
type CompanyProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	CompanySize string `json:"company_size"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	Description string `gorm:"type:text" json:"description"`
	LogoURL     string `json:"logo_url"`
	// RejectionReason хранится, а не только передается в уведомление:
	// причина отказа должна переживать сбой почты
	RejectionReason string `json:"rejection_reason,omitempty"`
}
