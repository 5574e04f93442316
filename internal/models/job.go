package models

type Job struct {
	BaseModel
	EmployerID      string     `gorm:"type:uuid;index;not null" json:"employer_id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Requirements    string     `gorm:"type:text" json:"requirements"`
	Location        string     `json:"location"`
	EmploymentType  string     `gorm:"type:varchar(30)" json:"employment_type"`
	ExperienceLevel string     `gorm:"type:varchar(30)" json:"experience_level"`
	Urgency         JobUrgency `gorm:"type:varchar(20);default:'not_urgent'" json:"urgency"`
	SalaryMin       *int64     `json:"salary_min"`
	SalaryMax       *int64     `json:"salary_max"`
	// Видимостью управляем флагом, вакансии не удаляются при закрытии
	IsActive bool `gorm:"default:true" json:"is_active"`

	Employer     *User         `gorm:"foreignKey:EmployerID;constraint:OnDelete:CASCADE" json:"-"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}
