package dto

type UpdateUserProfileRequest struct {
	Phone        *string  `json:"phone"`
	Location     *string  `json:"location"`
	Bio          *string  `json:"bio"`
	Skills       []string `json:"skills"`
	Experience   *string  `json:"experience"`
	Education    *string  `json:"education"`
	ResumeURL    *string  `json:"resume_url" validate:"omitempty,url"`
	LinkedinURL  *string  `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL    *string  `json:"github_url" validate:"omitempty,url"`
	PortfolioURL *string  `json:"portfolio_url" validate:"omitempty,url"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName *string `json:"company_name"`
	Industry    *string `json:"industry"`
	CompanySize *string `json:"company_size"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

// PublicProfileResponse - анкета соискателя для публичного просмотра,
// rich-text поля уже очищены от разметки
type PublicProfileResponse struct {
	UserID       string   `json:"user_id"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
	Education    string   `json:"education"`
	LinkedinURL  string   `json:"linkedin_url"`
	GithubURL    string   `json:"github_url"`
	PortfolioURL string   `json:"portfolio_url"`
}
