package dto

type RejectEmployerRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=1000"`
}

type AdminStatsResponse struct {
	UsersByRole         map[string]int64 `json:"users_by_role"`
	JobsActive          int64            `json:"jobs_active"`
	JobsInactive        int64            `json:"jobs_inactive"`
	ApplicationsByState map[string]int64 `json:"applications_by_status"`
}

type AdminUserListQuery struct {
	Role       string `form:"role" validate:"omitempty,oneof=user employer admin"`
	IsVerified *bool  `form:"is_verified"`
	Search     string `form:"q"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// AdminUserRow - строка админ-списка; HTML в профильных полях уже снят
type AdminUserRow struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	IsVerified  bool   `json:"is_verified"`
	IsApproved  bool   `json:"is_approved"`
	IsActive    bool   `json:"is_active"`
	Location    string `json:"location"`
	Bio         string `json:"bio"`
	Skills      string `json:"skills"`
	CompanyName string `json:"company_name"`
	CreatedAt   string `json:"created_at"`
}

type AdminUserListResponse struct {
	Users    []AdminUserRow `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// AdminUpdateUserRequest - правка пользователя и его анкеты одним запросом;
// обе записи пишутся в одной транзакции
type AdminUpdateUserRequest struct {
	IsActive   *bool                        `json:"is_active"`
	IsVerified *bool                        `json:"is_verified"`
	Profile    *UpdateUserProfileRequest    `json:"profile"`
	Company    *UpdateCompanyProfileRequest `json:"company_profile"`
}
