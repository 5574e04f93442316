package services

import (
	"encoding/json"
	"strings"

	"hiringbooth/internal/email"
	"hiringbooth/internal/export"
	"hiringbooth/internal/htmltext"
	"hiringbooth/internal/logger"
	"hiringbooth/internal/models"
	"hiringbooth/internal/repositories"
	"hiringbooth/internal/services/dto"
	"hiringbooth/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminService interface {
	PendingEmployers(db *gorm.DB) ([]dto.AdminUserRow, error)
	ApproveEmployer(db *gorm.DB, employerID string) error
	RejectEmployer(db *gorm.DB, employerID string, reason string) error

	Stats(db *gorm.DB) (*dto.AdminStatsResponse, error)
	ListUsers(db *gorm.DB, query *dto.AdminUserListQuery) (*dto.AdminUserListResponse, error)
	GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateUser(db *gorm.DB, userID string, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(db *gorm.DB, adminID, userID string) error
	ExportUsers(db *gorm.DB, query *dto.AdminUserListQuery) ([]byte, error)
}

type AdminServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	jobRepo     repositories.JobRepository
	appRepo     repositories.ApplicationRepository
	emails      email.Provider
}

func NewAdminService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
	appRepo repositories.ApplicationRepository,
	emails email.Provider,
) AdminService {
	return &AdminServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		emails:      emails,
	}
}

func (s *AdminServiceImpl) PendingEmployers(db *gorm.DB) ([]dto.AdminUserRow, error) {
	users, err := s.userRepo.FindPendingEmployers(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	rows := make([]dto.AdminUserRow, 0, len(users))
	for i := range users {
		rows = append(rows, buildAdminUserRow(&users[i]))
	}
	return rows, nil
}

// ApproveEmployer снимает флаг отказа и открывает публикацию вакансий.
// Письмо уходит после коммита, его сбой решение не откатывает.
func (s *AdminServiceImpl) ApproveEmployer(db *gorm.DB, employerID string) error {
	employer, err := s.findEmployer(db, employerID)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.SetApproval(tx, employerID, true); err != nil {
			return err
		}
		if employer.CompanyProfile != nil && employer.CompanyProfile.RejectionReason != "" {
			employer.CompanyProfile.RejectionReason = ""
			return s.profileRepo.SaveCompanyProfile(tx, employer.CompanyProfile)
		}
		return nil
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	go s.notifyDecision(employer.Email, true, "")
	return nil
}

// RejectEmployer пишет причину в профиль компании, чтобы она пережила сбой почты
func (s *AdminServiceImpl) RejectEmployer(db *gorm.DB, employerID string, reason string) error {
	employer, err := s.findEmployer(db, employerID)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.SetApproval(tx, employerID, false); err != nil {
			return err
		}
		profile := employer.CompanyProfile
		if profile == nil {
			profile = &models.CompanyProfile{UserID: employerID}
		}
		profile.RejectionReason = reason
		return s.profileRepo.SaveCompanyProfile(tx, profile)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	go s.notifyDecision(employer.Email, false, reason)
	return nil
}

func (s *AdminServiceImpl) findEmployer(db *gorm.DB, employerID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, employerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleEmployer {
		return nil, apperrors.NewNotFoundError("user", "Employer not found")
	}
	return user, nil
}

func (s *AdminServiceImpl) notifyDecision(to string, approved bool, reason string) {
	if err := s.emails.SendEmployerDecision(to, approved, reason); err != nil {
		logger.Error("failed to send employer decision email", "email", to, "error", err)
	}
}

func (s *AdminServiceImpl) Stats(db *gorm.DB) (*dto.AdminStatsResponse, error) {
	resp := &dto.AdminStatsResponse{
		UsersByRole:         make(map[string]int64),
		ApplicationsByState: make(map[string]int64),
	}

	for _, role := range []models.UserRole{models.UserRoleSeeker, models.UserRoleEmployer, models.UserRoleAdmin} {
		count, err := s.userRepo.CountByRole(db, role)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.UsersByRole[string(role)] = count
	}

	var err error
	if resp.JobsActive, err = s.jobRepo.CountByActive(db, true); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if resp.JobsInactive, err = s.jobRepo.CountByActive(db, false); err != nil {
		return nil, apperrors.InternalError(err)
	}

	statuses := []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusViewed,
		models.ApplicationStatusAccepted,
		models.ApplicationStatusRejected,
	}
	for _, status := range statuses {
		count, err := s.appRepo.CountByStatus(db, status)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		resp.ApplicationsByState[string(status)] = count
	}

	return resp, nil
}

func (s *AdminServiceImpl) ListUsers(db *gorm.DB, query *dto.AdminUserListQuery) (*dto.AdminUserListResponse, error) {
	page, pageSize := normalizePagination(query.Page, query.PageSize)

	users, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:       models.UserRole(query.Role),
		IsVerified: query.IsVerified,
		Search:     query.Search,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]dto.AdminUserRow, 0, len(users))
	for i := range users {
		rows = append(rows, buildAdminUserRow(&users[i]))
	}

	return &dto.AdminUserListResponse{
		Users:    rows,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *AdminServiceImpl) GetUser(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

// UpdateUser правит учётку и анкеты одной транзакцией
func (s *AdminServiceImpl) UpdateUser(db *gorm.DB, userID string, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}
		if req.IsVerified != nil {
			user.IsVerified = *req.IsVerified
		}
		if err := s.userRepo.Update(tx, user); err != nil {
			return err
		}

		if req.Profile != nil {
			profile := user.Profile
			if profile == nil {
				profile = &models.UserProfile{UserID: userID}
			}
			applyUserProfilePatch(profile, req.Profile)
			if err := s.profileRepo.SaveUserProfile(tx, profile); err != nil {
				return err
			}
			user.Profile = profile
		}

		if req.Company != nil {
			profile := user.CompanyProfile
			if profile == nil {
				profile = &models.CompanyProfile{UserID: userID}
			}
			applyCompanyProfilePatch(profile, req.Company)
			if err := s.profileRepo.SaveCompanyProfile(tx, profile); err != nil {
				return err
			}
			user.CompanyProfile = profile
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildUserResponse(user), nil
}

func (s *AdminServiceImpl) DeleteUser(db *gorm.DB, adminID, userID string) error {
	if adminID == userID {
		return apperrors.ErrCannotModifySelf
	}
	if err := s.userRepo.Delete(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NewNotFoundError("user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ExportUsers выгружает выборку целиком: фильтры те же, что в ListUsers,
// но без пагинации
func (s *AdminServiceImpl) ExportUsers(db *gorm.DB, query *dto.AdminUserListQuery) ([]byte, error) {
	users, _, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:       models.UserRole(query.Role),
		IsVerified: query.IsVerified,
		Search:     query.Search,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	rows := make([]export.UserRow, 0, len(users))
	for i := range users {
		u := &users[i]
		row := export.UserRow{
			Email:        u.Email,
			Role:         string(u.Role),
			IsVerified:   u.IsVerified,
			IsApproved:   u.IsApproved,
			IsActive:     u.IsActive,
			RegisteredAt: u.CreatedAt,
		}
		if u.Profile != nil {
			row.Location = u.Profile.Location
			row.Phone = u.Profile.Phone
			row.Skills = flattenSkills(u.Profile.Skills)
			row.Bio = htmltext.Strip(u.Profile.Bio)
		}
		if u.CompanyProfile != nil {
			row.CompanyName = u.CompanyProfile.CompanyName
			if row.Location == "" {
				row.Location = u.CompanyProfile.Location
			}
		}
		rows = append(rows, row)
	}

	data, err := export.UsersWorkbook(rows)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return data, nil
}

func buildAdminUserRow(user *models.User) dto.AdminUserRow {
	row := dto.AdminUserRow{
		ID:         user.ID,
		Email:      user.Email,
		Role:       string(user.Role),
		IsVerified: user.IsVerified,
		IsApproved: user.IsApproved,
		IsActive:   user.IsActive,
		CreatedAt:  user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if user.Profile != nil {
		row.Location = user.Profile.Location
		row.Bio = htmltext.Strip(user.Profile.Bio)
		row.Skills = flattenSkills(user.Profile.Skills)
	}
	if user.CompanyProfile != nil {
		row.CompanyName = user.CompanyProfile.CompanyName
		if row.Location == "" {
			row.Location = user.CompanyProfile.Location
		}
	}
	return row
}

func flattenSkills(raw datatypes.JSON) string {
	if len(raw) == 0 {
		return ""
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return ""
	}
	return strings.Join(skills, ", ")
}

func applyUserProfilePatch(profile *models.UserProfile, req *dto.UpdateUserProfileRequest) {
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		if raw, err := json.Marshal(req.Skills); err == nil {
			profile.Skills = datatypes.JSON(raw)
		}
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = *req.ResumeURL
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = *req.LinkedinURL
	}
	if req.GithubURL != nil {
		profile.GithubURL = *req.GithubURL
	}
	if req.PortfolioURL != nil {
		profile.PortfolioURL = *req.PortfolioURL
	}
}

func applyCompanyProfilePatch(profile *models.CompanyProfile, req *dto.UpdateCompanyProfileRequest) {
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.CompanySize != nil {
		profile.CompanySize = *req.CompanySize
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.LogoURL != nil {
		profile.LogoURL = *req.LogoURL
	}
}
