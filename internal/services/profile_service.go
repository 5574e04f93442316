package services

import (
	"encoding/json"

	"hiringbooth/internal/htmltext"
	"hiringbooth/internal/models"
	"hiringbooth/internal/repositories"
	"hiringbooth/internal/services/dto"
	"hiringbooth/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetOwn(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateUserProfile(db *gorm.DB, userID string, req *dto.UpdateUserProfileRequest) (*models.UserProfile, error)
	UpdateCompanyProfile(db *gorm.DB, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error)
	GetPublicProfile(db *gorm.DB, userID string) (*dto.PublicProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *ProfileServiceImpl) GetOwn(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserResponse(user), nil
}

// UpdateUserProfile - upsert анкеты соискателя
func (s *ProfileServiceImpl) UpdateUserProfile(db *gorm.DB, userID string, req *dto.UpdateUserProfileRequest) (*models.UserProfile, error) {
	profile, err := s.profileRepo.FindUserProfileByUserID(db, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.UserProfile{UserID: userID}
	}

	applyUserProfilePatch(profile, req)

	if err := s.profileRepo.SaveUserProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateCompanyProfile - upsert профиля компании
func (s *ProfileServiceImpl) UpdateCompanyProfile(db *gorm.DB, userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyProfileByUserID(db, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = &models.CompanyProfile{UserID: userID}
	}

	applyCompanyProfilePatch(profile, req)

	if err := s.profileRepo.SaveCompanyProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// GetPublicProfile - публичная анкета соискателя, разметка снята
func (s *ProfileServiceImpl) GetPublicProfile(db *gorm.DB, userID string) (*dto.PublicProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil || user.Role != models.UserRoleSeeker {
		return nil, apperrors.NewNotFoundError("profile", "Profile not found")
	}

	profile, err := s.profileRepo.FindUserProfileByUserID(db, userID)
	if err != nil {
		return nil, apperrors.NewNotFoundError("profile", "Profile not found")
	}

	return &dto.PublicProfileResponse{
		UserID:       profile.UserID,
		Location:     profile.Location,
		Bio:          htmltext.Strip(profile.Bio),
		Skills:       DecodeSkills(profile.Skills),
		Experience:   htmltext.Strip(profile.Experience),
		Education:    htmltext.Strip(profile.Education),
		LinkedinURL:  profile.LinkedinURL,
		GithubURL:    profile.GithubURL,
		PortfolioURL: profile.PortfolioURL,
	}, nil
}

// DecodeSkills разбирает JSONB-список навыков; битые данные дают пустой список
func DecodeSkills(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return []string{}
	}
	return skills
}
