package repositories

import (
	"errors"

	"hiringbooth/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateUserProfile(db *gorm.DB, profile *models.UserProfile) error
	CreateCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error

	FindUserProfileByUserID(db *gorm.DB, userID string) (*models.UserProfile, error)
	FindCompanyProfileByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error)

	SaveUserProfile(db *gorm.DB, profile *models.UserProfile) error
	SaveCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateUserProfile(db *gorm.DB, profile *models.UserProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindUserProfileByUserID(db *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCompanyProfileByUserID(db *gorm.DB, userID string) (*models.CompanyProfile, error) {
	var profile models.CompanyProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) SaveUserProfile(db *gorm.DB, profile *models.UserProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) SaveCompanyProfile(db *gorm.DB, profile *models.CompanyProfile) error {
	return db.Save(profile).Error
}
