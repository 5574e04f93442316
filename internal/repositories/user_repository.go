package repositories

import (
	"errors"

	"hiringbooth/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Update(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, userID string) error

	SetVerified(db *gorm.DB, userID string) error
	SetApproval(db *gorm.DB, userID string, approved bool) error

	FindWithFilter(db *gorm.DB, criteria UserFilter) ([]models.User, int64, error)
	FindPendingEmployers(db *gorm.DB) ([]models.User, error)
	CountByRole(db *gorm.DB, role models.UserRole) (int64, error)
}

type UserRepositoryImpl struct{}

type UserFilter struct {
	Role       models.UserRole
	IsVerified *bool
	IsApproved *bool
	Search     string
	Page       int
	PageSize   int
}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Preload("Profile").Preload("CompanyProfile").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Preload("Profile").Preload("CompanyProfile").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		// Уникальность email держит индекс, а не предварительный SELECT
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Update(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, userID string) error {
	// Select(clause.Associations) добирает профили и отклики,
	// даже если в схеме нет каскадных FK (sqlite в тестах)
	result := db.Select(clause.Associations).Delete(&models.User{BaseModel: models.BaseModel{ID: userID}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetVerified(db *gorm.DB, userID string) error {
	return db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_verified":    true,
			"otp_code":       "",
			"otp_expires_at": nil,
		}).Error
}

func (r *UserRepositoryImpl) SetApproval(db *gorm.DB, userID string, approved bool) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).
		Update("is_approved", approved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindWithFilter(db *gorm.DB, criteria UserFilter) ([]models.User, int64, error) {
	query := db.Model(&models.User{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.IsVerified != nil {
		query = query.Where("is_verified = ?", *criteria.IsVerified)
	}
	if criteria.IsApproved != nil {
		query = query.Where("is_approved = ?", *criteria.IsApproved)
	}
	if criteria.Search != "" {
		query = query.Where("email LIKE ?", "%"+criteria.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Offset((criteria.Page - 1) * criteria.PageSize).Limit(criteria.PageSize)
	}

	var users []models.User
	err := query.Preload("Profile").Preload("CompanyProfile").
		Order("created_at DESC").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepositoryImpl) FindPendingEmployers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Preload("CompanyProfile").
		Where("role = ? AND is_approved = ?", models.UserRoleEmployer, false).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
