package repositories

import (
	"errors"

	"hiringbooth/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrApplicationDuplicate = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	Update(db *gorm.DB, app *models.Application) error

	ExistsForJobAndApplicant(db *gorm.DB, jobID, applicantID string) (bool, error)
	FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	CountByStatus(db *gorm.DB, status models.ApplicationStatus) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		// Гонку двух одновременных откликов решает составной уникальный
		// индекс (job_id, applicant_id), проверка в сервисе - только
		// для дружелюбного сообщения
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrApplicationDuplicate
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, app *models.Application) error {
	return db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) ExistsForJobAndApplicant(db *gorm.DB, jobID, applicantID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Applicant").Preload("Applicant.Profile").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByStatus(db *gorm.DB, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
