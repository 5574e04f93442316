package repositories

import (
	"errors"

	"hiringbooth/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, jobID string) error

	FindActive(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error)
	FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error)
	CountByActive(db *gorm.DB, active bool) (int64, error)
}

type JobFilter struct {
	Search         string
	Location       string
	EmploymentType string
	Urgency        models.JobUrgency
	Page           int
	PageSize       int
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, jobID string) error {
	result := db.Select(clause.Associations).Delete(&models.Job{BaseModel: models.BaseModel{ID: jobID}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindActive(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{}).Where("is_active = ?", true)

	if criteria.Search != "" {
		like := "%" + criteria.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if criteria.Location != "" {
		query = query.Where("location LIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.EmploymentType != "" {
		query = query.Where("employment_type = ?", criteria.EmploymentType)
	}
	if criteria.Urgency != "" {
		query = query.Where("urgency = ?", criteria.Urgency)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page > 0 && criteria.PageSize > 0 {
		query = query.Offset((criteria.Page - 1) * criteria.PageSize).Limit(criteria.PageSize)
	}

	var jobs []models.Job
	// Срочные вакансии поднимаем наверх
	err := query.Order("CASE WHEN urgency = 'urgent' THEN 0 ELSE 1 END, created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *JobRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountByActive(db *gorm.DB, active bool) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Where("is_active = ?", active).Count(&count).Error
	return count, err
}
