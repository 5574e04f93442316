package services

import (
	"hiringbooth/internal/models"
	"hiringbooth/internal/repositories"
	"hiringbooth/internal/services/dto"
	"hiringbooth/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(db *gorm.DB, jobID, viewerID string, viewerRole models.UserRole) (*models.Job, error)
	ListJobs(db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResponse, error)
	ListEmployerJobs(db *gorm.DB, employerID string) ([]models.Job, error)
	GetOwnJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) (*models.Job, error)
	UpdateJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) error
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// CreateJob публикует вакансию.
// Одобренность работодателя перечитывается внутри той же транзакции,
// что и вставка: гонка "отозвали одобрение во время публикации" не должна
// оставить вакансию неодобренного работодателя.
func (s *JobServiceImpl) CreateJob(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := validateSalaryRange(req.SalaryMin, req.SalaryMax); err != nil {
		return nil, err
	}

	urgency := models.JobUrgency(req.Urgency)
	if urgency == "" {
		urgency = models.JobUrgencyNotUrgent
	}

	job := &models.Job{
		EmployerID:      employerID,
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		EmploymentType:  req.EmploymentType,
		ExperienceLevel: req.ExperienceLevel,
		Urgency:         urgency,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		IsActive:        true,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		employer, err := s.userRepo.FindByID(tx, employerID)
		if err != nil {
			return apperrors.InternalError(err)
		}

		if employer.Role != models.UserRoleEmployer {
			return apperrors.ErrInsufficientPermissions
		}
		if !employer.IsApproved {
			return apperrors.ErrEmployerNotApproved
		}

		profile, err := s.profileRepo.FindCompanyProfileByUserID(tx, employerID)
		if err != nil || profile.CompanyName == "" {
			return apperrors.ErrCompanyProfileIncomplete
		}

		return s.jobRepo.Create(tx, job)
	})
	if err != nil {
		return nil, err
	}

	return job, nil
}

// GetJob - просмотр по id. Для анонимов и посторонних скрытые вакансии
// неотличимы от несуществующих; владелец и админ видят и их.
func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID, viewerID string, viewerRole models.UserRole) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.IsActive {
		return job, nil
	}
	if viewerID == "" {
		return nil, apperrors.NewNotFoundError("job", "Job not found")
	}
	return s.GetOwnJob(db, jobID, viewerID, viewerRole)
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, query *dto.JobListQuery) (*dto.JobListResponse, error) {
	page, pageSize := normalizePagination(query.Page, query.PageSize)

	jobs, total, err := s.jobRepo.FindActive(db, repositories.JobFilter{
		Search:         query.Search,
		Location:       query.Location,
		EmploymentType: query.EmploymentType,
		Urgency:        models.JobUrgency(query.Urgency),
		Page:           page,
		PageSize:       pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResponse{
		Jobs:     jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *JobServiceImpl) ListEmployerJobs(db *gorm.DB, employerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// GetOwnJob возвращает вакансию владельцу или админу, включая скрытые
func (s *JobServiceImpl) GetOwnJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) (*models.Job, error) {
	return s.findOwnedJob(db, jobID, requesterID, requesterRole)
}

func (s *JobServiceImpl) UpdateJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findOwnedJob(db, jobID, requesterID, requesterRole)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = *req.ExperienceLevel
	}
	if req.Urgency != nil {
		job.Urgency = models.JobUrgency(*req.Urgency)
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	// Инвариант проверяем по слитым значениям, а не по запросу
	if err := validateSalaryRange(job.SalaryMin, job.SalaryMax); err != nil {
		return nil, err
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) DeleteJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) error {
	if _, err := s.findOwnedJob(db, jobID, requesterID, requesterRole); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// findOwnedJob - общий owner-or-admin гейт.
// Чужая вакансия отвечает 404, а не 403: существование чужого ресурса
// не подтверждаем.
func (s *JobServiceImpl) findOwnedJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.EmployerID != requesterID && requesterRole != models.UserRoleAdmin {
		return nil, apperrors.NewNotFoundError("job", "Job not found")
	}

	return job, nil
}

func validateSalaryRange(min, max *int64) error {
	if min != nil && max != nil && *min > *max {
		return apperrors.FieldValidationError("salary_max", "salary_max cannot be less than salary_min")
	}
	return nil
}

func normalizePagination(page, pageSize int) (int, int) {
	const defaultPageSize = 20
	const maxPageSize = 100

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
