package services

import (
	"time"
	"unicode/utf8"

	"hiringbooth/internal/models"
	"hiringbooth/internal/repositories"
	"hiringbooth/internal/services/dto"
	"hiringbooth/pkg/apperrors"

	"gorm.io/gorm"
)

// MinCoverLetterLength - минимальная длина сопроводительного письма в символах
const MinCoverLetterLength = 100

type ApplicationService interface {
	Apply(db *gorm.DB, jobID, applicantID string, req *dto.ApplyRequest) (*models.Application, error)
	ListOwn(db *gorm.DB, applicantID string) ([]models.Application, error)
	ListForJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, applicationID, requesterID string, requesterRole models.UserRole, rawStatus string) (*models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply - отклик соискателя на активную вакансию
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, jobID, applicantID string, req *dto.ApplyRequest) (*models.Application, error) {
	if utf8.RuneCountInString(req.CoverLetter) < MinCoverLetterLength {
		return nil, apperrors.FieldValidationError("cover_letter",
			"Cover letter must be at least 100 characters long")
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.NewNotFoundError("job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.ErrJobInactive
	}

	// Предварительная проверка дает понятный 409 в обычном случае;
	// гонку закрывает уникальный индекс внутри Create
	exists, err := s.applicationRepo.ExistsForJobAndApplicant(db, jobID, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
	}

	if err := s.applicationRepo.Create(db, app); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationDuplicate) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}

func (s *ApplicationServiceImpl) ListOwn(db *gorm.DB, applicantID string) ([]models.Application, error) {
	apps, err := s.applicationRepo.FindByApplicant(db, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// ListForJob - отклики по вакансии для ее владельца или админа
func (s *ApplicationServiceImpl) ListForJob(db *gorm.DB, jobID, requesterID string, requesterRole models.UserRole) ([]models.Application, error) {
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

	apps, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// UpdateStatus переводит отклик в новый статус.
// Граф переходов намеренно не ограничен: любой известный статус можно
// выставить из любого, повторная установка того же статуса тоже проходит
// и перештамповывает reviewed_at.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, applicationID, requesterID string, requesterRole models.UserRole, rawStatus string) (*models.Application, error) {
	status, ok := models.ParseApplicationStatus(rawStatus)
	if !ok {
		return nil, apperrors.ErrInvalidStatus("application", "Unknown application status: "+rawStatus)
	}

	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.NewNotFoundError("application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	// Отклик принадлежит работодателю через вакансию
	if app.Job == nil || (app.Job.EmployerID != requesterID && requesterRole != models.UserRoleAdmin) {
		return nil, apperrors.NewNotFoundError("application", "Application not found")
	}

	now := time.Now()
	app.Status = status
	app.ReviewedAt = &now

	if err := s.applicationRepo.Update(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return app, nil
}
