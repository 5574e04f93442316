package services

import (
	"time"

	"hiringbooth/internal/auth"
	"hiringbooth/internal/email"
	"hiringbooth/internal/logger"
	"hiringbooth/internal/models"
	"hiringbooth/internal/repositories"
	"hiringbooth/internal/services/dto"
	"hiringbooth/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyOTP(db *gorm.DB, req *dto.VerifyOTPRequest) error
	ResendOTP(db *gorm.DB, req *dto.ResendOTPRequest) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	emailProvider email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		emailProvider: emailProvider,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role != models.UserRoleSeeker && role != models.UserRoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := s.validateRegisterRequest(role, req); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	otpCode, otpExpires, err := auth.GenerateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsVerified:   false,
		IsApproved:   false,
		IsActive:     true,
		OTPCode:      otpCode,
		OTPExpiresAt: &otpExpires,
	}

	// Пользователь и его профиль создаются в одной транзакции:
	// пользователь без профиля - это битое состояние
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}
		if err := s.createUserProfile(tx, user, req); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.RegisterResponse{
		Message: "Registration successful. Please check your email for the verification code.",
	}

	// Сбой почты не откатывает регистрацию, но о нем сообщаем клиенту
	if sendErr := s.emailProvider.SendOTP(user.Email, otpCode); sendErr != nil {
		logger.Error("Failed to send verification email", "email", user.Email, "error", sendErr)
		resp.Warning = "Verification email could not be sent. Use the resend endpoint to try again."
	}

	return resp, nil
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkUserStatus(user); err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        buildUserResponse(user),
	}, nil
}

// VerifyOTP - подтверждение email по коду.
// isVerified переходит false -> true ровно один раз;
// повторная попытка с любым кодом получает ту же ошибку, что и неверный код.
func (s *AuthServiceImpl) VerifyOTP(db *gorm.DB, req *dto.VerifyOTPRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		return apperrors.ErrInvalidOTP
	}

	if user.IsVerified {
		return apperrors.ErrInvalidOTP
	}

	if user.OTPCode == "" || user.OTPCode != req.Code {
		return apperrors.ErrInvalidOTP
	}

	if user.OTPExpiresAt == nil || time.Now().After(*user.OTPExpiresAt) {
		return apperrors.ErrInvalidOTP
	}

	if err := s.userRepo.SetVerified(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ResendOTP - перевыпуск кода; старый код при этом перестает действовать
func (s *AuthServiceImpl) ResendOTP(db *gorm.DB, req *dto.ResendOTPRequest) error {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		// Не раскрываем существование email
		return nil
	}

	if user.IsVerified {
		return apperrors.NewBadRequestError("Email is already verified")
	}

	otpCode, otpExpires, err := auth.GenerateOTP()
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.OTPCode = otpCode
	user.OTPExpiresAt = &otpExpires
	if err := s.userRepo.Update(db, user); err != nil {
		return apperrors.InternalError(err)
	}

	// Сбой почты отвечает тем же 200, что и неизвестный email:
	// иной статус выдал бы существование аккаунта
	if err := s.emailProvider.SendOTP(user.Email, otpCode); err != nil {
		logger.Error("Failed to resend verification email", "email", user.Email, "error", err)
	}
	return nil
}

// --- Helper functions ---

// createUserProfile создает профиль в зависимости от роли
func (s *AuthServiceImpl) createUserProfile(db *gorm.DB, user *models.User, req *dto.RegisterRequest) error {
	if user.Role == models.UserRoleSeeker {
		profile := &models.UserProfile{
			UserID:   user.ID,
			FullName: req.FullName,
			Location: req.Location,
		}
		return s.profileRepo.CreateUserProfile(db, profile)
	}

	profile := &models.CompanyProfile{
		UserID:      user.ID,
		CompanyName: req.CompanyName,
		Location:    req.Location,
	}
	return s.profileRepo.CreateCompanyProfile(db, profile)
}

// checkUserStatus проверяет, может ли пользователь войти
func (s *AuthServiceImpl) checkUserStatus(user *models.User) error {
	if !user.IsActive {
		return apperrors.ErrUserDeactivated
	}
	if !user.IsVerified {
		return apperrors.ErrUserNotVerified
	}
	return nil
}

func (s *AuthServiceImpl) validateRegisterRequest(role models.UserRole, req *dto.RegisterRequest) error {
	if role == models.UserRoleSeeker && req.FullName == "" {
		return apperrors.FieldValidationError("full_name", "full_name is required for the user role")
	}
	if role == models.UserRoleEmployer && req.CompanyName == "" {
		return apperrors.FieldValidationError("company_name", "company_name is required for the employer role")
	}
	return nil
}

// buildUserResponse строит ответ с данными пользователя и профилем
func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		Role:           user.Role,
		IsVerified:     user.IsVerified,
		IsApproved:     user.IsApproved,
		IsActive:       user.IsActive,
		Profile:        user.Profile,
		CompanyProfile: user.CompanyProfile,
	}
}
