package services

import (
	"net/http"
	"testing"
	"time"

	"hiringbooth/internal/models"
	"hiringbooth/internal/repositories"
	"hiringbooth/internal/services/dto"
	"hiringbooth/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(emails *fakeEmailProvider) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewProfileRepository(),
		emails,
	)
}

func TestAuthService_RegisterSeeker(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	emails := newFakeEmailProvider()
	svc := newAuthService(emails)

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "seeker@test.com",
		Password: "password123",
		Role:     "user",
		FullName: "Test Seeker",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Warning)

	var user models.User
	require.NoError(t, db.Preload("Profile").First(&user, "email = ?", "seeker@test.com").Error)
	assert.False(t, user.IsVerified)
	assert.Equal(t, models.UserRoleSeeker, user.Role)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "Test Seeker", user.Profile.FullName)

	// OTP ушел и совпадает с сохраненным
	assert.Equal(t, user.OTPCode, emails.sentOTP("seeker@test.com"))
	assert.Len(t, user.OTPCode, 6)
}

func TestAuthService_RegisterEmployerCreatesCompanyProfile(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(newFakeEmailProvider())

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:       "boss@test.com",
		Password:    "password123",
		Role:        "employer",
		CompanyName: "Acme Inc",
	})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Preload("CompanyProfile").First(&user, "email = ?", "boss@test.com").Error)
	assert.False(t, user.IsApproved)
	require.NotNil(t, user.CompanyProfile)
	assert.Equal(t, "Acme Inc", user.CompanyProfile.CompanyName)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(newFakeEmailProvider())

	// слабый пароль
	_, err := svc.Register(db, &dto.RegisterRequest{Email: "a@b.co", Password: "123", Role: "user", FullName: "X"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)

	// регистрация админа закрыта
	_, err = svc.Register(db, &dto.RegisterRequest{Email: "a@b.co", Password: "password123", Role: "admin", FullName: "X"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)

	// обязательные поля зависят от роли
	_, err = svc.Register(db, &dto.RegisterRequest{Email: "a@b.co", Password: "password123", Role: "user"})
	require.Error(t, err)
	_, err = svc.Register(db, &dto.RegisterRequest{Email: "a@b.co", Password: "password123", Role: "employer"})
	require.Error(t, err)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(newFakeEmailProvider())

	req := &dto.RegisterRequest{Email: "dup@test.com", Password: "password123", Role: "user", FullName: "X"}
	_, err := svc.Register(db, req)
	require.NoError(t, err)

	_, err = svc.Register(db, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestAuthService_RegisterSurvivesEmailFailure(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	emails := newFakeEmailProvider()
	emails.failAll = true
	svc := newAuthService(emails)

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Email: "nomail@test.com", Password: "password123", Role: "user", FullName: "X",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Warning)

	// пользователь создан несмотря на сбой почты
	var count int64
	db.Model(&models.User{}).Where("email = ?", "nomail@test.com").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAuthService_LoginFlow(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(newFakeEmailProvider())

	user := createVerifiedUser(t, db, models.UserRoleSeeker, false)

	resp, err := svc.Login(db, &dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = svc.Login(db, &dto.LoginRequest{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(db, &dto.LoginRequest{Email: "ghost@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_LoginBlockedStates(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	svc := newAuthService(newFakeEmailProvider())

	unverified := createVerifiedUser(t, db, models.UserRoleSeeker, false)
	require.NoError(t, db.Model(unverified).Update("is_verified", false).Error)

	_, err := svc.Login(db, &dto.LoginRequest{Email: unverified.Email, Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotVerified)

	deactivated := createVerifiedUser(t, db, models.UserRoleSeeker, false)
	require.NoError(t, db.Model(deactivated).Update("is_active", false).Error)

	_, err = svc.Login(db, &dto.LoginRequest{Email: deactivated.Email, Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrUserDeactivated)
}

func TestAuthService_VerifyOTP(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	emails := newFakeEmailProvider()
	svc := newAuthService(emails)

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email: "verify@test.com", Password: "password123", Role: "user", FullName: "X",
	})
	require.NoError(t, err)
	code := emails.sentOTP("verify@test.com")
	require.NotEmpty(t, code)

	// неверный код
	err = svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "verify@test.com", Code: "000000"})
	assert.Error(t, err)

	// верный код проходит один раз
	require.NoError(t, svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "verify@test.com", Code: code}))

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "verify@test.com").Error)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.OTPCode)

	// повторная попытка с тем же кодом дает ту же ошибку, что и неверный код
	err = svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "verify@test.com", Code: code})
	assert.Error(t, err)
}

func TestAuthService_VerifyOTP_Expired(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	emails := newFakeEmailProvider()
	svc := newAuthService(emails)

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email: "late@test.com", Password: "password123", Role: "user", FullName: "X",
	})
	require.NoError(t, err)
	code := emails.sentOTP("late@test.com")

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "late@test.com").
		Update("otp_expires_at", &expired).Error)

	err = svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "late@test.com", Code: code})
	assert.Error(t, err)
}

func TestAuthService_ResendOTP(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	emails := newFakeEmailProvider()
	svc := newAuthService(emails)

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email: "resend@test.com", Password: "password123", Role: "user", FullName: "X",
	})
	require.NoError(t, err)
	firstCode := emails.sentOTP("resend@test.com")

	require.NoError(t, svc.ResendOTP(db, &dto.ResendOTPRequest{Email: "resend@test.com"}))
	secondCode := emails.sentOTP("resend@test.com")
	require.NotEmpty(t, secondCode)

	// старый код больше не действует, если он отличается от нового
	if firstCode != secondCode {
		err = svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "resend@test.com", Code: firstCode})
		assert.Error(t, err)
	}
	require.NoError(t, svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "resend@test.com", Code: secondCode}))

	// несуществующий email не раскрывается
	assert.NoError(t, svc.ResendOTP(db, &dto.ResendOTPRequest{Email: "ghost@test.com"}))
}

// Сбой почты при перевыпуске кода отвечает так же, как неизвестный email:
// отличный от 200 статус раскрыл бы существование аккаунта
func TestAuthService_ResendOTPHidesEmailFailure(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	emails := newFakeEmailProvider()
	svc := newAuthService(emails)

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email: "flaky@test.com", Password: "password123", Role: "user", FullName: "X",
	})
	require.NoError(t, err)

	emails.failAll = true
	assert.NoError(t, svc.ResendOTP(db, &dto.ResendOTPRequest{Email: "flaky@test.com"}))

	// новый код при этом уже записан и работает
	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "flaky@test.com").Error)
	require.Len(t, user.OTPCode, 6)
	require.NoError(t, svc.VerifyOTP(db, &dto.VerifyOTPRequest{Email: "flaky@test.com", Code: user.OTPCode}))
}
